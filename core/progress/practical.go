package progress

// Practical lesson states
const (
	PracticalIntro       = "intro"
	PracticalInteractive = "interactive"
)

// PracticalSession is the state machine for a hands-on lesson:
// intro -> interactive, with a success overlay once the embedded exercise
// reports back. The interaction callback is edge-triggered: it fires on
// the first success only, no matter how many times the exercise reports.
type PracticalSession struct {
	state        string
	interacted   bool
	successShown bool

	onInteract func()
}

func NewPracticalSession(onInteract func()) *PracticalSession {
	return &PracticalSession{state: PracticalIntro, onInteract: onInteract}
}

func (s *PracticalSession) State() string      { return s.state }
func (s *PracticalSession) Interacted() bool   { return s.interacted }
func (s *PracticalSession) SuccessShown() bool { return s.successShown }

// Begin moves the session past the intro steps into the live exercise.
func (s *PracticalSession) Begin() {
	if s.state != PracticalIntro {
		return
	}
	s.state = PracticalInteractive
}

// HandleSuccess records a successful exercise outcome. Repeat successes
// re-show the overlay but never re-fire the interaction callback.
func (s *PracticalSession) HandleSuccess() {
	if s.state != PracticalInteractive {
		return
	}
	s.successShown = true
	if s.interacted {
		return
	}
	s.interacted = true
	if s.onInteract != nil {
		s.onInteract()
	}
}

// DismissSuccess hides the success overlay; the session stays interactive
// so the learner can keep experimenting.
func (s *PracticalSession) DismissSuccess() {
	s.successShown = false
}
