package progress

import (
	"github.com/web3versity/web3versity/core/course"
)

// PassPercent is the quiz pass threshold.
const PassPercent = 70

// Quiz attempt states
const (
	QuizAnswering = "answering"
	QuizAnswered  = "answered"
	QuizCompleted = "completed"
)

const noSelection = -1

// QuizAttempt is the state machine for one pass through a quiz lesson:
// answering(i) -> answered(i) -> answering(i+1) | completed. Intermediate
// state is never persisted; only the final score is reported upward via
// the completion callback, and only on a pass.
type QuizAttempt struct {
	questions []course.QuizQuestion
	state     string
	current   int
	selected  int
	correct   int
	wasRight  bool

	onComplete func(score int)
}

func NewQuizAttempt(content course.QuizContent, onComplete func(score int)) *QuizAttempt {
	return &QuizAttempt{
		questions:  content.Questions,
		state:      QuizAnswering,
		selected:   noSelection,
		onComplete: onComplete,
	}
}

func (a *QuizAttempt) State() string { return a.state }

func (a *QuizAttempt) CurrentQuestion() (course.QuizQuestion, int) {
	if a.current >= len(a.questions) {
		return course.QuizQuestion{}, a.current
	}
	return a.questions[a.current], a.current
}

// Select records the learner's choice for the current question. Out-of-range
// options and calls outside the answering state are ignored.
func (a *QuizAttempt) Select(option int) {
	if a.state != QuizAnswering {
		return
	}
	q, _ := a.CurrentQuestion()
	if option < 0 || option >= len(q.Options) {
		return
	}
	a.selected = option
}

// Submit locks in the selected answer, moving answering -> answered.
// A submit with no selection is a no-op and reports false.
func (a *QuizAttempt) Submit() bool {
	if a.state != QuizAnswering || a.selected == noSelection {
		return false
	}
	q, _ := a.CurrentQuestion()
	a.wasRight = a.selected == q.Correct
	if a.wasRight {
		a.correct++
	}
	a.state = QuizAnswered
	return true
}

// LastCorrect reports whether the most recently submitted answer was right;
// drives the explanation panel.
func (a *QuizAttempt) LastCorrect() bool { return a.wasRight }

// Next advances past an answered question, to the next question or to the
// completed state. Completion fires the callback only on a pass.
func (a *QuizAttempt) Next() {
	if a.state != QuizAnswered {
		return
	}
	a.current++
	a.selected = noSelection
	if a.current < len(a.questions) {
		a.state = QuizAnswering
		return
	}

	a.state = QuizCompleted
	if a.Passed() && a.onComplete != nil {
		a.onComplete(a.Score())
	}
}

// Score is the percentage of correct answers; only meaningful once completed.
func (a *QuizAttempt) Score() int {
	if len(a.questions) == 0 {
		return 0
	}
	return a.correct * 100 / len(a.questions)
}

func (a *QuizAttempt) Passed() bool {
	return a.state == QuizCompleted && a.Score() >= PassPercent
}

// Retake restarts a completed attempt from the first question with the
// score reset.
func (a *QuizAttempt) Retake() {
	if a.state != QuizCompleted {
		return
	}
	a.state = QuizAnswering
	a.current = 0
	a.selected = noSelection
	a.correct = 0
	a.wasRight = false
}
