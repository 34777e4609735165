package course

import (
	"fmt"

	"github.com/web3versity/web3versity/core"
)

// DefaultExercise is substituted when a practical lesson does not declare
// which interactive exercise it embeds.
const DefaultExercise = "testnet-faucet"

// AdaptLesson coerces a possibly malformed lesson record into one the rest
// of the system can render. A record whose content does not match its
// declared type is not rejected; a sensible default is substituted and the
// repair logged so authoring bugs still surface.
func AdaptLesson(lsn Lesson, logger core.Logger) Lesson {
	warn := func(format string, args ...interface{}) {
		if logger != nil {
			logger.Warn(fmt.Sprintf("lesson %s: ", lsn.ID) + fmt.Sprintf(format, args...))
		}
	}

	if !isKnownLessonType(lsn.Type) {
		warn("unknown lesson type %q, degrading to text", lsn.Type)
		lsn.Type = LessonText
		lsn.Content = nil
	}

	switch lsn.Type {
	case LessonText:
		c, ok := lsn.Content.(TextContent)
		if !ok {
			warn("content shape does not match %q, substituting fallback section", lsn.Type)
			c = TextContent{}
		}
		if len(c.Sections) == 0 {
			c.Sections = []TextSection{{Heading: lsn.Title, Body: "Content for this lesson is coming soon."}}
		}
		lsn.Content = c

	case LessonQuiz:
		c, ok := lsn.Content.(QuizContent)
		if !ok || len(c.Questions) == 0 {
			// a quiz without questions cannot be attempted; degrade to text
			warn("quiz has no questions, degrading to text")
			lsn.Type = LessonText
			lsn.Content = TextContent{Sections: []TextSection{{Heading: lsn.Title, Body: "Content for this lesson is coming soon."}}}
			break
		}
		for i, q := range c.Questions {
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				warn("question %d has out-of-range correct index %d, clamping to 0", i, q.Correct)
				c.Questions[i].Correct = 0
			}
		}
		lsn.Content = c

	case LessonInteractive:
		c, ok := lsn.Content.(InteractiveContent)
		if !ok {
			warn("content shape does not match %q, substituting default exercise", lsn.Type)
			c = InteractiveContent{}
		}
		if c.Exercise == "" {
			c.Exercise = DefaultExercise
		}
		lsn.Content = c

	case LessonPractical:
		c, ok := lsn.Content.(PracticalContent)
		if !ok {
			warn("content shape does not match %q, substituting default exercise", lsn.Type)
			c = PracticalContent{}
		}
		if c.InteractiveType == "" {
			c.InteractiveType = DefaultExercise
		}
		if len(c.Steps) == 0 {
			c.Steps = []string{"Follow the on-screen instructions to complete this exercise."}
		}
		lsn.Content = c
	}

	return lsn
}

func isKnownLessonType(t string) bool {
	for _, known := range AllLessonTypes {
		if t == known {
			return true
		}
	}
	return false
}
