package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/web3versity/web3versity/core/course"
)

func fourQuestionQuiz() course.QuizContent {
	return course.QuizContent{
		Questions: []course.QuizQuestion{
			{Prompt: "q1", Options: []string{"a", "b", "c"}, Correct: 0},
			{Prompt: "q2", Options: []string{"a", "b", "c"}, Correct: 1},
			{Prompt: "q3", Options: []string{"a", "b", "c"}, Correct: 2},
			{Prompt: "q4", Options: []string{"a", "b", "c"}, Correct: 0},
		},
	}
}

func answer(t *testing.T, a *QuizAttempt, option int) {
	t.Helper()
	a.Select(option)
	assert.True(t, a.Submit())
	a.Next()
}

func TestQuizAttemptPass(t *testing.T) {
	var gotScore int
	fired := 0
	a := NewQuizAttempt(fourQuestionQuiz(), func(score int) {
		gotScore = score
		fired++
	})

	// 3 of 4 correct
	answer(t, a, 0)
	answer(t, a, 1)
	answer(t, a, 2)
	answer(t, a, 1) // wrong

	assert.Equal(t, QuizCompleted, a.State())
	assert.Equal(t, 75, a.Score())
	assert.True(t, a.Passed())
	assert.Equal(t, 1, fired)
	assert.Equal(t, 75, gotScore)
}

func TestQuizAttemptFailAndRetake(t *testing.T) {
	fired := 0
	a := NewQuizAttempt(fourQuestionQuiz(), func(int) { fired++ })

	// 2 of 4 correct
	answer(t, a, 0)
	answer(t, a, 1)
	answer(t, a, 0) // wrong
	answer(t, a, 1) // wrong

	assert.Equal(t, QuizCompleted, a.State())
	assert.Equal(t, 50, a.Score())
	assert.False(t, a.Passed())
	assert.Zero(t, fired, "completion callback must not fire on a fail")

	a.Retake()
	assert.Equal(t, QuizAnswering, a.State())
	assert.Equal(t, 0, a.Score())
	_, idx := a.CurrentQuestion()
	assert.Zero(t, idx)

	// perfect second attempt
	answer(t, a, 0)
	answer(t, a, 1)
	answer(t, a, 2)
	answer(t, a, 0)

	assert.Equal(t, 100, a.Score())
	assert.True(t, a.Passed())
	assert.Equal(t, 1, fired)
}

func TestQuizAttemptSubmitGuards(t *testing.T) {
	a := NewQuizAttempt(fourQuestionQuiz(), nil)

	assert.False(t, a.Submit(), "submit with no selection is a no-op")
	assert.Equal(t, QuizAnswering, a.State())

	a.Select(5) // out of range, ignored
	assert.False(t, a.Submit())

	a.Select(1)
	assert.True(t, a.Submit())
	assert.Equal(t, QuizAnswered, a.State())
	assert.False(t, a.Submit(), "double submit is a no-op")

	// selecting while answered is ignored
	a.Select(2)
	a.Next()
	a.Select(1)
	assert.True(t, a.Submit())
	assert.True(t, a.LastCorrect())
}

func TestQuizAttemptRetakeOnlyWhenCompleted(t *testing.T) {
	a := NewQuizAttempt(fourQuestionQuiz(), nil)
	a.Retake()
	assert.Equal(t, QuizAnswering, a.State())
	a.Select(0)
	a.Submit()
	a.Retake()
	assert.Equal(t, QuizAnswered, a.State())
}
