package progress

import (
	"time"
)

// Completion records that a user finished a lesson, with the score they
// finished it on. One row per (user, lesson); re-completions overwrite.
type Completion struct {
	UserID      string    `json:"user_id"`
	LessonID    string    `json:"lesson_id"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

// Summary is a user's progress rollup as served to the dashboard.
type Summary struct {
	XP          int          `json:"xp"`
	Completions []Completion `json:"completions"`
}
