package course

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Lesson types
const (
	LessonText        = "text"
	LessonInteractive = "interactive"
	LessonQuiz        = "quiz"
	LessonPractical   = "practical"
)

var AllLessonTypes = []string{LessonText, LessonInteractive, LessonQuiz, LessonPractical}

type (
	Course struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Track       string    `json:"track"` // e.g. "fundamentals", "defi", "nft"
		XPReward    int       `json:"xp_reward"`
		CreatedAt   time.Time `json:"created_at"` // UTC
		UpdatedAt   time.Time `json:"updated_at"` // UTC
	}

	Lesson struct {
		ID       string  `json:"id"`
		CourseID string  `json:"course_id"`
		Title    string  `json:"title"`
		Position int     `json:"position"`
		Type     string  `json:"lesson_type"`
		Content  Content `json:"content"`
	}

	// Content is the per-type lesson payload. The concrete type must match
	// Lesson.Type; AdaptLesson repairs records where it does not.
	Content interface {
		isLessonContent()
	}

	TextSection struct {
		Heading string `json:"heading"`
		Body    string `json:"body"`
	}

	TextContent struct {
		Sections []TextSection `json:"sections"`
	}

	QuizQuestion struct {
		Prompt      string   `json:"prompt"`
		Options     []string `json:"options"`
		Correct     int      `json:"correct"`
		Explanation string   `json:"explanation,omitempty"`
	}

	QuizContent struct {
		Questions []QuizQuestion `json:"questions"`
	}

	InteractiveContent struct {
		Exercise string                 `json:"exercise"` // e.g. "scam-spotter", "wallet-connect"
		Config   map[string]interface{} `json:"config,omitempty"`
	}

	PracticalContent struct {
		Steps           []string `json:"steps"`
		Tips            []string `json:"tips,omitempty"`
		InteractiveType string   `json:"interactive_type"`
	}
)

func (TextContent) isLessonContent()        {}
func (QuizContent) isLessonContent()        {}
func (InteractiveContent) isLessonContent() {}
func (PracticalContent) isLessonContent()   {}

// DecodeContent unmarshals a raw content payload into the concrete type
// declared by lessonType. Unknown types and malformed payloads are errors;
// callers wanting lenience go through AdaptLesson instead.
func DecodeContent(lessonType string, raw []byte) (Content, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	switch lessonType {
	case LessonText:
		var c TextContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, errors.Wrap(err, "decoding text content")
		}
		return c, nil
	case LessonQuiz:
		var c QuizContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, errors.Wrap(err, "decoding quiz content")
		}
		return c, nil
	case LessonInteractive:
		var c InteractiveContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, errors.Wrap(err, "decoding interactive content")
		}
		return c, nil
	case LessonPractical:
		var c PracticalContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, errors.Wrap(err, "decoding practical content")
		}
		return c, nil
	}
	return nil, errors.Errorf("unknown lesson type %q", lessonType)
}

// UnmarshalJSON decodes the tagged union keyed on "lesson_type".
func (l *Lesson) UnmarshalJSON(data []byte) error {
	var row struct {
		ID       string          `json:"id"`
		CourseID string          `json:"course_id"`
		Title    string          `json:"title"`
		Position int             `json:"position"`
		Type     string          `json:"lesson_type"`
		Content  json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}

	content, err := DecodeContent(row.Type, row.Content)
	if err != nil {
		return err
	}
	*l = Lesson{
		ID:       row.ID,
		CourseID: row.CourseID,
		Title:    row.Title,
		Position: row.Position,
		Type:     row.Type,
		Content:  content,
	}
	return nil
}
