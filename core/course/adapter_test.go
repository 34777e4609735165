package course

import (
	"encoding/json"
	"testing"
)

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name       string
		lessonType string
		raw        string
		wantErr    bool
		check      func(t *testing.T, c Content)
	}{
		{
			name:       "text",
			lessonType: LessonText,
			raw:        `{"sections":[{"heading":"h","body":"b"}]}`,
			check: func(t *testing.T, c Content) {
				tc, ok := c.(TextContent)
				if !ok || len(tc.Sections) != 1 || tc.Sections[0].Heading != "h" {
					t.Errorf("DecodeContent() = %+v", c)
				}
			},
		},
		{
			name:       "quiz",
			lessonType: LessonQuiz,
			raw:        `{"questions":[{"prompt":"p","options":["a","b"],"correct":1}]}`,
			check: func(t *testing.T, c Content) {
				qc, ok := c.(QuizContent)
				if !ok || len(qc.Questions) != 1 || qc.Questions[0].Correct != 1 {
					t.Errorf("DecodeContent() = %+v", c)
				}
			},
		},
		{
			name:       "practical",
			lessonType: LessonPractical,
			raw:        `{"steps":["s1"],"interactive_type":"swap-simulator"}`,
			check: func(t *testing.T, c Content) {
				pc, ok := c.(PracticalContent)
				if !ok || pc.InteractiveType != "swap-simulator" {
					t.Errorf("DecodeContent() = %+v", c)
				}
			},
		},
		{
			name:       "empty payload defaults to zero value",
			lessonType: LessonInteractive,
			raw:        "",
			check: func(t *testing.T, c Content) {
				if _, ok := c.(InteractiveContent); !ok {
					t.Errorf("DecodeContent() = %+v", c)
				}
			},
		},
		{name: "unknown type", lessonType: "video", raw: `{}`, wantErr: true},
		{name: "malformed payload", lessonType: LessonQuiz, raw: `{"questions":"nope"}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := DecodeContent(tt.lessonType, []byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeContent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestLessonUnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"id": "l1",
		"course_id": "c1",
		"title": "Quiz",
		"position": 2,
		"lesson_type": "quiz",
		"content": {"questions":[{"prompt":"p","options":["a","b","c"],"correct":2}]}
	}`)

	var lsn Lesson
	if err := json.Unmarshal(data, &lsn); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if lsn.Type != LessonQuiz {
		t.Errorf("Type = %v, want %v", lsn.Type, LessonQuiz)
	}
	qc, ok := lsn.Content.(QuizContent)
	if !ok {
		t.Fatalf("Content type = %T, want QuizContent", lsn.Content)
	}
	if len(qc.Questions) != 1 || qc.Questions[0].Correct != 2 {
		t.Errorf("Content = %+v", qc)
	}
}

func TestAdaptLesson(t *testing.T) {
	tests := []struct {
		name  string
		lsn   Lesson
		check func(t *testing.T, got Lesson)
	}{
		{
			name: "practical missing interactive type falls back to default",
			lsn:  Lesson{ID: "l1", Type: LessonPractical, Content: PracticalContent{Steps: []string{"s"}}},
			check: func(t *testing.T, got Lesson) {
				pc := got.Content.(PracticalContent)
				if pc.InteractiveType != DefaultExercise {
					t.Errorf("InteractiveType = %v, want %v", pc.InteractiveType, DefaultExercise)
				}
			},
		},
		{
			name: "quiz without questions degrades to text",
			lsn:  Lesson{ID: "l2", Title: "Quiz", Type: LessonQuiz, Content: QuizContent{}},
			check: func(t *testing.T, got Lesson) {
				if got.Type != LessonText {
					t.Fatalf("Type = %v, want %v", got.Type, LessonText)
				}
				tc := got.Content.(TextContent)
				if len(tc.Sections) == 0 {
					t.Error("fallback section not synthesized")
				}
			},
		},
		{
			name: "unknown lesson type degrades to text",
			lsn:  Lesson{ID: "l3", Title: "Video", Type: "video"},
			check: func(t *testing.T, got Lesson) {
				if got.Type != LessonText {
					t.Errorf("Type = %v, want %v", got.Type, LessonText)
				}
			},
		},
		{
			name: "mismatched content shape replaced",
			lsn:  Lesson{ID: "l4", Type: LessonInteractive, Content: TextContent{}},
			check: func(t *testing.T, got Lesson) {
				ic, ok := got.Content.(InteractiveContent)
				if !ok || ic.Exercise != DefaultExercise {
					t.Errorf("Content = %+v", got.Content)
				}
			},
		},
		{
			name: "out-of-range correct index clamped",
			lsn: Lesson{ID: "l5", Type: LessonQuiz, Content: QuizContent{Questions: []QuizQuestion{
				{Prompt: "p", Options: []string{"a", "b"}, Correct: 5},
			}}},
			check: func(t *testing.T, got Lesson) {
				qc := got.Content.(QuizContent)
				if qc.Questions[0].Correct != 0 {
					t.Errorf("Correct = %v, want 0", qc.Questions[0].Correct)
				}
			},
		},
		{
			name: "well-formed lesson untouched",
			lsn: Lesson{ID: "l6", Type: LessonQuiz, Content: QuizContent{Questions: []QuizQuestion{
				{Prompt: "p", Options: []string{"a", "b"}, Correct: 1},
			}}},
			check: func(t *testing.T, got Lesson) {
				qc := got.Content.(QuizContent)
				if got.Type != LessonQuiz || qc.Questions[0].Correct != 1 {
					t.Errorf("lesson altered: %+v", got)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, AdaptLesson(tt.lsn, nil))
		})
	}
}
