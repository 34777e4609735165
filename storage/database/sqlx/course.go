package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/course"
)

type courseRow struct {
	ID          string      `db:"id"`
	Title       null.String `db:"title"`
	Description null.String `db:"description"`
	Track       null.String `db:"track"`
	XPReward    null.Int    `db:"xp_reward"`
	CreatedAt   null.Time   `db:"created_at"`
	UpdatedAt   null.Time   `db:"updated_at"`
}

func (r courseRow) course() course.Course {
	return course.Course{
		ID:          r.ID,
		Title:       r.Title.String,
		Description: r.Description.String,
		Track:       r.Track.String,
		XPReward:    r.XPReward.Int,
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}

type lessonRow struct {
	ID       string      `db:"id"`
	CourseID string      `db:"course_id"`
	Title    null.String `db:"title"`
	Position int         `db:"position"`
	Type     null.String `db:"lesson_type"`
	Content  null.JSON   `db:"content"`
}

// lesson decodes the JSONB content payload against the declared type.
// Malformed payloads come out with nil content so the adapter layer can
// repair them instead of the read failing.
func (r lessonRow) lesson() course.Lesson {
	content, _ := course.DecodeContent(r.Type.String, r.Content.JSON)
	return course.Lesson{
		ID:       r.ID,
		CourseID: r.CourseID,
		Title:    r.Title.String,
		Position: r.Position,
		Type:     r.Type.String,
		Content:  content,
	}
}

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sqlx.DB) *courseRepository {
	return &courseRepository{db: db}
}

func (repo courseRepository) QueryCourses(ctx context.Context, track string, ordering []core.DBOrdering) ([]course.Course, error) {
	q := `SELECT * FROM course`
	var args []interface{}
	if track != "" {
		q += " WHERE track = ?"
		args = append(args, track)
	}
	q += " ORDER BY " + orderBy(ordering, "created_at")

	var rows []courseRow
	if err := repo.db.SelectContext(ctx, &rows, repo.db.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]course.Course, 0, len(rows))
	for _, r := range rows {
		courses = append(courses, r.course())
	}
	return courses, nil
}

func (repo courseRepository) GetCourse(ctx context.Context, id string) (course.Course, error) {
	var row courseRow
	err := repo.db.GetContext(ctx, &row, repo.db.Rebind(`SELECT * FROM course WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return course.Course{}, course.ErrNotFound
	}
	if err != nil {
		return course.Course{}, errors.Wrap(err, "finding course")
	}
	return row.course(), nil
}

func (repo courseRepository) QueryLessons(ctx context.Context, courseID string) ([]course.Lesson, error) {
	var rows []lessonRow
	q := `SELECT * FROM lesson WHERE course_id = ? ORDER BY position`
	if err := repo.db.SelectContext(ctx, &rows, repo.db.Rebind(q), courseID); err != nil {
		return nil, errors.Wrap(err, "querying lessons")
	}
	lessons := make([]course.Lesson, 0, len(rows))
	for _, r := range rows {
		lessons = append(lessons, r.lesson())
	}
	return lessons, nil
}

func (repo courseRepository) GetLesson(ctx context.Context, id string) (course.Lesson, error) {
	var row lessonRow
	err := repo.db.GetContext(ctx, &row, repo.db.Rebind(`SELECT * FROM lesson WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return course.Lesson{}, course.ErrLessonNotFound
	}
	if err != nil {
		return course.Lesson{}, errors.Wrap(err, "finding lesson")
	}
	return row.lesson(), nil
}

// SeedCourses loads the built-in catalog; existing rows are left untouched
// so locally authored edits survive restarts.
func (repo courseRepository) SeedCourses(ctx context.Context) error {
	courses, lessons := course.Seed()
	now := time.Now().UTC()

	for _, crs := range courses {
		q := `
			INSERT INTO course (id, title, description, track, xp_reward, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING`
		if _, err := repo.db.ExecContext(ctx, repo.db.Rebind(q),
			crs.ID, crs.Title, crs.Description, crs.Track, crs.XPReward, now, now); err != nil {
			return errors.Wrap(err, "seeding courses")
		}
	}
	for _, lsn := range lessons {
		content, err := json.Marshal(lsn.Content)
		if err != nil {
			return errors.Wrap(err, "encoding lesson content")
		}
		q := `
			INSERT INTO lesson (id, course_id, title, position, lesson_type, content)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (id) DO NOTHING`
		if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(q),
			lsn.ID, lsn.CourseID, lsn.Title, lsn.Position, lsn.Type, content); err != nil {
			return errors.Wrap(err, "seeding lessons")
		}
	}
	return nil
}

func orderBy(ordering []core.DBOrdering, fallback string) string {
	if len(ordering) == 0 {
		return fallback
	}
	s := ordering[0].String()
	for _, ord := range ordering[1:] {
		s += ", " + ord.String()
	}
	return s
}
