package course

import (
	"context"

	"github.com/pkg/errors"

	"github.com/web3versity/web3versity/core"
)

var (
	// errors
	ErrNotFound       = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

type (
	Repository interface {
		QueryCourses(ctx context.Context, track string, ordering []core.DBOrdering) ([]Course, error)
		GetCourse(ctx context.Context, id string) (Course, error)
		// QueryLessons returns a course's lessons ordered by position.
		QueryLessons(ctx context.Context, courseID string) ([]Lesson, error)
		GetLesson(ctx context.Context, id string) (Lesson, error)
	}

	Service interface {
		Query(ctx context.Context, track string) ([]Course, error)
		GetByID(ctx context.Context, id string) (Course, error)
		Lessons(ctx context.Context, courseID string) ([]Lesson, error)
		GetLesson(ctx context.Context, id string) (Lesson, error)
	}

	service struct {
		repo   Repository
		logger core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, logger core.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (svc *service) Query(ctx context.Context, track string) ([]Course, error) {
	return svc.repo.QueryCourses(ctx, core.CleanString(track, true /* lower */), nil)
}

func (svc *service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourse(ctx, id)
}

func (svc *service) Lessons(ctx context.Context, courseID string) ([]Lesson, error) {
	lessons, err := svc.repo.QueryLessons(ctx, courseID)
	if err != nil {
		return nil, err
	}
	for i, lsn := range lessons {
		lessons[i] = AdaptLesson(lsn, svc.logger)
	}
	return lessons, nil
}

func (svc *service) GetLesson(ctx context.Context, id string) (Lesson, error) {
	lsn, err := svc.repo.GetLesson(ctx, id)
	if err != nil {
		return Lesson{}, err
	}
	return AdaptLesson(lsn, svc.logger), nil
}
