package progress

import (
	"context"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/course"
	"github.com/web3versity/web3versity/core/user"
)

var (
	// errors
	ErrNotFound = errors.New("completion not found")
)

type (
	Repository interface {
		// UpsertCompletion records a lesson completion, overwriting any
		// previous completion of the same lesson by the same user. The bool
		// reports whether this was the user's first completion of the lesson;
		// it must be decided atomically with the write so concurrent submits
		// of the same lesson see it true exactly once.
		UpsertCompletion(ctx context.Context, cpl Completion) (Completion, bool, error)
		QueryCompletions(ctx context.Context, userID string) ([]Completion, error)
		GetXP(ctx context.Context, userID string) (int, error)
		AddXP(ctx context.Context, userID string, delta int) (int, error)
	}

	Service interface {
		CompleteLesson(ctx context.Context, usr user.User, lessonID string, score int) (Completion, error)
		Summary(ctx context.Context, userID string) (Summary, error)
	}

	service struct {
		repo      Repository
		courseSvc course.Service
		mailSvc   core.EmailService
		logger    core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, courseSvc course.Service, mailSvc core.EmailService, logger core.Logger) Service {
	return &service{
		repo:      repo,
		courseSvc: courseSvc,
		mailSvc:   mailSvc,
		logger:    logger,
	}
}

// CompleteLesson records a completion and awards the score as XP. Completing
// a lesson twice overwrites the stored score but never double-counts XP.
// Completing the last outstanding lesson of a course additionally awards the
// course's XP reward and notifies the learner by email.
func (svc *service) CompleteLesson(ctx context.Context, usr user.User, lessonID string, score int) (Completion, error) {
	lsn, err := svc.courseSvc.GetLesson(ctx, lessonID)
	if err != nil {
		return Completion{}, err
	}

	cpl, firstTime, err := svc.repo.UpsertCompletion(ctx, Completion{
		UserID:      usr.ID,
		LessonID:    lessonID,
		Score:       score,
		CompletedAt: time.Now().UTC(),
	})
	if err != nil {
		return Completion{}, errors.Wrap(err, "recording completion")
	}
	if !firstTime {
		return cpl, nil
	}

	if _, err = svc.repo.AddXP(ctx, usr.ID, score); err != nil {
		return Completion{}, errors.Wrap(err, "awarding xp")
	}

	done, err := svc.repo.QueryCompletions(ctx, usr.ID)
	if err != nil {
		return Completion{}, errors.Wrap(err, "querying completions")
	}
	if err = svc.checkCourseCompletion(ctx, usr, lsn.CourseID, done); err != nil {
		// the lesson completion itself stands
		svc.logger.Error("checking course completion", err)
	}
	return cpl, nil
}

func (svc *service) checkCourseCompletion(ctx context.Context, usr user.User, courseID string, done []Completion) error {
	lessons, err := svc.courseSvc.Lessons(ctx, courseID)
	if err != nil {
		return err
	}
	completed := make(map[string]bool, len(done))
	for _, cpl := range done {
		completed[cpl.LessonID] = true
	}
	for _, lsn := range lessons {
		if !completed[lsn.ID] {
			return nil
		}
	}

	crs, err := svc.courseSvc.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if _, err = svc.repo.AddXP(ctx, usr.ID, crs.XPReward); err != nil {
		return err
	}
	go svc.sendCourseCompletionMail(usr, crs)
	return nil
}

func (svc *service) sendCourseCompletionMail(usr user.User, crs course.Course) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      "Course Completed",
		TemplateName: "course-completion",
		TemplateData: struct {
			Name     string
			Course   string
			XPReward int
		}{usr.Name, crs.Title, crs.XPReward},
	})
}

func (svc *service) Summary(ctx context.Context, userID string) (Summary, error) {
	completions, err := svc.repo.QueryCompletions(ctx, userID)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying completions")
	}
	xp, err := svc.repo.GetXP(ctx, userID)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying xp")
	}
	return Summary{XP: xp, Completions: completions}, nil
}
