package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/course"
	"github.com/web3versity/web3versity/core/progress"
	"github.com/web3versity/web3versity/core/user"
)

type courseApi struct {
	svc         course.Service
	progressSvc progress.Service
	userSvc     user.Service
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc course.Service, progressSvc progress.Service, userSvc user.Service) {
	api := courseApi{svc: svc, progressSvc: progressSvc, userSvc: userSvc}

	// the catalog is public; browsing requires no account
	cg := g.Group("/courses")
	cg.GET("", api.query)
	cg.GET("/:id", api.retrieve)
	cg.GET("/:id/lessons", api.lessons)

	lg := g.Group("/lessons")
	lg.GET("/:id", api.retrieveLesson)
	lg.POST("/:id/complete", api.completeLesson, jwt)

	g.GET("/me/progress", api.progressSummary, jwt)
}

// Handlers

func (api *courseApi) query(ctx echo.Context) error {
	courses, err := api.svc.Query(ctx.Request().Context(), ctx.QueryParam("track"))
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	crs, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding course")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) lessons(ctx echo.Context) error {
	lessons, err := api.svc.Lessons(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying lessons")
	}
	if lessons == nil {
		lessons = []course.Lesson{}
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *courseApi) retrieveLesson(ctx echo.Context) error {
	lsn, err := api.svc.GetLesson(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == course.ErrLessonNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding lesson")
	}
	return ctx.JSON(http.StatusOK, lsn)
}

func (api *courseApi) completeLesson(ctx echo.Context) error {
	var data CompleteLessonRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CompleteLessonRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	cpl, err := api.progressSvc.CompleteLesson(ctx.Request().Context(), ctxUsr, ctx.Param("id"), data.Score)
	if err != nil {
		if errors.Cause(err) == course.ErrLessonNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "completing lesson")
	}
	return ctx.JSON(http.StatusOK, cpl)
}

func (api *courseApi) progressSummary(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	sum, err := api.progressSvc.Summary(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying progress")
	}
	if sum.Completions == nil {
		sum.Completions = []progress.Completion{}
	}
	return ctx.JSON(http.StatusOK, sum)
}

type CompleteLessonRequest struct {
	Score int `json:"score" validate:"min=0,max=100"`
}

func (cr *CompleteLessonRequest) Validate() error { return core.Validate.Struct(cr) }
