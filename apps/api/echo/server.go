package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/course"
	"github.com/web3versity/web3versity/core/hedera"
	"github.com/web3versity/web3versity/core/progress"
	"github.com/web3versity/web3versity/core/user"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		UserSvc     user.Service
		CourseSvc   course.Service
		ProgressSvc progress.Service
		Hedera      *hedera.Client

		Logger core.Logger
		// SignalShutdown is called when an unrecoverable error is caught
		// so main can stop the server gracefully.
		SignalShutdown func()
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.SignalShutdown)
	s.app.Debug = core.Conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(v1, jwt, s.opts.UserSvc)
	registerCourseAPI(v1, jwt, s.opts.CourseSvc, s.opts.ProgressSvc, s.opts.UserSvc)
	registerDefiAPI(v1)
	registerHederaAPI(v1, jwt, s.opts.Hedera)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Addr)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Web3versity API!")
}
