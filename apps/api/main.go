package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/web3versity/web3versity/apps/api/echo"
	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/course"
	"github.com/web3versity/web3versity/core/hedera"
	"github.com/web3versity/web3versity/core/progress"
	"github.com/web3versity/web3versity/core/user"
	emailsvc "github.com/web3versity/web3versity/services/email"
	logsvc "github.com/web3versity/web3versity/services/logger"
	"github.com/web3versity/web3versity/storage/database"
	sqlxrepos "github.com/web3versity/web3versity/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.Debug {
		logger = core.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up DB
	db, err := database.Open(core.Conf)
	errAndDie(std, err)
	defer db.Close()
	errAndDie(std, database.Migrate(db.DB, core.Conf))

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	usrSvc := user.NewService(sqlxrepos.NewUserRepository(db), mailSvc, logger)
	crsSvc := course.NewService(sqlxrepos.NewCourseRepository(db), logger)
	prgSvc := progress.NewService(sqlxrepos.NewProgressRepository(db), crsSvc, mailSvc, logger)

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:        core.Conf.Server.Addr,
			UserSvc:     usrSvc,
			CourseSvc:   crsSvc,
			ProgressSvc: prgSvc,
			Hedera:      hedera.NewClient(logger),
			Logger:      logger,
			SignalShutdown: func() {
				shutdown <- syscall.SIGTERM
			},
		},
	)

	serverErrs := make(chan error, 1)
	go func() {
		serverErrs <- app.Start()
	}()

	select {
	case err := <-serverErrs:
		errAndDie(std, err)
	case sig := <-shutdown:
		std.Printf("shutting down: %v", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			std.Printf("graceful shutdown failed: %v", err)
		}
	}
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
