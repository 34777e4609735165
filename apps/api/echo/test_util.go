package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/course"
	"github.com/web3versity/web3versity/core/hedera"
	"github.com/web3versity/web3versity/core/progress"
	"github.com/web3versity/web3versity/core/user"
	emailsvc "github.com/web3versity/web3versity/services/email"
	inmemdb "github.com/web3versity/web3versity/storage/database/inmem"
)

type testEnv struct {
	server   Server
	userRepo user.Repository
	userSvc  user.Service
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	db := inmemdb.NewSeededDB()
	logger := core.NewStdLogger(log.New(os.Stderr, "TEST : ", log.LstdFlags))
	mailSvc := emailsvc.NewConsoleServiceMock()

	userRepo := inmemdb.NewUserRepository(db)
	userSvc := user.NewServiceMock(userRepo, mailSvc, logger)
	courseSvc := course.NewService(inmemdb.NewCourseRepository(db), logger)
	progressSvc := progress.NewService(inmemdb.NewProgressRepository(db), courseSvc, mailSvc, logger)

	srv := NewServer(&Options{
		Addr:           ":0",
		DisableReqLogs: true,
		UserSvc:        userSvc,
		CourseSvc:      courseSvc,
		ProgressSvc:    progressSvc,
		Hedera:         hedera.NewClient(logger),
		Logger:         logger,
	})
	return &testEnv{server: srv, userRepo: userRepo, userSvc: userSvc}
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) createUser(t *testing.T, name, uname, email, pwd string, roles []string) user.User {
	t.Helper()

	now := time.Now().UTC()
	active := true
	usr := user.User{
		Name:      name,
		Username:  uname,
		Email:     email,
		Roles:     roles,
		IsActive:  &active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser() failed: %v", err)
		}
	}
	usr, err := env.userRepo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func (env *testEnv) token(t *testing.T, usr user.User) string {
	t.Helper()

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}
