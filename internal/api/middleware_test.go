package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/limbo/snackcheck/internal/api"
	errorvalues "github.com/limbo/snackcheck/internal/error_values"
	"github.com/limbo/snackcheck/internal/nutrition"
	"github.com/limbo/snackcheck/internal/repository"
	"github.com/limbo/snackcheck/internal/rewards"
	"github.com/limbo/snackcheck/internal/service"
	"github.com/limbo/snackcheck/internal/service/mocks"
	"github.com/limbo/snackcheck/pkg/entity"
	jwtservice "github.com/limbo/snackcheck/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func testHandler(w http.ResponseWriter, r *http.Request) {
	user, err := api.GetUserFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + user.ID.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwtService := jwtservice.New("secret", time.Hour)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtService.GenerateToken(testStudent())
	require.NoError(t, err)
	foreignToken, err := jwtservice.New("other_secret", time.Hour).GenerateToken(testStudent())
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Header       string
	}{
		{
			Desc:         "successful auth",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(testStudent(), nil)
			},
			Header: "Bearer " + token,
		},
		{
			Desc:         "deleted user",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
			},
			Header: "Bearer " + token,
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("service error"))
			},
			Header: "Bearer " + token,
		},
		{
			Desc:         "signed with other secret",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
			Header:       "Bearer " + foreignToken,
		},
		{
			Desc:         "no header",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "not a bearer",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
			Header:       "Basic " + token,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				r.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	qService := mocks.NewMockQuizServiceI(ctrl)
	jwtService := jwtservice.New("secret", time.Hour)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		QuizService: qService,
		JwtService:  jwtService,
	})
	student := testStudent()
	admin := testAdmin()
	studentToken, err := jwtService.GenerateToken(student)
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	t.Run("public questions", func(t *testing.T) {
		qService.EXPECT().TodaysQuestions(gomock.Any()).Return([]*entity.QuizQuestion{}, nil)
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/daily-questions/today", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
	t.Run("protected route without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("admin route as student", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), student.ID).Return(student, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
		r.Header.Set("Authorization", "Bearer "+studentToken)
		serv.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("admin route as admin", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), admin.ID).Return(admin, nil)
		uService.EXPECT().List(gomock.Any(), 50, 0).Return([]*entity.User{student}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
		r.Header.Set("Authorization", "Bearer "+adminToken)
		serv.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("path value through router", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), admin.ID).Return(admin, nil)
		uService.EXPECT().DeleteUser(gomock.Any(), student.ID).Return(nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/"+student.ID.String(), nil)
		r.Header.Set("Authorization", "Bearer "+adminToken)
		serv.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("cors preflight", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodOptions, "/api/v1/me", nil)
		r.Header.Set("Origin", "http://localhost:3000")
		r.Header.Set("Access-Control-Request-Method", http.MethodGet)
		serv.ServeHTTP(rr, r)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSnackFlowIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	engine := rewards.NewEngine(rewards.PolicyBanded)
	calendar := service.NewCalendar(time.UTC)
	userService := service.NewUserService(repository.NewUsersRepo(pool))
	serv := api.New(&api.ServicesList{
		UserService:    userService,
		FoodService:    service.NewFoodEntriesService(repository.NewFoodEntriesRepo(pool), nutrition.NewClassifier(nil, nil, 0), engine, calendar, 0),
		QuizService:    service.NewQuizService(repository.NewQuizRepo(pool), engine, calendar),
		GalleryService: service.NewGalleryService(repository.NewGalleryRepo(pool)),
		ChatService:    service.NewChatService(repository.NewChatRepo(pool)),
		JwtService:     jwtservice.New("secret", time.Hour),
	})
	_, err = userService.CreateUser(ctx, &service.CreateUserRequest{
		Name:      username,
		Password:  password,
		ClassCode: "klas1",
	})
	require.NoError(t, err)

	var token string
	t.Run("login", func(t *testing.T) {
		body := marshal(t, api.LoginRequest{Name: username, Password: password, ClassCode: "klas1"})
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.LoginResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, entity.RoleStudentClass1, resp.User.Role)
		token = resp.Token
	})
	t.Run("wrong class code", func(t *testing.T) {
		body := marshal(t, api.LoginRequest{Name: username, Password: password, ClassCode: "KLAS2"})
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("first healthy entry", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string]string{
			"food_name": "apple",
			"meal_type": "Snack",
			"quantity":  "1 piece",
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/food-entries", body)
		r.Header.Set("Content-Type", contentType)
		r.Header.Set("Authorization", "Bearer "+token)
		serv.ServeHTTP(rr, r)
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		var resp service.SubmissionResult
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Positive(t, resp.PointsEarned)
		assert.Equal(t, resp.PointsEarned, resp.Progress.Points)
		assert.Equal(t, 1, resp.Progress.StreakDays)
		assert.Contains(t, resp.NewBadges, rewards.BadgeHealthyStart)
	})
	t.Run("progress visible on me", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		serv.ServeHTTP(rr, r)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var user entity.User
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&user))
		assert.Positive(t, user.Progress.Points)
		assert.Equal(t, rewards.LevelFor(user.Progress.Points), user.Progress.Level)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("snackcheck"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
