package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"artcenter/internal/config"
	handlers "artcenter/internal/handler"
	"artcenter/internal/models"
)

// testEnv собирает обработчики со всеми моками, чтобы каждый тест
// настраивал только нужные ему
type testEnv struct {
	tokens     *MockTokenService
	auth       *MockAuthService
	users      *MockUserService
	posts      *MockPostService
	engagement *MockEngagementService

	categoryRepo *MockCategoryRepository
	postRepo     *MockPostRepository
	commentRepo  *MockCommentRepository

	handler *handlers.Handlers
}

func newTestEnv() *testEnv {
	env := &testEnv{
		tokens:       new(MockTokenService),
		auth:         new(MockAuthService),
		users:        new(MockUserService),
		posts:        new(MockPostService),
		engagement:   new(MockEngagementService),
		categoryRepo: new(MockCategoryRepository),
		postRepo:     new(MockPostRepository),
		commentRepo:  new(MockCommentRepository),
	}

	cfg := &config.Config{
		JWTSecretKey:  "test-secret-key",
		ServerPort:    8080,
		MaxUploadSize: 10 * 1024 * 1024,
	}

	env.handler = &handlers.Handlers{
		TokenService:      env.tokens,
		AuthService:       env.auth,
		UserService:       env.users,
		PostService:       env.posts,
		EngagementService: env.engagement,
		CategoryRepo:      env.categoryRepo,
		PostRepo:          env.postRepo,
		CommentRepo:       env.commentRepo,
		Cfg:               cfg,
		Validate:          validator.New(),
	}

	return env
}

// authorize настраивает мок токенов на выдачу identity и возвращает
// запрос с Bearer-заголовком; обработчик при этом оборачивается
// в настоящий AuthGuard через serveProtected
func (e *testEnv) authorize(req *http.Request, identity models.Identity) *http.Request {
	e.tokens.On("Verify", "test-token").Return(identity, nil)
	req.Header.Set("Authorization", "Bearer test-token")
	return req
}

func (e *testEnv) serveProtected(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	guard := handlers.AuthGuard(e.tokens)
	guard(h).ServeHTTP(rr, req)
	return rr
}

// assertJSONError проверяет JSON-ответ с ошибкой в поле msg
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["msg"], expectedMsg)
}
