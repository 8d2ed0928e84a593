package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn  func(username, email, password string) (*models.User, error)
	verifyUserFn  func(username, password string) (*models.User, error)
	getUserByIDFn func(id uint) (*models.User, error)
}

func (m *mockUserService) CreateUser(username, email, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyUser(username, password string) (*models.User, error) {
	if m.verifyUserFn != nil {
		return m.verifyUserFn(username, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

type mockSessionService struct {
	issueFn    func(user *models.User, userAgent, ipAddress string) (string, *models.Session, error)
	validateFn func(token string) (*services.SessionClaims, error)
	revoked    []string
}

func (m *mockSessionService) Issue(user *models.User, userAgent, ipAddress string) (string, *models.Session, error) {
	if m.issueFn != nil {
		return m.issueFn(user, userAgent, ipAddress)
	}
	return "test-token", &models.Session{ID: "session-1", UserID: user.ID}, nil
}

func (m *mockSessionService) Validate(token string) (*services.SessionClaims, error) {
	if m.validateFn != nil {
		return m.validateFn(token)
	}
	return &services.SessionClaims{UserID: 1, Username: "alice", RegisteredClaims: jwt.RegisteredClaims{ID: "session-1"}}, nil
}

func (m *mockSessionService) Revoke(sessionID string) error {
	m.revoked = append(m.revoked, sessionID)
	return nil
}

var _ services.SessionServicer = (*mockSessionService)(nil)

type mockAuditService struct {
	actions []string
}

func (m *mockAuditService) Log(_ uint, action, _ string, _ uint, _ string, _ map[string]interface{}) {
	m.actions = append(m.actions, action)
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/register", handler.Register)
	r.POST("/login", handler.Login)
	auth := r.Group("", injectUserID(1))
	auth.GET("/logout", handler.Logout)
	auth.GET("/api/profile", handler.GetProfile)
	return r
}

func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, uid)
		c.Set(middleware.UsernameKey, "alice")
		c.Set(middleware.SessionIDKey, "session-1")
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
	if result["success"] != false {
		t.Errorf("expected success=false, got %v", result["success"])
	}
}

func assertMessage(t *testing.T, result map[string]interface{}, message string) {
	t.Helper()
	if result["message"] != message {
		t.Errorf("expected message %q, got %q", message, result["message"])
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// --- tests ---

func TestAuthHandler_Register(t *testing.T) {
	t.Run("returns 200 with token and cookie", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(username, email, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: 1}, Username: username, Email: email}, nil
			},
		}
		audit := &mockAuditService{}
		handler := NewAuthHandler(userSvc, &mockSessionService{}, audit, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/register", `{"username":"alice","email":"a@x.com","password":"secret1"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["success"] != true || result["token"] != "test-token" {
			t.Errorf("unexpected body: %v", result)
		}
		assertMessage(t, result, "Account created successfully!")
		user := result["user"].(map[string]interface{})
		if user["username"] != "alice" {
			t.Errorf("expected username alice, got %v", user["username"])
		}
		if _, leaked := user["password_hash"]; leaked {
			t.Error("password hash must not be returned")
		}

		cookie := findCookie(rec, middleware.SessionCookieName)
		if cookie == nil || cookie.Value != "test-token" || !cookie.HttpOnly {
			t.Errorf("expected HttpOnly session cookie, got %+v", cookie)
		}
		if len(audit.actions) != 1 || audit.actions[0] != services.AuditActionRegister {
			t.Errorf("expected register audit, got %v", audit.actions)
		}
	})

	t.Run("returns 400 when a field is missing", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockSessionService{}, &mockAuditService{}, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/register", `{"username":"alice","password":"secret1"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INVALID_INPUT")
		assertMessage(t, result, "All fields are required")
	})

	t.Run("returns 400 on short password", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockSessionService{}, &mockAuditService{}, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/register", `{"username":"alice","email":"a@x.com","password":"12345"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertMessage(t, parseJSON(t, rec), "Password must be at least 6 characters")
	})

	t.Run("returns 400 on duplicate user", func(t *testing.T) {
		userSvc := &mockUserService{
			createUserFn: func(_, _, _ string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateUser
			},
		}
		handler := NewAuthHandler(userSvc, &mockSessionService{}, &mockAuditService{}, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/register", `{"username":"alice","email":"a@x.com","password":"secret1"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "DUPLICATE_USER")
		assertMessage(t, result, "Username or email already exists")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 on valid credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			verifyUserFn: func(username, password string) (*models.User, error) {
				if username != "alice" || password != "secret1" {
					return nil, apperrors.ErrInvalidCredentials
				}
				return &models.User{Base: models.Base{ID: 1}, Username: "alice"}, nil
			},
		}
		handler := NewAuthHandler(userSvc, &mockSessionService{}, &mockAuditService{}, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/login", `{"username":"alice","password":"secret1"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		assertMessage(t, parseJSON(t, rec), "Login successful!")
		if findCookie(rec, middleware.SessionCookieName) == nil {
			t.Error("expected session cookie")
		}
	})

	t.Run("returns 401 on invalid credentials", func(t *testing.T) {
		userSvc := &mockUserService{
			verifyUserFn: func(_, _ string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		handler := NewAuthHandler(userSvc, &mockSessionService{}, &mockAuditService{}, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/login", `{"username":"alice","password":"nope"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INVALID_CREDENTIALS")
		assertMessage(t, result, "Invalid username or password")
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		handler := NewAuthHandler(&mockUserService{}, &mockSessionService{}, &mockAuditService{}, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "POST", "/login", `{"username":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := &mockSessionService{}
	handler := NewAuthHandler(&mockUserService{}, sessions, &mockAuditService{}, time.Hour, false)
	r := setupAuthRouter(handler)

	rec := doRequest(r, "GET", "/logout", "")

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %s", loc)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "session-1" {
		t.Errorf("expected session-1 revoked, got %v", sessions.revoked)
	}
	cookie := findCookie(rec, middleware.SessionCookieName)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Errorf("expected expired session cookie, got %+v", cookie)
	}
}

func TestAuthHandler_GetProfile(t *testing.T) {
	t.Run("returns the user", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(id uint) (*models.User, error) {
				return &models.User{Base: models.Base{ID: id}, Username: "alice", Email: "a@x.com"}, nil
			},
		}
		handler := NewAuthHandler(userSvc, &mockSessionService{}, &mockAuditService{}, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "GET", "/api/profile", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["email"] != "a@x.com" {
			t.Errorf("expected email a@x.com, got %v", user["email"])
		}
	})

	t.Run("returns 404 when the user is gone", func(t *testing.T) {
		userSvc := &mockUserService{
			getUserByIDFn: func(_ uint) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		handler := NewAuthHandler(userSvc, &mockSessionService{}, &mockAuditService{}, time.Hour, false)
		r := setupAuthRouter(handler)

		rec := doRequest(r, "GET", "/api/profile", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "USER_NOT_FOUND")
	})
}
