package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/smarthealth/patient-api/internal/core/domain"
	"github.com/smarthealth/patient-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.Patient, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Patient, error)
	resolveFn  func(ctx context.Context, token string) (*domain.Patient, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Patient, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Patient, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*domain.Patient, error) {
	return s.resolveFn(ctx, token)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Patient, error) {
			if input.Email != "a@x.com" || input.FullName != "Alice Smith" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Patient{
				ID:           "pid-1",
				FullName:     input.FullName,
				Email:        input.Email,
				PasswordHash: "$2a$10$notyourbusiness",
				Active:       true,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"full_name":"Alice Smith","email":"a@x.com","password":"secret1pass"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if strings.Contains(rec.Body.String(), "notyourbusiness") {
		t.Fatalf("response leaks the stored secret: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	patient, ok := resp["patient"].(map[string]any)
	if !ok {
		t.Fatalf("missing patient in response: %v", resp)
	}
	if patient["id"] != "pid-1" || patient["email"] != "a@x.com" {
		t.Fatalf("unexpected patient payload: %v", patient)
	}
	if patient["active"] != true {
		t.Fatalf("expected active=true, got %v", patient["active"])
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Patient, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/register",
		`{"full_name":"Alice Smith","email":"a@x.com","password":"secret1pass"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.Patient, error) {
			t.Fatalf("service must not be called on validation failure")
			return nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"full_name":"Alice","password":"secret1pass"}`},
		{"bad email", `{"full_name":"Alice","email":"nope","password":"secret1pass"}`},
		{"short password", `{"full_name":"Alice","email":"a@x.com","password":"short"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/auth/register", tc.body)
			if err := h.Register(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Patient, error) {
			if email != "a@x.com" || password != "secret1pass" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed.jwt.token", &domain.Patient{ID: "pid-1", Email: email, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"secret1pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed.jwt.token" {
		t.Fatalf("missing token in response: %v", resp)
	}
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Patient, error) {
			t.Fatalf("service must not be called on validation failure")
			return "", nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"secret1pass"}`},
		{"bad email", `{"email":"nope","password":"secret1pass"}`},
		{"missing password", `{"email":"a@x.com"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodPost, "/auth/login", tc.body)
			if err := h.Login(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.Patient, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
