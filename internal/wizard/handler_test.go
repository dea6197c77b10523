package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"khayl/internal/auth"
	"khayl/internal/profile"
	"khayl/internal/services"

	"github.com/gin-gonic/gin"
)

type wizardTestEnv struct {
	router    *gin.Engine
	userRepo  *auth.InMemoryUserRepository
	codeStore *auth.InMemoryCodeStore
}

func setupWizardRouter() *wizardTestEnv {
	gin.SetMode(gin.TestMode)

	userRepo := auth.NewInMemoryUserRepository()
	codeStore := auth.NewInMemoryCodeStore()
	authService := auth.NewService(userRepo, codeStore, auth.LogCodeSender{})

	submitter := NewSubmitter(
		profile.NewInMemoryStore(),
		&fakeUploader{},
		services.NewService(services.NewInMemoryRepository()),
	)
	handler := NewHandler(NewSessionStore(), authService, submitter)

	r := gin.New()
	r.POST("/onboarding/start", handler.Start)
	r.GET("/onboarding/state", handler.GetState)
	r.PUT("/onboarding/signup", handler.UpdateSignUp)
	r.PUT("/onboarding/verification", handler.UpdateVerification)
	r.POST("/onboarding/next", handler.Next)
	r.POST("/onboarding/prev", handler.Prev)

	return &wizardTestEnv{router: r, userRepo: userRepo, codeStore: codeStore}
}

func (env *wizardTestEnv) do(t *testing.T, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func startSession(t *testing.T, env *wizardTestEnv) string {
	t.Helper()

	w := env.do(t, http.MethodPost, "/onboarding/start", "", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("start: expected 201, got %d", w.Code)
	}

	var resp struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.SessionID == "" {
		t.Fatal("start returned no session id")
	}
	return resp.SessionID
}

func TestStartOpensSessionAtStepOne(t *testing.T) {
	env := setupWizardRouter()
	sessionID := startSession(t, env)

	w := env.do(t, http.MethodGet, "/onboarding/state", sessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var state struct {
		Step int `json:"step"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &state)
	if state.Step != 1 {
		t.Fatalf("expected step 1, got %d", state.Step)
	}
}

func TestUnknownSessionIsRejected(t *testing.T) {
	env := setupWizardRouter()

	w := env.do(t, http.MethodGet, "/onboarding/state", "nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSignUpThroughVerificationFlow(t *testing.T) {
	env := setupWizardRouter()
	sessionID := startSession(t, env)

	w := env.do(t, http.MethodPut, "/onboarding/signup", sessionID, map[string]any{
		"userName":        "fatma",
		"email":           "fatma@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
		"acceptedTerms":   true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup update: expected 200, got %d", w.Code)
	}

	// Advancing registers the account and moves to verification.
	w = env.do(t, http.MethodPost, "/onboarding/next", sessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("next: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var state struct {
		Step          int  `json:"step"`
		Authenticated bool `json:"authenticated"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &state)
	if state.Step != 2 || !state.Authenticated {
		t.Fatalf("expected authenticated step 2, got %+v", state)
	}

	user, err := env.userRepo.FindByEmail("fatma@example.com")
	if err != nil {
		t.Fatalf("account shell not created: %v", err)
	}

	// Complete verification with the dispatched code.
	code, _ := env.codeStore.Get(context.Background(), user.ID)
	if code == "" {
		t.Fatal("no verification code dispatched")
	}

	w = env.do(t, http.MethodPut, "/onboarding/verification", sessionID, map[string]any{"code": code})
	if w.Code != http.StatusOK {
		t.Fatalf("verification update: expected 200, got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/onboarding/next", sessionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify next: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &state)
	if state.Step != 3 {
		t.Fatalf("expected step 3 after verification, got %d", state.Step)
	}

	if verified, _ := env.userRepo.FindByEmail("fatma@example.com"); !verified.IsEmailVerified {
		t.Fatal("user row not marked verified")
	}
}

func TestInvalidSignUpReturnsFieldErrors(t *testing.T) {
	env := setupWizardRouter()
	sessionID := startSession(t, env)

	w := env.do(t, http.MethodPost, "/onboarding/next", sessionID, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var state struct {
		Step   int               `json:"step"`
		Errors map[string]string `json:"errors"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &state)
	if state.Step != 1 {
		t.Fatalf("step must not change, got %d", state.Step)
	}
	if state.Errors["email"] == "" || state.Errors["terms"] == "" {
		t.Fatalf("expected field errors, got %v", state.Errors)
	}
}
