package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()

	service, _, _ := newTestService()
	handler := NewHandler(service)

	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.GET("/auth/verify", handler.Verify)

	return r
}

func postJSON(r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/auth/register", map[string]string{
		"userName": "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["userId"] == "" || resp["token"] == "" {
		t.Fatalf("expected userId and token in response, got %v", resp)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/auth/register", map[string]string{
		"email": "test@example.com",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTestRouter(t)

	payload := map[string]string{
		"userName": "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	}

	// First request (should succeed)
	w1 := postJSON(r, "/auth/register", payload)
	if w1.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w1.Code)
	}

	// Second request (should fail)
	w2 := postJSON(r, "/auth/register", payload)
	if w2.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w2.Code)
	}
}

func TestVerifyWithoutTokenReportsUnauthenticated(t *testing.T) {
	r := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Authenticated bool `json:"authenticated"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Authenticated {
		t.Fatal("expected authenticated=false without a token")
	}
}

func TestVerifyWithTokenReturnsUser(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/auth/register", map[string]string{
		"userName": "Test User",
		"email":    "test@example.com",
		"password": "Password@123",
	})

	var created struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)

	req := httptest.NewRequest(http.MethodGet, "/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+created.Token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	var resp struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			ID               string `json:"id"`
			ProfileCompleted bool   `json:"profileCompleted"`
		} `json:"user"`
	}
	_ = json.Unmarshal(w2.Body.Bytes(), &resp)

	if !resp.Authenticated || resp.User.ID == "" {
		t.Fatalf("expected authenticated user, got %s", w2.Body.String())
	}
	if resp.User.ProfileCompleted {
		t.Fatal("fresh account must not have a completed profile")
	}
}
