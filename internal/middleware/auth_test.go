package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moodlog/moodlog-go/internal/crypto"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, gotIdentity *Identity) http.Handler {
	t.Helper()
	return SessionAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Error("identity missing from context inside protected handler")
		}
		*gotIdentity = identity
		w.WriteHeader(http.StatusOK)
	}))
}

func issueTestToken(t *testing.T) string {
	t.Helper()
	token, err := crypto.GenerateToken(42, "a@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	return token
}

func TestSessionAuth_NoCredentials(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuth_BearerHeader(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if identity.UserID != 42 || identity.Email != "a@x.com" {
		t.Errorf("identity = %+v, want {42 a@x.com}", identity)
	}
}

func TestSessionAuth_Cookie(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueTestToken(t)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if identity.UserID != 42 {
		t.Errorf("UserID = %d, want 42", identity.UserID)
	}
}

func TestSessionAuth_HeaderTakesPrecedenceOverCookie(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	// A malformed header loses the request even when a valid cookie rides
	// along: the header is the authoritative carrier once present.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token garbage")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: issueTestToken(t)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuth_InvalidToken(t *testing.T) {
	var identity Identity
	handler := protectedHandler(t, &identity)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuth_ExpiredToken(t *testing.T) {
	token, err := crypto.GenerateToken(42, "a@x.com", testSecret, time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	var identity Identity
	handler := protectedHandler(t, &identity)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
