package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moodlog/moodlog-go/internal/crypto"
)

type contextKey string

const identityKey contextKey = "identity"

// SessionCookieName is the cookie the session token travels in when no
// Authorization header is present.
const SessionCookieName = "mood_session"

// Identity is the authenticated caller extracted from a session token.
type Identity struct {
	UserID int64
	Email  string
}

// SessionAuth returns middleware that authenticates requests from a bearer
// token or the session cookie. The Authorization header takes precedence over
// the cookie. Verification failures never crash the request; they degrade to
// an authorization error.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing credentials")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			identity := Identity{UserID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest extracts the session token. A present Authorization header
// wins even when malformed; the cookie is only consulted when no header is set.
func tokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			return ""
		}
		return token
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// IdentityFromContext extracts the authenticated caller from the request context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
