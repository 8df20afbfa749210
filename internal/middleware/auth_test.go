package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newAuthRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		userID, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return r
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{
			name:       "valid token with user_id claim",
			authHeader: "Bearer " + signTestToken(t, jwt.MapClaims{"user_id": userID.String()}),
			wantCode:   http.StatusOK,
		},
		{
			name:       "valid token with sub claim",
			authHeader: "Bearer " + signTestToken(t, jwt.MapClaims{"sub": userID.String()}),
			wantCode:   http.StatusOK,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.jwt",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "no user claim",
			authHeader: "Bearer " + signTestToken(t, jwt.MapClaims{"role": "admin"}),
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "user claim is not a uuid",
			authHeader: "Bearer " + signTestToken(t, jwt.MapClaims{"user_id": "42"}),
			wantCode:   http.StatusUnauthorized,
		},
	}

	r := newAuthRouter(Auth(testSecret))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuth_RejectsWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": uuid.NewString()})
	signed, err := token.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	r := newAuthRouter(Auth(testSecret))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

type adminCheckerFunc func(ctx context.Context, userID uuid.UUID) bool

func (f adminCheckerFunc) IsAdmin(ctx context.Context, userID uuid.UUID) bool {
	return f(ctx, userID)
}

func TestRequireAdmin(t *testing.T) {
	adminID := uuid.New()
	checker := adminCheckerFunc(func(ctx context.Context, userID uuid.UUID) bool {
		return userID == adminID
	})

	newRouter := func(userID *uuid.UUID) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			if userID != nil {
				c.Set(ContextUserID, *userID)
			}
		}, RequireAdmin(checker), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("no authenticated user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		newRouter(nil).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("non-admin user", func(t *testing.T) {
		other := uuid.New()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		newRouter(&other).ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/admin", nil)
		newRouter(&adminID).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}
