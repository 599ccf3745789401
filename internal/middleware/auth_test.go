package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armelhouessou/gotask/pkg/auth"
)

func newProtectedRouter(jwtManager *auth.JWTManager) (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)

	var seenUserID uuid.UUID
	r := gin.New()
	r.GET("/protected", AuthMiddleware(jwtManager), func(c *gin.Context) {
		seenUserID = c.MustGet("user_id").(uuid.UUID)
		c.Status(http.StatusOK)
	})
	return r, &seenUserID
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", "gotask-test", 15*time.Minute, time.Hour)
	userID := uuid.New()

	pair, err := jwtManager.GeneratePair(userID, "a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer scheme", authHeader: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "bearer without token", authHeader: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "refresh token is not an access token", authHeader: "Bearer " + pair.RefreshToken, wantStatus: http.StatusUnauthorized},
		{name: "valid access token", authHeader: "Bearer " + pair.AccessToken, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, seenUserID := newProtectedRouter(jwtManager)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, *seenUserID)
			}
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	expired := auth.NewJWTManager("test-secret", "gotask-test", -time.Minute, -time.Minute)
	live := auth.NewJWTManager("test-secret", "gotask-test", 15*time.Minute, time.Hour)

	pair, err := expired.GeneratePair(uuid.New(), "a@x.com")
	require.NoError(t, err)

	r, _ := newProtectedRouter(live)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
