package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
)

const (
	testCookieName = "Bearer"
	testSecret     = "middleware-test-secret"
)

type stubDenylist struct {
	revoked map[string]bool
}

func (d *stubDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	d.revoked[token] = true
	return nil
}

func (d *stubDenylist) IsRevoked(ctx context.Context, token string) bool {
	return d.revoked[token]
}

func setupRouter(tokens services.TokenService, denylist services.TokenDenylist) (*gin.Engine, *services.Actor) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var seen services.Actor
	router.GET("/protected", middleware.AuthRequired(testCookieName, tokens, denylist), func(c *gin.Context) {
		actor, err := middleware.CurrentActor(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		seen = actor
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router, &seen
}

func doRequest(router *gin.Engine, cookieValue string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookieValue})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_MissingCookie(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router, _ := setupRouter(tokens, nil)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestAuthRequired_ValidCookieCarriesIdentity(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router, seen := setupRouter(tokens, nil)

	userID := uuid.New()
	tokenString, err := tokens.Issue(userID, models.RoleAdmin)
	require.NoError(t, err)

	w := doRequest(router, tokenString)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, models.RoleAdmin, seen.Role)
	assert.True(t, seen.IsAdmin())
}

func TestAuthRequired_TamperedToken(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router, _ := setupRouter(tokens, nil)

	tokenString, err := tokens.Issue(uuid.New(), models.RoleUser)
	require.NoError(t, err)

	w := doRequest(router, tokenString+"x")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	issuer := services.NewTokenService(testSecret, -time.Minute)
	verifier := services.NewTokenService(testSecret, time.Hour)
	router, _ := setupRouter(verifier, nil)

	tokenString, err := issuer.Issue(uuid.New(), models.RoleUser)
	require.NoError(t, err)

	w := doRequest(router, tokenString)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_DenylistedToken(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	denylist := &stubDenylist{revoked: make(map[string]bool)}
	router, _ := setupRouter(tokens, denylist)

	tokenString, err := tokens.Issue(uuid.New(), models.RoleUser)
	require.NoError(t, err)

	// Before signout the token works; after, it is rejected.
	assert.Equal(t, http.StatusOK, doRequest(router, tokenString).Code)

	require.NoError(t, denylist.Revoke(context.Background(), tokenString, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, tokenString).Code)
}
