package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"inovitaz_backend/internal/models"
	"inovitaz_backend/pkg/apperrors"
)

type fakeResolver struct {
	users map[string]*models.User
}

func (r *fakeResolver) ResolveUser(_ context.Context, token string) (*models.User, error) {
	user, ok := r.users[token]
	if !ok {
		return nil, apperrors.NewUnauthorizedError("Invalid token")
	}
	return user, nil
}

func newTestRouter(resolver *fakeResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	whoami := func(c *gin.Context) {
		val, ok := c.Get("currentUser")
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": val.(*models.User).Email})
	}

	engine.GET("/optional", AuthOptional(resolver), whoami)
	engine.GET("/required", AuthRequired(resolver), whoami)
	engine.GET("/admin", AdminOnly(resolver), whoami)
	return engine
}

func doRequest(engine *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func testResolver() *fakeResolver {
	return &fakeResolver{users: map[string]*models.User{
		"user-token": {
			BaseModel: models.BaseModel{ID: "u1"},
			Email:     "user@example.com",
			Role:      models.UserRoleUser,
		},
		"admin-token": {
			BaseModel: models.BaseModel{ID: "a1"},
			Email:     "admin@example.com",
			Role:      models.UserRoleAdmin,
		},
	}}
}

func TestAuthOptional(t *testing.T) {
	engine := newTestRouter(testResolver())

	t.Run("no token continues anonymously", func(t *testing.T) {
		rec := doRequest(engine, "/optional", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user":null`)
	})

	t.Run("bad token continues anonymously", func(t *testing.T) {
		rec := doRequest(engine, "/optional", "Bearer junk")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user":null`)
	})

	t.Run("good token resolves user", func(t *testing.T) {
		rec := doRequest(engine, "/optional", "Bearer user-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user@example.com")
	})
}

func TestAuthRequired(t *testing.T) {
	engine := newTestRouter(testResolver())

	t.Run("no token rejected", func(t *testing.T) {
		rec := doRequest(engine, "/required", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		rec := doRequest(engine, "/required", "user-token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token rejected", func(t *testing.T) {
		rec := doRequest(engine, "/required", "Bearer junk")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("good token passes", func(t *testing.T) {
		rec := doRequest(engine, "/required", "Bearer user-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user@example.com")
	})
}

func TestAdminOnly(t *testing.T) {
	engine := newTestRouter(testResolver())

	t.Run("anonymous gets 401", func(t *testing.T) {
		rec := doRequest(engine, "/admin", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("regular user gets 403", func(t *testing.T) {
		rec := doRequest(engine, "/admin", "Bearer user-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := doRequest(engine, "/admin", "Bearer admin-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "admin@example.com")
	})
}

func TestExtractBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Bearer  abc", "abc"},
		{"Basic abc", ""},
		{"abc", ""},
		{"", ""},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		assert.Equal(t, tc.want, extractBearerToken(c), "header %q", tc.header)
	}
}
