package modules

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/user-directory/internal/domain/entity"
	handlers "github.com/oksasatya/user-directory/internal/interface/http"
	"github.com/oksasatya/user-directory/internal/interface/middleware"
)

func TestUserModule_Routes(t *testing.T) {
	m := NewUserModule(handlers.NewUserHandler(nil, nil), "X-Role", nil, 10, 0)

	required := map[string][]entity.Role{}
	for _, rt := range m.Routes() {
		required[rt.Method+" "+rt.Path] = rt.Roles
	}
	assert.Empty(t, required["GET /users"])
	assert.Empty(t, required["GET /users/:id"])
	for _, k := range []string{"POST /users", "PATCH /users/:id", "DELETE /users/:id"} {
		assert.Equal(t, []entity.Role{entity.RoleAdmin}, required[k], k)
	}
}

func TestRoute_Mutating(t *testing.T) {
	assert.False(t, Route{Method: http.MethodGet}.Mutating())
	assert.True(t, Route{Method: http.MethodPost}.Mutating())
	assert.True(t, Route{Method: http.MethodPatch}.Mutating())
	assert.True(t, Route{Method: http.MethodDelete}.Mutating())
}

func TestRateKeyFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RealIP())
	got := map[string]string{}
	r.POST("/users", func(c *gin.Context) {
		for _, name := range []string{"ip", "ip_path", "identity", "bogus"} {
			got[name] = RateKeyFor(name)(c)
		}
	})
	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "rl:ip:10.0.0.1", got["ip"])
	assert.Equal(t, "rl:path:/users:ip:10.0.0.1", got["ip_path"])
	assert.Equal(t, "rl:sub:anon:ip:10.0.0.1", got["identity"])
	assert.Equal(t, got["ip"], got["bogus"])
}
