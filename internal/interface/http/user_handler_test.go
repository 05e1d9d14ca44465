package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/user-directory/internal/domain/entity"
	"github.com/oksasatya/user-directory/pkg/apperror"
)

func ptr[T any](v T) *T { return &v }

func TestCreateUserRequest_ToEntity(t *testing.T) {
	req := createUserRequest{
		Name:    "Ana",
		Email:   "Ana@Example.com",
		Age:     ptr(0),
		Profile: &createProfileRequest{ID: ptr(4), Code: "USR", DisplayName: "Usuario"},
	}
	assert.Equal(t, entity.NewUser{
		Name:    "Ana",
		Email:   "Ana@Example.com",
		Age:     0,
		Profile: entity.Profile{ID: 4, Code: "USR", DisplayName: "Usuario"},
	}, req.toEntity())
}

func TestUpdateUserRequest_ToPatch(t *testing.T) {
	p := updateUserRequest{Name: ptr("New")}.toPatch()
	assert.Equal(t, "New", *p.Name)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.Age)
	assert.Nil(t, p.Profile)

	p = updateUserRequest{Profile: &updateProfileRequest{DisplayName: ptr("X")}}.toPatch()
	require.NotNil(t, p.Profile)
	assert.Nil(t, p.Profile.ID)
	assert.Nil(t, p.Profile.Code)
	assert.Equal(t, "X", *p.Profile.DisplayName)
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for raw, want := range map[string]int{"1": 1, "42": 42, "-3": -3} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		id, err := parseID(c)
		require.NoError(t, err, raw)
		assert.Equal(t, want, id)
	}

	for _, raw := range []string{"abc", "1.5", ""} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, err := parseID(c)
		assert.True(t, apperror.Is(err, apperror.KindValidation), raw)
	}
}

func TestNotFound_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/nope", nil)

	NotFound(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"NotFound"`)
}
