package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/user-directory/internal/application"
	"github.com/oksasatya/user-directory/internal/domain/entity"
	"github.com/oksasatya/user-directory/pkg/apperror"
	"github.com/oksasatya/user-directory/pkg/response"
	"github.com/oksasatya/user-directory/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	ID          *int   `json:"id" binding:"required,gte=1"`
	Code        string `json:"code" binding:"nonblank"`
	DisplayName string `json:"displayName" binding:"nonblank"`
}

type createUserRequest struct {
	Name    string                `json:"name" binding:"nonblank"`
	Email   string                `json:"email" binding:"required,email"`
	Age     *int                  `json:"age" binding:"required,gte=0"`
	Profile *createProfileRequest `json:"profile" binding:"required"`
}

func (r createUserRequest) toEntity() entity.NewUser {
	return entity.NewUser{
		Name:  r.Name,
		Email: r.Email,
		Age:   *r.Age,
		Profile: entity.Profile{
			ID:          *r.Profile.ID,
			Code:        r.Profile.Code,
			DisplayName: r.Profile.DisplayName,
		},
	}
}

type updateProfileRequest struct {
	ID          *int    `json:"id" binding:"omitempty,gte=1"`
	Code        *string `json:"code" binding:"omitempty,min=1"`
	DisplayName *string `json:"displayName" binding:"omitempty,min=1"`
}

type updateUserRequest struct {
	Name    *string               `json:"name" binding:"omitempty,min=1"`
	Email   *string               `json:"email" binding:"omitempty,email"`
	Age     *int                  `json:"age" binding:"omitempty,gte=0"`
	Profile *updateProfileRequest `json:"profile"`
}

func (r updateUserRequest) toPatch() entity.UserPatch {
	p := entity.UserPatch{Name: r.Name, Email: r.Email, Age: r.Age}
	if r.Profile != nil {
		p.Profile = &entity.ProfilePatch{
			ID:          r.Profile.ID,
			Code:        r.Profile.Code,
			DisplayName: r.Profile.DisplayName,
		}
	}
	return p
}

// parseID reads the :id path parameter as a base-10 integer.
func parseID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, apperror.InvalidField("id", "must be an integer")
	}
	return id, nil
}

func (h *UserHandler) List(c *gin.Context) {
	users := h.Svc.ListUsers(c.Request.Context(), c.Query("q"))
	if users == nil {
		users = []entity.User{}
	}
	response.JSON(c, http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.Validation(validation.ToDetails(err)...))
		return
	}
	u, err := h.Svc.CreateUser(c.Request.Context(), req.toEntity())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.Validation(validation.ToDetails(err)...))
		return
	}
	u, err := h.Svc.UpdateUser(c.Request.Context(), id, req.toPatch())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.Svc.DeleteUser(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.NoContent(c)
}
