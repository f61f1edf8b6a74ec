package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/users"
)

// CreateUserRequest accepts the loosely-typed creation body; required fields
// are validated in the service, role defaults there too.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserHandler holds dependencies
type UserHandler struct {
	svc *users.Service
}

func NewUserHandler(svc *users.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register mounts the users routes on the given router.
func (h *UserHandler) Register(r gin.IRouter) {
	r.GET("/users", h.List)
	r.POST("/users", h.Create)
	r.GET("/users/:id", h.Get)
}

func (h *UserHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Invalid(err.Error()))
		return
	}
	u, err := h.svc.Create(c.Request.Context(), req.Name, req.Email, req.Role)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
