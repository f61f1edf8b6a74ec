package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/todo"
	"github.com/tasknest/tasknest-api/internal/todo/service"
)

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}

// RegisterTodoRoutes mounts the todos CRUD surface.
func RegisterTodoRoutes(r gin.IRouter, svc service.Service) {
	r.GET("/todos", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"todos": list})
	})

	r.POST("/todos", func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Invalid(err.Error()))
			return
		}
		completed := false
		if req.Completed != nil {
			completed = *req.Completed
		}
		t, err := svc.Create(c.Request.Context(), req.Title, req.Description, completed)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, t)
	})

	r.PUT("/todos/:id", func(c *gin.Context) {
		var p todo.Patch
		if err := c.ShouldBindJSON(&p); err != nil {
			apperr.Respond(c, apperr.Invalid(err.Error()))
			return
		}
		t, err := svc.Update(c.Request.Context(), c.Param("id"), p)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	})

	r.DELETE("/todos/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
	})
}
