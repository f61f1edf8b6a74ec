package callable

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tasknest/tasknest-api/internal/authn"
	"github.com/tasknest/tasknest-api/pkg/metrics"
)

// statusFor maps callable error codes onto HTTP statuses for the adapter.
func statusFor(code Code) int {
	switch code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RegisterHTTP mounts the dispatcher at POST /callable/:name. The caller
// identity comes from claims attached upstream by the identity middleware;
// the dispatcher itself stays transport-agnostic.
func RegisterHTTP(r gin.IRouter, d *Dispatcher) {
	r.POST("/callable/:name", func(c *gin.Context) {
		name := c.Param("name")
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": CodeInvalidArgument, "message": err.Error()}})
			return
		}

		res, err := d.Invoke(c.Request.Context(), name, Request{Data: data, Auth: authn.FromContext(c)})
		if err != nil {
			var ce *Error
			if !errors.As(err, &ce) {
				ce = Internal(err.Error())
			}
			metrics.CallableInvocations.WithLabelValues(name, string(ce.Code)).Inc()
			c.JSON(statusFor(ce.Code), gin.H{"error": ce})
			return
		}
		metrics.CallableInvocations.WithLabelValues(name, "ok").Inc()
		c.JSON(http.StatusOK, gin.H{"result": res})
	})
}
