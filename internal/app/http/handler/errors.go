package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"maintsvc/internal/app/dto"
	"maintsvc/internal/app/http/middleware"
	"maintsvc/internal/domain"
	"maintsvc/internal/domain/authz"
)

func subjectFrom(c *gin.Context) authz.Subject {
	return middleware.SubjectFrom(c)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		c.JSON(de.HTTPStatus, dto.ErrorResponse{
			Error: dto.Error{
				Code:    string(de.Code),
				Message: de.Message,
			},
		})
		return
	}

	h.Log.Error("internal error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: dto.Error{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: dto.Error{
			Code:    "BAD_REQUEST",
			Message: msg,
		},
	})
}

// authorize gates the operation before the service layer runs. A denied
// request never reaches a service and therefore never publishes events.
func (h *Handler) authorize(c *gin.Context, action, resource string) bool {
	if err := h.Policy.Authorize(subjectFrom(c), action, resource); err != nil {
		h.writeError(c, err)
		return false
	}
	return true
}
