package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/medibridge/directory-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// FieldError describes one failed validation rule, detailed enough for
// dashboard clients to point at the offending field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// RespondCreated returns the canonical create-endpoint body: just the id.
func RespondCreated(c *gin.Context, id string) {
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// RespondBindError maps request binding failures to a 422 with structured
// per-field errors when the failure came from the validator.
func RespondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":  "error",
			"message": "validation failed",
			"errors":  fields,
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, NewErrorResponse(err.Error()))
}

// RespondError maps an AppError to its HTTP status; anything else is a 500.
func RespondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(statusFor(appErr.Code), NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
}

func statusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrValidation:
		return http.StatusUnprocessableEntity
	case apperrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
