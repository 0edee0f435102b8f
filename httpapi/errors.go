package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"hackportal-backend/errs"
)

// Status picks the HTTP status a backend error is reported with.
func Status(err error) int {
	switch {
	case errs.IsValidation(err),
		errors.Is(err, errs.ErrUsernameRequired),
		errors.Is(err, errs.ErrPasswordRequired),
		errors.Is(err, errs.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidCredentials),
		errors.Is(err, errs.ErrUnauthorized),
		errors.Is(err, errs.ErrJWT),
		errors.Is(err, errs.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotOrganizer),
		errors.Is(err, errs.ErrWindowClosed):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTeamNameTaken),
		errors.Is(err, errs.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, errs.ErrNotImplemented):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// fail writes the error envelope the front end reads. Unexpected errors are
// reported without their details.
func fail(c *gin.Context, err error) {
	code := Status(err)

	msg := err.Error()
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = errs.ErrDatabase.Error()
	}

	body := gin.H{
		"status":  false,
		"message": msg,
		"error":   msg,
	}
	if errors.Is(err, errs.ErrWindowClosed) {
		body["window_closed"] = true
	}
	c.AbortWithStatusJSON(code, body)
}
