package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivam222343/doantion-app/apperr"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1200: "resource not found",
		1201: "not authorized",
		1202: "conflicting state, please refresh",
		1203: "operation not allowed in the current state",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	kindCode = map[apperr.Kind]int64{
		apperr.NotFound:         1200,
		apperr.Forbidden:        1201,
		apperr.Conflict:         1202,
		apperr.InvalidOperation: 1203,
		apperr.InvalidInput:     1010,
	}

	kindStatus = map[apperr.Kind]int{
		apperr.NotFound:         http.StatusNotFound,
		apperr.Forbidden:        http.StatusForbidden,
		apperr.Conflict:         http.StatusConflict,
		apperr.InvalidOperation: http.StatusUnprocessableEntity,
		apperr.InvalidInput:     http.StatusBadRequest,
	}
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// abortWithError answers with the status of the error kind. The message of
// an unexpected error is never exposed.
func abortWithError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		log.WithField("path", c.Request.URL.Path).Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	abortWithEncoding(c, status, ErrorResponse{
		Code:    kindCode[kind],
		Message: apperr.MessageOf(err),
	}, err)
}
