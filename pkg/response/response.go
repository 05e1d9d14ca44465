// Package response writes success payloads and the normalized error envelope.
// It is the only place where typed failures become HTTP responses.
package response

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/user-directory/pkg/apperror"
)

// TimestampLayout is ISO-8601 with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorEnvelope is the wire shape of every failed request.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    any    `json:"message"`
	Field      string `json:"field,omitempty"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	RequestID  string `json:"requestId,omitempty"`
}

// StatusFor maps a failure kind to its HTTP status.
func StatusFor(k apperror.Kind) int {
	switch k {
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindTooManyRequests:
		return http.StatusTooManyRequests
	case apperror.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Normalize builds the envelope for err. Untyped errors become a 500 that
// names the error's type but not its text.
func Normalize(err error, path string, now time.Time) ErrorEnvelope {
	env := ErrorEnvelope{
		Timestamp: now.UTC().Format(TimestampLayout),
		Path:      path,
	}

	var ae *apperror.Error
	if !errors.As(err, &ae) || ae.Kind == apperror.KindUnexpected {
		env.StatusCode = http.StatusInternalServerError
		env.Error = typeName(err)
		env.Message = "internal server error"
		return env
	}

	env.StatusCode = StatusFor(ae.Kind)
	env.Error = ae.Code
	env.Message = ae.Message
	if len(ae.Details) > 0 {
		env.Message = ae.Details
	}
	env.Field = ae.Field
	return env
}

// Fail writes the envelope for err and aborts the handler chain.
// The error is also attached to the context for the access log.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	env := Normalize(err, c.Request.URL.RequestURI(), time.Now())
	env.RequestID = c.GetString("request_id")
	c.AbortWithStatusJSON(env.StatusCode, env)
}

// JSON writes data as the response body with status.
func JSON[T any](c *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, data)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func typeName(err error) string {
	if err == nil {
		return apperror.KindUnexpected.String()
	}
	if ae, ok := err.(*apperror.Error); ok && ae.Err != nil {
		err = ae.Err
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" {
		return apperror.KindUnexpected.String()
	}
	return t.Name()
}
