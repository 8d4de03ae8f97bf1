package httperr

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope of every non-2xx reply.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the context for ErrorHandler to log and writes
// msg to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := newResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortRetryLater is AbortWithError plus a Retry-After header rounded up to
// whole seconds. Non-positive waits omit the header.
func AbortRetryLater(c *gin.Context, status int, err error, msg string, wait time.Duration, detail any) {
	if wait > 0 {
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
	}
	AbortWithError(c, status, err, msg, detail)
}
