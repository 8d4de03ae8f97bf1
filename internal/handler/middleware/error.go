package middleware

import (
	"log/slog"
	"net/http"

	"creator-market/internal/handler/httperr"
	"creator-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxLoggedStackLines = 12

// ErrorHandler logs server-side failures with their stack and, when a
// handler recorded an error without writing, renders the last public one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"status", resp.Status,
				"error", ginErr.Err.Error(),
				"stack", errs.ExtractStackLines(ginErr.Err, maxLoggedStackLines))
		}

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func lastPublicResponse(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if !c.Errors[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := c.Errors[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}

// CustomRecovery turns a panic into the standard 500 envelope. An SSE stream
// that already started only gets logged; its headers are gone.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err := errs.Newf("panic: %v", rec)
			slog.Error("recovered from panic",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", err.Error(),
				"stack", errs.ExtractStackLines(err, maxLoggedStackLines))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
		}()
		c.Next()
	}
}
