package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/utilities"
)

// maxDumpBytes bounds how much of a body is logged.
const maxDumpBytes = 4096

// redactedHeaders never reach the log.
var redactedHeaders = []string{"Authorization", "Cookie"}

func RequestDumpMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxDumpBytes+1))
			c.Request.Body = peekedBody{
				Reader: io.MultiReader(bytes.NewReader(bodyBytes), c.Request.Body),
				Closer: c.Request.Body,
			}
		}

		body := string(bodyBytes)
		if len(bodyBytes) > maxDumpBytes {
			body = string(bodyBytes[:maxDumpBytes]) + "...(truncated)"
		}

		utilities.Debug(
			"[Request]\n"+
				"\tMethod: %s\n"+
				"\tURL: %s\n"+
				"\tHeaders: %v\n"+
				"\tParams: %v\n"+
				"\tBody: %s",
			c.Request.Method,
			c.Request.URL.String(),
			redact(c.Request.Header),
			c.Params,
			body,
		)

		c.Next()
	}
}

// peekedBody replays the logged prefix ahead of the unread remainder.
type peekedBody struct {
	io.Reader
	io.Closer
}

func redact(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range redactedHeaders {
		if out.Get(name) != "" {
			out.Set(name, "[redacted]")
		}
	}
	return out
}
