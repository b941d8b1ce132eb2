package response

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/yungbote/bookfront/internal/platform/apierr"
)

type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// JSONError writes e as an error envelope. Only e.Message reaches the client;
// the wrapped cause is attached to the gin context for the access log.
func JSONError(c *gin.Context, e *apierr.Error) {
	if e == nil {
		e = apierr.New(http.StatusInternalServerError, "internal", nil)
	}
	status := e.Status
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	_ = c.Error(e)
	c.JSON(status, ErrorEnvelope{Error: ErrorBody{Message: msg, Code: e.Code}})
}

func JSON(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// HTML renders into a buffer first so a failed render still answers a clean 500.
func HTML(c *gin.Context, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
