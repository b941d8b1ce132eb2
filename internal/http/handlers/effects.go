package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// effectRecorder is the HTTP side of landing.Effects. Only the first effect is
// kept; it becomes a 303 so a navigation never coexists with a rendered page.
type effectRecorder struct {
	kind     string
	url      string
	filename string
}

func newEffects() *effectRecorder { return &effectRecorder{} }

func (e *effectRecorder) record(kind, url, filename string) {
	if e.kind != "" || url == "" {
		return
	}
	e.kind, e.url, e.filename = kind, url, filename
}

func (e *effectRecorder) Navigate(url string) { e.record("navigate", url, "") }

func (e *effectRecorder) TriggerDownload(url, filename string) {
	e.record("download", url, filename)
}

func (e *effectRecorder) OpenExternal(url string) { e.record("open_external", url, "") }

func (e *effectRecorder) Happened() bool { return e.kind != "" }

// redirect writes the recorded effect, if any, and reports whether it did.
// Browsers cannot be told to open a new tab from a redirect, so external
// opens degrade to a plain navigation here.
func (e *effectRecorder) redirect(c *gin.Context) bool {
	if !e.Happened() {
		return false
	}
	c.Redirect(http.StatusSeeOther, e.url)
	return true
}
