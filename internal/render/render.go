// Package render writes templ components as gin responses.
package render

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

// Component renders comp with status. A render failure is recorded on the context for the
// request logger; whatever was written stays written.
func Component(c *gin.Context, status int, comp templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := comp.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}
