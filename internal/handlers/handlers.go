// Package handlers serves the storefront pages and the admin panel.
package handlers

import (
	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bklyngarment/storefront/internal/admin"
	"github.com/bklyngarment/storefront/internal/apiclient"
	"github.com/bklyngarment/storefront/internal/middleware"
	"github.com/bklyngarment/storefront/internal/render"
	"github.com/bklyngarment/storefront/internal/templates"
	"github.com/bklyngarment/storefront/internal/templates/pages"
)

var (
	_ admin.Authenticator = (*apiclient.Client)(nil)
	_ admin.Backend       = (*apiclient.Client)(nil)
)

// Handlers holds every dependency the route handlers need.
type Handlers struct {
	API      *apiclient.Client
	Admin    *admin.Service
	Log      *logrus.Logger
	Features templates.Features

	// HomeSectionLimit caps the featured, new arrival and video rows on /.
	HomeSectionLimit int
}

// render answers with the view model as JSON when asked to, otherwise with the page.
func (h *Handlers) render(c *gin.Context, status int, data any, page templ.Component) {
	if middleware.WantsJSON(c) {
		c.JSON(status, data)
		return
	}
	render.Component(c, status, page)
}

// notFound renders the not-found page with message.
func (h *Handlers) notFound(c *gin.Context, status int, message string) {
	h.render(c, status, gin.H{"error": message}, pages.NotFound(message))
}
