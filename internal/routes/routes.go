package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bklyngarment/storefront/internal/auth"
	"github.com/bklyngarment/storefront/internal/handlers"
	"github.com/bklyngarment/storefront/internal/middleware"
	"github.com/bklyngarment/storefront/internal/session"
)

// Options carries the router-level settings that are not handler dependencies.
type Options struct {
	Signer     *auth.Signer
	Cookie     session.CookieOptions
	CORSOrigin string
}

func SetupRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(h.Log))
	router.Use(middleware.Recovery(h.Log))
	router.Use(middleware.CORS(opts.CORSOrigin))
	router.Use(middleware.Session(opts.Signer, opts.Cookie))

	router.GET("/healthz", h.Healthz)

	// --- Storefront (navbar + footer layout) ---
	router.GET("/", h.Home)
	router.GET("/shop", h.Shop)
	router.GET("/product/:id", h.Product)
	router.GET("/lookbook", h.Lookbook)
	router.GET("/about", h.About)

	// --- Admin (bare layout) ---
	// Logout clears the local token without a backend call.
	router.POST("/admin/logout", h.AdminLogout)

	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AdminGate(h.API, h.Log))
	{
		adminGroup.GET("", h.AdminHome)
		adminGroup.POST("/login", h.AdminLogin)

		protected := adminGroup.Group("/")
		protected.Use(middleware.RequireAdmin())
		{
			protected.GET("/products/new", h.NewProduct)
			protected.POST("/products", h.CreateProduct)
			protected.GET("/products/:id/edit", h.EditProduct)
			protected.POST("/products/:id", h.UpdateProduct)
			protected.GET("/products/:id/delete", h.ConfirmDeleteProduct)
			protected.POST("/products/:id/delete", h.DeleteProduct)

			protected.GET("/lookbook/new", h.NewLookbookItem)
			protected.POST("/lookbook", h.CreateLookbookItem)
			protected.GET("/lookbook/:id/delete", h.ConfirmDeleteLookbookItem)
			protected.POST("/lookbook/:id/delete", h.DeleteLookbookItem)

			if h.Features.VideoShowcase {
				protected.GET("/videos/new", h.NewVideo)
				protected.POST("/videos", h.CreateVideo)
				protected.GET("/videos/:id/delete", h.ConfirmDeleteVideo)
				protected.POST("/videos/:id/delete", h.DeleteVideo)
			}
		}
	}

	router.NoRoute(h.NotFound)

	return router
}
