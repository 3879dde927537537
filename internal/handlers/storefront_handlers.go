package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/bklyngarment/storefront/internal/apiclient"
	"github.com/bklyngarment/storefront/internal/models"
	"github.com/bklyngarment/storefront/internal/templates/pages"
	"github.com/bklyngarment/storefront/internal/views"
)

// Home renders / with featured products, new arrivals and active videos fetched in parallel.
// ?play= opens one video's player.
func (h *Handlers) Home(c *gin.Context) {
	ctx := c.Request.Context()
	yes := true

	var featured, newArrivals []models.Product
	var videos []models.Video

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		featured = h.listProducts(gctx, apiclient.ProductQuery{Featured: &yes}, "featured products")
		return nil
	})
	g.Go(func() error {
		newArrivals = h.listProducts(gctx, apiclient.ProductQuery{NewArrival: &yes}, "new arrivals")
		return nil
	})
	if h.Features.VideoShowcase {
		g.Go(func() error {
			list, err := h.API.ListVideos(gctx, true)
			if err != nil {
				h.Log.WithError(err).Error("Error fetching videos")
				return nil
			}
			videos = list
			return nil
		})
	}
	_ = g.Wait()

	page := views.NewHome(featured, newArrivals, videos, h.HomeSectionLimit, h.Features.VideoShowcase).
		Play(c.Query("play"))
	h.render(c, http.StatusOK, page, pages.Home(page))
}

// Shop renders /shop. ?category=, ?sort= and ?filters=open drive the derived list.
func (h *Handlers) Shop(c *gin.Context) {
	ctx := c.Request.Context()

	var products []models.Product
	var categories []models.Category

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products = h.listProducts(gctx, apiclient.ProductQuery{}, "products")
		return nil
	})
	g.Go(func() error {
		list, err := h.API.ListCategories(gctx)
		if err != nil {
			h.Log.WithError(err).Error("Error fetching categories")
			return nil
		}
		categories = list
		return nil
	})
	_ = g.Wait()

	filtersOpen := h.Features.FilterPanel && c.Query("filters") == "open"
	page := views.NewShop(
		products,
		categories,
		views.NormalizeCategory(c.Query("category")),
		views.ParseSort(c.Query("sort")),
		filtersOpen,
	)
	page.FilterPanel = h.Features.FilterPanel
	h.render(c, http.StatusOK, page, pages.Shop(page))
}

// Product renders /product/:id. ?size= preselects a size.
func (h *Handlers) Product(c *gin.Context) {
	id := c.Param("id")
	product, err := h.API.GetProduct(c.Request.Context(), id)
	if err != nil {
		status := http.StatusNotFound
		if !errors.Is(err, apiclient.ErrNotFound) {
			h.Log.WithError(err).WithField("product_id", id).Error("Error fetching product")
			status = http.StatusBadGateway
		}
		h.notFound(c, status, "Product not found")
		return
	}
	page := views.NewProductDetail(*product, c.Query("size"))
	h.render(c, http.StatusOK, page, pages.Product(page))
}

// Lookbook renders /lookbook.
func (h *Handlers) Lookbook(c *gin.Context) {
	items, err := h.API.ListLookbook(c.Request.Context())
	if err != nil {
		h.Log.WithError(err).Error("Error fetching lookbook")
	}
	page := views.NewLookbook(items)
	h.render(c, http.StatusOK, page, pages.Lookbook(page))
}

// About renders the static /about page.
func (h *Handlers) About(c *gin.Context) {
	h.render(c, http.StatusOK, views.MadeToOrder, pages.About(views.MadeToOrder))
}

// NotFound is the catch-all for unknown paths.
func (h *Handlers) NotFound(c *gin.Context) {
	h.notFound(c, http.StatusNotFound, "Page not found")
}

func (h *Handlers) listProducts(ctx context.Context, q apiclient.ProductQuery, what string) []models.Product {
	list, err := h.API.ListProducts(ctx, q)
	if err != nil {
		h.Log.WithError(err).Errorf("Error fetching %s", what)
		return nil
	}
	return list
}
