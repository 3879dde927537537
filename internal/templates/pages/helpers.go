// Package pages holds the templ pages of the storefront and the admin panel.
package pages

import (
	"net/url"
	"strings"

	"github.com/bklyngarment/storefront/internal/views"
)

func upper(s string) string { return strings.ToUpper(s) }

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// playHref reloads / with the tile's player open and jumps back to it.
func playHref(id string) string {
	return "/?play=" + url.QueryEscape(id) + "#video-" + id
}

func shopHref(category string, sort views.SortKey, filters string) string {
	v := url.Values{}
	v.Set("category", category)
	v.Set("sort", string(sort))
	if filters != "" {
		v.Set("filters", filters)
	}
	return "/shop?" + v.Encode()
}

func filterToggleHref(page views.Shop) string {
	if page.FiltersOpen {
		return shopHref(page.ActiveCategory, page.Sort, "closed")
	}
	return shopHref(page.ActiveCategory, page.Sort, "open")
}

func categoryHref(category string, sort views.SortKey) string {
	return shopHref(category, sort, "open")
}

func sizeHref(productID, size string) string {
	return "/product/" + url.PathEscape(productID) + "?size=" + url.QueryEscape(size)
}

func productFormTitle(form views.ProductForm) string {
	if form.Editing() {
		return "Edit product"
	}
	return "Add product"
}

func productFormHeading(form views.ProductForm) string {
	return upper(productFormTitle(form))
}

func productSubmitLabel(form views.ProductForm) string {
	if form.Editing() {
		return "UPDATE PRODUCT"
	}
	return "CREATE PRODUCT"
}
