package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bklyngarment/storefront/internal/forms"
	"github.com/bklyngarment/storefront/internal/models"
	"github.com/bklyngarment/storefront/internal/views"
	"github.com/bklyngarment/storefront/internal/viewstate"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestStoreLayoutWrapsPages(t *testing.T) {
	products := []models.Product{{ID: "p1", Name: "Lion Tee", Price: 35, Category: "tees"}}
	shop := views.NewShop(products, nil, "all", views.SortNewest, false)
	body := render(t, Shop(shop))

	assert.Contains(t, body, `data-testid="navbar"`)
	assert.Contains(t, body, `data-testid="footer"`)
	assert.Contains(t, body, `<a href="/shop" class="active">SHOP</a>`)
	assert.Contains(t, body, "<title>Shop | Bklyn Garment Gallery</title>")
	assert.Contains(t, body, "1 products")
	assert.Contains(t, body, "$35.00")
}

func TestShopEmptyCategory(t *testing.T) {
	products := []models.Product{{ID: "p1", Name: "Lion Tee", Category: "tees"}}
	shop := views.NewShop(products, nil, "hoodies", views.SortNewest, false)
	body := render(t, Shop(shop))

	assert.Contains(t, body, "0 products")
	assert.Contains(t, body, "No products in this category yet.")
}

func TestShopFilterLinksKeepSort(t *testing.T) {
	categories := []models.Category{{ID: "tees", Name: "Tees"}}
	shop := views.NewShop(nil, categories, "tees", views.SortPriceLow, true)
	body := render(t, Shop(shop))

	assert.Contains(t, body, `data-testid="filter-panel"`)
	assert.Contains(t, body, `href="/shop?category=tees&amp;filters=open&amp;sort=price-low" class="category-btn active"`)
	assert.Contains(t, body, `href="/shop?category=tees&amp;filters=closed&amp;sort=price-low">FILTERS</a>`)
	assert.Contains(t, body, `<input type="hidden" name="filters" value="open">`)
}

func TestAdminLayoutHasNoNavbar(t *testing.T) {
	body := render(t, AdminLogin(views.AdminLogin{Error: "Invalid credentials"}))

	assert.NotContains(t, body, `data-testid="navbar"`)
	assert.NotContains(t, body, `data-testid="footer"`)
	assert.Contains(t, body, "Invalid credentials")
	assert.Contains(t, body, "<title>Login | Admin | Bklyn Garment Gallery</title>")
}

func TestHomeVideoPlaceholders(t *testing.T) {
	body := render(t, Home(views.NewHome(nil, nil, nil, 4, true)))
	assert.Contains(t, body, "Add videos from admin panel")
	assert.Contains(t, body, "No new arrivals yet. Check back soon!")

	body = render(t, Home(views.NewHome(nil, nil, nil, 4, false)))
	assert.NotContains(t, body, `data-testid="video-section"`)
}

func TestHomeVideosWaitForPlay(t *testing.T) {
	videos := []models.Video{{ID: "v1", Title: "Drop", VideoURL: "https://youtu.be/abc"}}
	home := views.NewHome(nil, nil, videos, 4, true)

	body := render(t, Home(home))
	assert.NotContains(t, body, "<iframe")
	assert.NotContains(t, body, "autoplay=1")
	assert.Contains(t, body, `href="/?play=v1#video-v1"`)

	body = render(t, Home(home.Play("v1")))
	assert.Contains(t, body, `<iframe src="https://www.youtube.com/embed/abc?autoplay=1"`)
}

func TestProductSizeButtons(t *testing.T) {
	p := models.Product{ID: "p1", Name: "Lion Tee", Sizes: []string{"S", "M"}, InStock: false}
	body := render(t, Product(views.NewProductDetail(p, "M")))

	assert.Contains(t, body, `href="/product/p1?size=M" class="size-btn active"`)
	assert.Contains(t, body, `href="/product/p1?size=S" class="size-btn"`)
	assert.Contains(t, body, "OUT OF STOCK")
	assert.Contains(t, body, "Printed in Brooklyn by Aesthetic BK")
}

func TestLookbookEmptyAndItems(t *testing.T) {
	body := render(t, Lookbook(views.NewLookbook(nil)))
	assert.Contains(t, body, "Lookbook coming soon")

	items := []models.LookbookItem{{ID: "l1", Title: "Fall", ImageURL: "https://cdn.example.com/l1.jpg"}}
	body = render(t, Lookbook(views.NewLookbook(items)))
	assert.Contains(t, body, `data-testid="lookbook-item-l1"`)
	assert.NotContains(t, body, "Lookbook coming soon")
}

func TestProductFormKeepsDraftAndErrors(t *testing.T) {
	draft := forms.ProductDraft{Name: "Lion <Tee>", Price: "abc", Category: "hoodies", Featured: true}
	form := views.NewProductForm("", draft)
	form.Errors = forms.FieldErrors{"price": "Enter a number, e.g. 35.00.", "in_stock": "Tick or untick this box."}
	form.Alert = "Error saving product: boom"
	body := render(t, ProductForm(form))

	assert.Contains(t, body, `value="Lion &lt;Tee&gt;"`)
	assert.Contains(t, body, "Enter a number")
	assert.Contains(t, body, "Tick or untick this box.")
	assert.Contains(t, body, "Error saving product: boom")
	assert.Contains(t, body, `<option value="hoodies" selected>HOODIES</option>`)
	assert.Contains(t, body, `name="featured" value="true" checked>`)
	assert.Contains(t, body, `action="/admin/products"`)
	assert.Contains(t, body, "CREATE PRODUCT")
}

func TestProductFormEditing(t *testing.T) {
	body := render(t, ProductForm(views.NewProductForm("p1", forms.NewProductDraft())))
	assert.Contains(t, body, `action="/admin/products/p1"`)
	assert.Contains(t, body, "EDIT PRODUCT")
	assert.Contains(t, body, `name="in_stock" value="true" checked>`)
	assert.Contains(t, body, `name="featured" value="true">`)
}

func TestDashboardRendersTabs(t *testing.T) {
	d := viewstate.Dashboard{Products: []models.Product{{ID: "p1", Name: "Lion Tee"}}}
	page := views.NewAdminDashboard(d, views.TabProducts, "Error deleting product", true)
	body := render(t, AdminDashboard(page))

	assert.Contains(t, body, "Products (1)")
	assert.Contains(t, body, "Videos (0)")
	assert.Contains(t, body, "Error deleting product")
	assert.Contains(t, body, `data-testid="product-row-p1"`)
	assert.NotContains(t, body, `data-testid="add-video-btn"`)
}

func TestDashboardVideosTab(t *testing.T) {
	d := viewstate.Dashboard{Videos: []models.Video{{ID: "v1", Title: "Drop", VideoURL: "https://youtu.be/abc"}}}
	body := render(t, AdminDashboard(views.NewAdminDashboard(d, views.TabVideos, "", true)))

	assert.Contains(t, body, `<iframe src="https://www.youtube.com/embed/abc"`)
	assert.Contains(t, body, "Drop (inactive)")
}

func TestConfirmDelete(t *testing.T) {
	body := render(t, ConfirmDelete(views.ConfirmDelete{
		Kind: "product", Name: "Lion Tee", Action: "/admin/products/p1/delete", Back: "/admin?tab=products",
	}))
	assert.Contains(t, body, "Are you sure you want to delete this product?")
	assert.Contains(t, body, `action="/admin/products/p1/delete"`)
	assert.Contains(t, body, `name="confirm" value="yes"`)
}

func TestNotFoundDefaultMessage(t *testing.T) {
	assert.Contains(t, render(t, NotFound("")), "Page not found")
	assert.Contains(t, render(t, NotFound("Product not found")), "Product not found")
}
