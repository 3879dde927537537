package views

import (
	"fmt"

	"github.com/bklyngarment/storefront/internal/forms"
	"github.com/bklyngarment/storefront/internal/models"
	"github.com/bklyngarment/storefront/internal/viewstate"
)

// AdminTab selects the dashboard section.
type AdminTab string

const (
	TabProducts AdminTab = "products"
	TabVideos   AdminTab = "videos"
	TabLookbook AdminTab = "lookbook"
)

// ParseTab reads ?tab=. The videos tab only exists when the showcase is enabled.
func ParseTab(raw string, videos bool) AdminTab {
	switch AdminTab(raw) {
	case TabLookbook:
		return TabLookbook
	case TabVideos:
		if videos {
			return TabVideos
		}
	}
	return TabProducts
}

// TabLink is one dashboard tab button, e.g. "Products (3)".
type TabLink struct {
	ID     AdminTab `json:"id"`
	Label  string   `json:"label"`
	Href   string   `json:"href"`
	Active bool     `json:"active"`
}

// AdminDashboard is the /admin page once authenticated.
type AdminDashboard struct {
	Tab      AdminTab              `json:"tab"`
	Tabs     []TabLink             `json:"tabs"`
	Products []ProductCard         `json:"products"`
	Lookbook []models.LookbookItem `json:"lookbook"`
	Videos   []VideoTile           `json:"videos"`
	Alert    string                `json:"alert,omitempty"`
}

// NewAdminDashboard builds the page from the stored lists.
func NewAdminDashboard(d viewstate.Dashboard, tab AdminTab, alert string, videos bool) AdminDashboard {
	tabs := []TabLink{tabLink(TabProducts, "Products", len(d.Products), tab)}
	if videos {
		tabs = append(tabs, tabLink(TabVideos, "Videos", len(d.Videos), tab))
	}
	tabs = append(tabs, tabLink(TabLookbook, "Lookbook", len(d.Lookbook), tab))

	lookbook := d.Lookbook
	if lookbook == nil {
		lookbook = []models.LookbookItem{}
	}
	return AdminDashboard{
		Tab:      tab,
		Tabs:     tabs,
		Products: Cards(d.Products),
		Lookbook: lookbook,
		Videos:   VideoTiles(d.Videos),
		Alert:    alert,
	}
}

func tabLink(id AdminTab, name string, n int, active AdminTab) TabLink {
	return TabLink{
		ID:     id,
		Label:  fmt.Sprintf("%s (%d)", name, n),
		Href:   "/admin?tab=" + string(id),
		Active: id == active,
	}
}

// AdminLogin is the login form.
type AdminLogin struct {
	Username string `json:"username"`
	Error    string `json:"error,omitempty"`
}

// ProductForm is the add/edit product modal.
type ProductForm struct {
	ID         string             `json:"id,omitempty"`
	Draft      forms.ProductDraft `json:"draft"`
	Errors     forms.FieldErrors  `json:"errors,omitempty"`
	Alert      string             `json:"alert,omitempty"`
	Categories []string           `json:"categories"`
}

// Editing reports whether the form updates an existing product.
func (f ProductForm) Editing() bool { return f.ID != "" }

// Action is the form's POST target.
func (f ProductForm) Action() string {
	if f.Editing() {
		return "/admin/products/" + f.ID
	}
	return "/admin/products"
}

// NewProductForm wraps a draft for rendering.
func NewProductForm(id string, draft forms.ProductDraft) ProductForm {
	return ProductForm{ID: id, Draft: draft, Categories: models.Categories}
}

// LookbookForm is the add lookbook image modal.
type LookbookForm struct {
	Draft  forms.LookbookDraft `json:"draft"`
	Errors forms.FieldErrors   `json:"errors,omitempty"`
	Alert  string              `json:"alert,omitempty"`
}

// VideoForm is the add video modal.
type VideoForm struct {
	Draft  forms.VideoDraft  `json:"draft"`
	Errors forms.FieldErrors `json:"errors,omitempty"`
	Alert  string            `json:"alert,omitempty"`
}

// ConfirmDelete asks before a delete is sent.
type ConfirmDelete struct {
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Action string `json:"action"`
	Back   string `json:"back"`
}
