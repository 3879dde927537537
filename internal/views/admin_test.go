package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bklyngarment/storefront/internal/forms"
	"github.com/bklyngarment/storefront/internal/models"
	"github.com/bklyngarment/storefront/internal/viewstate"
)

func TestParseTab(t *testing.T) {
	assert.Equal(t, TabProducts, ParseTab("", true))
	assert.Equal(t, TabLookbook, ParseTab("lookbook", false))
	assert.Equal(t, TabVideos, ParseTab("videos", true))
	assert.Equal(t, TabProducts, ParseTab("videos", false))
	assert.Equal(t, TabProducts, ParseTab("orders", true))
}

func TestAdminDashboardTabCounters(t *testing.T) {
	d := viewstate.Dashboard{
		Products: []models.Product{{ID: "p1"}, {ID: "p2"}},
		Videos:   []models.Video{{ID: "v1"}},
	}

	page := NewAdminDashboard(d, TabVideos, "", true)
	labels := []string{}
	for _, tab := range page.Tabs {
		labels = append(labels, tab.Label)
	}
	assert.Equal(t, []string{"Products (2)", "Videos (1)", "Lookbook (0)"}, labels)
	assert.True(t, page.Tabs[1].Active)
	assert.NotNil(t, page.Lookbook)

	page = NewAdminDashboard(d, TabProducts, "Error deleting product", false)
	assert.Len(t, page.Tabs, 2)
	assert.Equal(t, "Error deleting product", page.Alert)
}

func TestProductFormAction(t *testing.T) {
	create := NewProductForm("", forms.NewProductDraft())
	assert.False(t, create.Editing())
	assert.Equal(t, "/admin/products", create.Action())

	edit := NewProductForm("p9", forms.NewProductDraft())
	assert.True(t, edit.Editing())
	assert.Equal(t, "/admin/products/p9", edit.Action())
}
