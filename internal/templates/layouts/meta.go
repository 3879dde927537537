// Package layouts holds the page shells: the storefront layout with navbar and footer and
// the bare admin layout.
package layouts

const siteName = "Bklyn Garment Gallery"

// Meta is what a layout needs from the page it wraps.
type Meta struct {
	Title string
	Nav   string // active navbar entry
}

type navItem struct {
	ID    string
	Label string
	Href  string
}

var navItems = []navItem{
	{ID: "home", Label: "HOME", Href: "/"},
	{ID: "shop", Label: "SHOP", Href: "/shop"},
	{ID: "lookbook", Label: "LOOKBOOK", Href: "/lookbook"},
	{ID: "about", Label: "ABOUT", Href: "/about"},
}

func (m Meta) storeTitle() string {
	if m.Title == "" {
		return siteName
	}
	return m.Title + " | " + siteName
}

func (m Meta) adminTitle() string {
	if m.Title == "" {
		return "Admin | " + siteName
	}
	return m.Title + " | Admin | " + siteName
}
