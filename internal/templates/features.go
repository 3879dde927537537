// Package templates groups the templ layouts and pages rendered by the handlers.
package templates

// Features toggles the optional storefront sections.
type Features struct {
	VideoShowcase bool `json:"video_showcase"`
	FilterPanel   bool `json:"filter_panel"`
}
