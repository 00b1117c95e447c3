// Package templates exposes the fixed catalog of rendering variants the
// wizard's template step offers.
package templates

// Template describes one selectable rendering variant.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
}

var catalog = []Template{
	{
		ID:          "professional",
		Name:        "Professional",
		Description: "Classic centered layout with accent rules, suited to most industries.",
		Preview:     "/static/templates/professional.png",
	},
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "Compact left-accent layout with inline skill lists.",
		Preview:     "/static/templates/modern.png",
	},
}

// List returns the catalog in display order. The slice is a copy; callers may
// not mutate the catalog.
func List() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}
