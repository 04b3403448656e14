// Package formutil provides helpers for admin form handling.
//
// The editor forms post indexes and numeric values as strings; these helpers
// centralize the lenient parsing (bad input degrades to a sentinel instead of
// an error page) and the shared base view model for form re-rendering.
package formutil

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/motadesign/folio/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form
// data structs. It embeds viewdata.BaseVM and adds Error for validation
// feedback.
type Base struct {
	viewdata.BaseVM
	Error template.HTML
}

// NewBase creates a populated Base for a form page.
func NewBase(r *http.Request, title string) Base {
	b := Base{BaseVM: viewdata.New(r)}
	b.Title = title
	return b
}

// SetError sets the error message on a Base struct.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}

// Int parses the named form value as an integer. Missing or malformed input
// returns -1, which the collection operations treat as out of range.
func Int(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return -1
	}
	return v
}

// IntDefault parses the named form value as an integer, returning def when
// the value is missing or malformed.
func IntDefault(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return def
	}
	return v
}

// Bool interprets the named form value as a checkbox state.
func Bool(r *http.Request, name string) bool {
	switch r.FormValue(name) {
	case "on", "true", "1":
		return true
	}
	return false
}
