// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Page context
	Title       string
	SiteName    string
	CurrentPath string

	// Operator context (from auth middleware)
	IsOperator bool

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)

	// Transient status banner (auto-dismissed client-side after ~3s)
	Flash      string
	FlashError string
}

// New creates a populated BaseVM for a page.
func New(r *http.Request) BaseVM {
	_, isOperator := auth.CurrentOperator(r)
	return BaseVM{
		SiteName:    "Folio",
		CurrentPath: r.URL.Path,
		IsOperator:  isOperator,
		CSRFToken:   csrf.Token(r),
	}
}
