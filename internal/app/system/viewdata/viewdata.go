// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/AS-Danish/secure-future-hero/internal/app/system/flash"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
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
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site identity
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string // Token for form submission

	// Transient notifications queued by the previous request
	Flashes []flash.Message
}

var (
	siteMu   sync.RWMutex
	siteName = models.DefaultSiteName
)

// Init overrides the site name shown in page chrome.
// Call once at startup from bootstrap; empty keeps the default.
func Init(name string) {
	if name == "" {
		return
	}
	siteMu.Lock()
	siteName = name
	siteMu.Unlock()
}

// SiteName returns the configured site name.
func SiteName() string {
	siteMu.RLock()
	defer siteMu.RUnlock()
	return siteName
}

// NewBaseVM creates a populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	return BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}

// WithFlashes attaches queued notifications to the view model. Handlers
// that render a full page call this with the store's Pop result so each
// message displays exactly once.
func (vm BaseVM) WithFlashes(msgs []flash.Message) BaseVM {
	vm.Flashes = msgs
	return vm
}
