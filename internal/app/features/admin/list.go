// internal/app/features/admin/list.go
package admin

import (
	"context"
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/content"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/filter"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeList handles GET /admin/{resource} (with optional ?q= and
// ?category= filters).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	def, ok := h.definition(w, r)
	if !ok {
		return
	}

	q := query.Search(r, "q")
	category := query.Get(r, "category")
	if category == "" {
		category = filter.All
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := def.List(ctx)
	degraded := false
	if err != nil {
		// A missing or unreachable backend section renders as an empty
		// collection; anything else is a real failure.
		if !api.Degraded(err) {
			h.ErrLog.LogServerError(w, r, "list fetch failed", err, "Unable to load "+def.Plural()+".", "/admin")
			return
		}
		h.Log.Warn("backend unavailable for list, rendering empty",
			zap.String("resource", def.Slug()), zap.Error(err))
		degraded = true
		rows = nil
	}

	var categories []string
	if opts := def.Categories(); opts != nil {
		categories = filter.Options(opts)
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, def.Plural(), "/admin").WithFlashes(h.Flash.Pop(w, r)),
		Section:    section(def),
		Sections:   h.sections(),
		Q:          q,
		Category:   category,
		Categories: categories,
		Rows:       content.FilterRows(rows, category, q),
		Degraded:   degraded,
	}
	templates.Render(w, r, "admin_list", data)
}
