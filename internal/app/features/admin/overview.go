// internal/app/features/admin/overview.go
package admin

import (
	"context"
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeOverview renders the console landing page with per-collection
// counts. A collection whose fetch fails shows as degraded rather than
// failing the whole page.
// Route: GET /admin
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	cards := make([]overviewCard, 0, len(h.Defs))
	for _, def := range h.Defs {
		card := overviewCard{sectionVM: section(def)}
		rows, err := def.List(ctx)
		if err != nil {
			h.Log.Warn("overview count unavailable", zap.String("resource", def.Slug()), zap.Error(err))
			card.Degraded = true
		} else {
			card.Count = len(rows)
		}
		cards = append(cards, card)
	}

	data := overviewData{
		BaseVM:   viewdata.NewBaseVM(r, "Content Console", "/").WithFlashes(h.Flash.Pop(w, r)),
		Cards:    cards,
		Sections: h.sections(),
	}
	templates.Render(w, r, "admin_overview", data)
}
