package web

import (
	"net/http"
	"time"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/ops"
	"github.com/hpungsan/repvault/internal/vault"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	vault    vault.Store
	cfg      *config.Config
	renderer *Renderer
}

// HandleHistory handles GET /workouts — the grouped session history.
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	result, err := ops.History(h.vault, h.cfg, time.Now())
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "history", HistoryPageData{
		PageData: PageData{
			Title:   "Workouts",
			Version: h.renderer.version,
			Nav:     "workouts",
		},
		Weeks: result.Weeks,
		Count: result.Count,
	})
}

// HandleDetail handles GET /workouts/{file} — one session document.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Detail(h.vault, h.cfg, ops.DetailInput{
		FileName: r.PathValue("file"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "detail", DetailPageData{
		PageData: PageData{
			Title:   result.DisplayName,
			Version: h.renderer.version,
			Nav:     "workouts",
		},
		Session:      result,
		RenderedHTML: renderMarkdown(result.Body),
	})
}

// HandleFresh handles GET /fresh — muscles ready to train today.
func (h *Handlers) HandleFresh(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Fresh(h.vault, h.cfg, time.Now())
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "fresh", FreshPageData{
		PageData: PageData{
			Title:   "Fresh Muscles",
			Version: h.renderer.version,
			Nav:     "fresh",
		},
		Fresh:              result.Fresh,
		AllTrainedRecently: result.AllTrainedRecently,
	})
}

// HandleProgression handles GET /progression?exercise= — the trend series.
func (h *Handlers) HandleProgression(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")

	data := ProgressionPageData{
		PageData: PageData{
			Title:   "Progression",
			Version: h.renderer.version,
			Nav:     "progression",
		},
		Exercise: exercise,
		HasQuery: exercise != "",
	}

	if exercise == "" {
		h.renderer.renderPage(w, "progression", data)
		return
	}

	result, err := ops.Progression(h.vault, h.cfg, ops.ProgressionInput{Exercise: exercise})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	data.Series = result.Series
	h.renderer.renderPage(w, "progression", data)
}
