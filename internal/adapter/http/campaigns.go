package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/domain"
)

type campaignListPage struct {
	Title     string
	User      *domain.User
	Campaigns []domain.Campaign
}

// handleCampaignList renders the table of campaigns owned by the session
// user. A store failure is logged and the table renders empty; the user sees
// no error banner.
func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())

	campaigns, err := h.svc.ListOwned(r.Context(), user.Username)
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		campaigns = nil
	}

	h.render(w, "campaigns.html", campaignListPage{
		Title:     "Ad Campaigns",
		User:      &user,
		Campaigns: campaigns,
	})
}

// handleCampaignDelete removes a campaign and returns to the list. There is
// no confirmation step. When the store call fails the redirect still
// happens; the refreshed list simply shows the row again.
func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete campaign error", slog.String("id", id), slog.Any("error", err))
	}
	http.Redirect(w, r, "/campaigns", http.StatusFound)
}
