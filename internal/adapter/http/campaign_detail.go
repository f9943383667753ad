package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/domain"
)

type campaignDetailPage struct {
	Title    string
	User     *domain.User
	Campaign domain.Campaign
}

// handleCampaignDetail renders a read-only summary of one campaign. A fetch
// failure is logged and the page renders with empty fields.
func (h *Handler) handleCampaignDetail(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	id := chi.URLParam(r, "id")

	var campaign domain.Campaign
	if c, err := h.svc.Get(r.Context(), id); err != nil {
		h.logger.Error("fetch campaign error", slog.String("id", id), slog.Any("error", err))
	} else {
		campaign = *c
	}

	h.render(w, "campaign_detail.html", campaignDetailPage{
		Title:    campaign.Name,
		User:     &user,
		Campaign: campaign,
	})
}
