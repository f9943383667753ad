package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/domain"
	"adboard/internal/core/schema"
)

// campaignFormPage backs the shared create/edit template. Action is the POST
// target, which is the only thing distinguishing the two modes as far as the
// template cares.
type campaignFormPage struct {
	Title       string
	Description string
	User        *domain.User
	Action      string
	CancelURL   string
	Values      schema.CampaignInput
	Errors      schema.FieldErrors

	AgeRanges  []string
	Genders    []string
	States     []string
	Publishers []string
	Devices    []string
}

func newCampaignFormPage(user domain.User) campaignFormPage {
	return campaignFormPage{
		User:       &user,
		AgeRanges:  domain.AgeRanges,
		Genders:    domain.Genders,
		States:     domain.States,
		Publishers: domain.Publishers,
		Devices:    domain.Devices,
	}
}

// formDefaults mirrors the pre-selected values of the original form: first
// member of every closed set, free-text fields empty.
func formDefaults() schema.CampaignInput {
	return schema.CampaignInput{
		TargetAge:    "<18",
		TargetGender: "Male",
		TargetState:  "AL",
		Publishers:   "Hulu",
		Device:       "Mobile",
	}
}

func (h *Handler) handleCampaignNew(w http.ResponseWriter, r *http.Request) {
	page := newCampaignFormPage(currentUser(r.Context()))
	page.Title = "Create A New Campaign"
	page.Description = "Fill out the form below."
	page.Action = "/campaigns"
	page.CancelURL = "/campaigns"
	page.Values = formDefaults()
	h.render(w, "campaign_form.html", page)
}

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	h.submitCampaign(w, r, "")
}

// handleCampaignEdit prefills the form from the stored campaign. When the
// fetch fails there is nothing to edit; log and return to the list.
func (h *Handler) handleCampaignEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	campaign, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("fetch campaign error", slog.String("id", id), slog.Any("error", err))
		http.Redirect(w, r, "/campaigns", http.StatusFound)
		return
	}

	page := newCampaignFormPage(currentUser(r.Context()))
	page.Title = "Edit " + campaign.Name
	page.Description = "Make changes below."
	page.Action = "/campaigns/" + id
	page.CancelURL = "/campaigns/" + id
	page.Values = schema.InputFromCampaign(*campaign)
	h.render(w, "campaign_form.html", page)
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	h.submitCampaign(w, r, chi.URLParam(r, "id"))
}

// submitCampaign is the dual-mode submit path: an empty id creates, a
// non-empty id replaces. Validation failures re-render the form with inline
// messages; a store failure is logged and the form re-renders silently.
func (h *Handler) submitCampaign(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	user := currentUser(r.Context())
	in := campaignInputFromForm(r)

	page := newCampaignFormPage(user)
	page.Values = in
	if id == "" {
		page.Title = "Create A New Campaign"
		page.Description = "Fill out the form below."
		page.Action = "/campaigns"
		page.CancelURL = "/campaigns"
	} else {
		page.Title = "Edit " + in.Name
		page.Description = "Make changes below."
		page.Action = "/campaigns/" + id
		page.CancelURL = "/campaigns/" + id
	}

	saved, errs, err := h.svc.Submit(r.Context(), user, id, in)
	if len(errs) > 0 {
		page.Errors = errs
		h.render(w, "campaign_form.html", page)
		return
	}
	if err != nil {
		h.logger.Error("submit campaign error", slog.String("id", id), slog.Any("error", err))
		h.render(w, "campaign_form.html", page)
		return
	}

	http.Redirect(w, r, "/campaigns/"+saved.ID, http.StatusFound)
}

func campaignInputFromForm(r *http.Request) schema.CampaignInput {
	return schema.CampaignInput{
		Name:          r.FormValue("name"),
		Budget:        r.FormValue("budget"),
		StartDate:     r.FormValue("start_date"),
		EndDate:       r.FormValue("end_date"),
		TargetAge:     r.FormValue("target_age"),
		TargetGender:  r.FormValue("target_gender"),
		TargetCountry: r.FormValue("target_country"),
		TargetCity:    r.FormValue("target_city"),
		TargetState:   r.FormValue("target_state"),
		TargetZipCode: r.FormValue("target_zip_code"),
		Publishers:    r.FormValue("publishers"),
		Device:        r.FormValue("device"),
	}
}
