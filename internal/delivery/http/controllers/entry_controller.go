package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"ipe/internal/delivery/http/helpers"
	"ipe/internal/delivery/http/middleware"
	"ipe/internal/domain"
)

// EntryFieldsRequest carries the editable fields of an entry. Required fields
// and length limits are enforced by the entry service, after the invite check.
type EntryFieldsRequest struct {
	Title         string `json:"title"`
	Area          string `json:"area"`
	Finding       string `json:"finding"`
	Importance    string `json:"importance"`
	Application   string `json:"application"`
	Audience      string `json:"audience"`
	EvidenceLevel string `json:"evidence_level"`
	SourceLink    string `json:"source_link"`
	ImageURL      string `json:"image_url"`
}

func (f EntryFieldsRequest) input() domain.EntryInput {
	return domain.EntryInput{
		Title:         f.Title,
		Area:          f.Area,
		Finding:       f.Finding,
		Importance:    f.Importance,
		Application:   f.Application,
		Audience:      f.Audience,
		EvidenceLevel: f.EvidenceLevel,
		SourceLink:    f.SourceLink,
		ImageURL:      f.ImageURL,
	}
}

// SubmitEntryRequest is the request body for POST /entries.
type SubmitEntryRequest struct {
	InviteCode string `json:"invite_code"`
	EntryFieldsRequest
}

// EntrySuccessResponse is the success envelope for endpoints returning one entry.
type EntrySuccessResponse struct {
	Data  *domain.Entry     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EntryDetailSuccessResponse is the success envelope for GET /entries/{entryID}.
type EntryDetailSuccessResponse struct {
	Data  *domain.EntryDetail `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// EntryPageSuccessResponse is the success envelope for GET /entries.
type EntryPageSuccessResponse struct {
	Data  helpers.Page[*domain.Entry] `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// EntryListSuccessResponse is the success envelope for unpaginated entry lists.
type EntryListSuccessResponse struct {
	Data  []*domain.Entry   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EntryController struct {
	Logger  *slog.Logger
	Service domain.EntryService
}

func NewEntryController(logger *slog.Logger, svc domain.EntryService) *EntryController {
	return &EntryController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Publish a research entry
// @Description Checks the invite code first, then requires a non-empty source_link (URL or DOI). Unknown areas are filed under Humanas and unknown evidence levels become Inicial. A bare DOI is expanded to https://doi.org/. Titles are limited to 300 characters, links to 2048 and text fields to 10000.
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body SubmitEntryRequest true "Invite code and entry fields"
// @Success 201 {object} controllers.EntrySuccessResponse "data contains the stored entry"
// @Failure 400 {object} helpers.APIResponse "error.code: missing_required_field or bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: invalid_invite_code"
// @Failure 429 {object} helpers.APIResponse "error.code: too_many_requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entries [post]
func (c *EntryController) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req SubmitEntryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry, err := c.Service.Submit(r.Context(), req.InviteCode, userID, req.input())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, entry)
}

// List godoc
// @Summary List research entries
// @Description Newest first. area filters by macro area (ignored when not one of Saúde, Tecnologia, Humanas, Exatas, Biológicas); q searches title, finding and researcher name.
// @Tags entries
// @Produce json
// @Param area query string false "Macro area"
// @Param q query string false "Search text"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.EntryPageSuccessResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entries [get]
func (c *EntryController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	filter := domain.EntryFilter{
		Area:  strings.TrimSpace(r.URL.Query().Get("area")),
		Query: r.URL.Query().Get("q"),
	}
	entries, total, err := c.Service.List(r.Context(), filter, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.Page[*domain.Entry]{
		Items:      entries,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}

// Get godoc
// @Summary Get a research entry
// @Description Counts a view. With a Bearer token the response also says whether the caller liked, saved or owns the entry.
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID (UUID)"
// @Success 200 {object} controllers.EntryDetailSuccessResponse "data contains the entry and viewer flags"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (invalid token)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entries/{entryID} [get]
func (c *EntryController) Get(w http.ResponseWriter, r *http.Request) {
	entryID, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}
	viewerID, _ := middleware.UserIDFromContext(r.Context())
	detail, err := c.Service.Get(r.Context(), entryID, viewerID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Update godoc
// @Summary Edit a research entry
// @Description Owner only. Replaces all editable fields with the same rules as submission; no invite code is needed.
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entryID path string true "Entry ID (UUID)"
// @Param entry body EntryFieldsRequest true "Entry fields"
// @Success 200 {object} controllers.EntrySuccessResponse "data contains the updated entry"
// @Failure 400 {object} helpers.APIResponse "error.code: missing_required_field or bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entries/{entryID} [put]
func (c *EntryController) Update(w http.ResponseWriter, r *http.Request) {
	entryID, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req EntryFieldsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	entry, err := c.Service.Update(r.Context(), entryID, userID, req.input())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a research entry
// @Description Owner only. Likes and saves on the entry are removed with it.
// @Tags entries
// @Security BearerAuth
// @Param entryID path string true "Entry ID (UUID)"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entries/{entryID} [delete]
func (c *EntryController) Delete(w http.ResponseWriter, r *http.Request) {
	entryID, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), entryID, userID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMine godoc
// @Summary List my entries
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EntryListSuccessResponse "data contains the caller's entries, newest first"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entries/mine [get]
func (c *EntryController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	entries, err := c.Service.ListMine(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

// ListByResearcher godoc
// @Summary List a researcher's entries
// @Description Matches the researcher's display name exactly.
// @Tags entries
// @Produce json
// @Param name path string true "Researcher display name"
// @Success 200 {object} controllers.EntryListSuccessResponse "data contains the researcher's entries, newest first"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /researchers/{name}/entries [get]
func (c *EntryController) ListByResearcher(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.ListByResearcher(r.Context(), r.PathValue("name"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}

var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// entryIDFromPath answers 404 for ids that cannot exist.
func entryIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	entryID := r.PathValue("entryID")
	if !uuidRegex.MatchString(entryID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "entry not found")
		return "", false
	}
	return entryID, true
}
