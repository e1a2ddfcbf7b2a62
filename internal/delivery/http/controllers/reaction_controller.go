package controllers

import (
	"log/slog"
	"net/http"

	"ipe/internal/delivery/http/helpers"
	"ipe/internal/domain"
)

// ReactionState is the response body of the like/save toggles.
type ReactionState struct {
	EntryID string              `json:"entry_id"`
	Kind    domain.ReactionKind `json:"kind"`
	Active  bool                `json:"active"`
}

// ReactionSuccessResponse is the success envelope for the like/save toggles.
type ReactionSuccessResponse struct {
	Data  ReactionState     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ReactionController struct {
	Logger  *slog.Logger
	Service domain.ReactionService
}

func NewReactionController(logger *slog.Logger, svc domain.ReactionService) *ReactionController {
	return &ReactionController{Logger: logger, Service: svc}
}

// ToggleLike godoc
// @Summary Like or unlike an entry
// @Tags reactions
// @Produce json
// @Security BearerAuth
// @Param entryID path string true "Entry ID (UUID)"
// @Success 200 {object} controllers.ReactionSuccessResponse "data.active is true when the entry is now liked"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entries/{entryID}/like [post]
func (c *ReactionController) ToggleLike(w http.ResponseWriter, r *http.Request) {
	c.toggle(w, r, domain.ReactionLike)
}

// ToggleSave godoc
// @Summary Save or unsave an entry
// @Tags reactions
// @Produce json
// @Security BearerAuth
// @Param entryID path string true "Entry ID (UUID)"
// @Success 200 {object} controllers.ReactionSuccessResponse "data.active is true when the entry is now saved"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entries/{entryID}/save [post]
func (c *ReactionController) ToggleSave(w http.ResponseWriter, r *http.Request) {
	c.toggle(w, r, domain.ReactionSave)
}

func (c *ReactionController) toggle(w http.ResponseWriter, r *http.Request, kind domain.ReactionKind) {
	entryID, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	active, err := c.Service.Toggle(r.Context(), kind, entryID, userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ReactionState{EntryID: entryID, Kind: kind, Active: active})
}
