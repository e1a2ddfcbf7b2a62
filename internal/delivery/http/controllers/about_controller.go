package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"ipe/internal/delivery/http/helpers"
	"ipe/internal/domain"
)

// AboutInfo describes the platform to clients building forms and filters.
type AboutInfo struct {
	AppName                 string   `json:"app_name"`
	Areas                   []string `json:"areas"`
	EvidenceLevels          []string `json:"evidence_levels"`
	InviteRequiredForSubmit bool     `json:"invite_required_for_submit"`
	InviteRequiredForSignUp bool     `json:"invite_required_for_signup"`
}

// AboutSuccessResponse is the success envelope for GET /about.
type AboutSuccessResponse struct {
	Data  AboutInfo         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AboutController struct {
	AppName string
	Gate    domain.InviteGate
}

func NewAboutController(appName string, gate domain.InviteGate) *AboutController {
	return &AboutController{AppName: appName, Gate: gate}
}

// About godoc
// @Summary Describe the platform
// @Description Lists the macro areas and evidence badges, and whether an invite code is needed. The code itself is never returned.
// @Tags meta
// @Produce json
// @Success 200 {object} controllers.AboutSuccessResponse
// @Router /about [get]
func (c *AboutController) About(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, AboutInfo{
		AppName:                 c.AppName,
		Areas:                   domain.Areas,
		EvidenceLevels:          domain.EvidenceLevels,
		InviteRequiredForSubmit: true,
		InviteRequiredForSignUp: c.Gate.RequiredForSignUp(),
	})
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthStatus is the response body of GET /health.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// HealthSuccessResponse is the envelope for GET /health.
type HealthSuccessResponse struct {
	Data  HealthStatus      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// HealthController reports whether the database answers.
type HealthController struct {
	Logger  *slog.Logger
	DB      Pinger
	Timeout time.Duration
}

func NewHealthController(logger *slog.Logger, db Pinger, timeout time.Duration) *HealthController {
	return &HealthController{Logger: logger, DB: db, Timeout: timeout}
}

// Health godoc
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} controllers.HealthSuccessResponse "status: healthy"
// @Failure 503 {object} controllers.HealthSuccessResponse "status: unhealthy"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.Timeout)
	defer cancel()

	if err := c.DB.PingContext(ctx); err != nil {
		c.Logger.WarnContext(ctx, "health check failed", "err", err)
		helpers.WriteJSONSuccess(w, http.StatusServiceUnavailable, HealthStatus{Status: "unhealthy", Database: "unreachable"})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "healthy", Database: "ok"})
}
