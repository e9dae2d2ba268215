// Package ops serves the HTTP side door: probes, prometheus scrapes and
// read-only JSON views of battles and the leaderboard. Moves only go
// through gRPC.
package ops

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/validator"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/archive"
)

// DefaultCheckTimeout bounds each readiness check
const DefaultCheckTimeout = 2 * time.Second

// Check reports whether a dependency is usable
type Check func(ctx context.Context) error

// Config configures the ops server
type Config struct {
	BattleService battle.Service
	Archive       archive.Repository
	Gatherer      prometheus.Gatherer
	// Checks run on /readyz, keyed by dependency name
	Checks       map[string]Check
	CheckTimeout time.Duration
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.Archive == nil {
		vb.RequiredField("Archive")
	}
	if c.Gatherer == nil {
		vb.RequiredField("Gatherer")
	}
	return vb.Build()
}

// Handler serves the ops endpoints
type Handler struct {
	battleService battle.Service
	archive       archive.Repository
	gatherer      prometheus.Gatherer
	checks        map[string]Check
	checkTimeout  time.Duration
}

// NewHandler creates an ops handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid ops config")
	}

	timeout := cfg.CheckTimeout
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}

	return &Handler{
		battleService: cfg.BattleService,
		archive:       cfg.Archive,
		gatherer:      cfg.Gatherer,
		checks:        cfg.Checks,
		checkTimeout:  timeout,
	}, nil
}

// NewEcho builds the echo instance with routes and middleware registered
func (h *Handler) NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			slog.Debug("HTTP request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	h.RegisterRoutes(e)
	return e
}

// RegisterRoutes mounts the ops routes on e
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	v1 := e.Group("/v1")
	v1.GET("/battles/:id", h.GetBattle)
	v1.GET("/battles/:id/archive", h.GetArchivedBattle)
	v1.GET("/leaderboard", h.Leaderboard)
	v1.GET("/opponents", h.ListOpponents)
	v1.GET("/players/:id/battles", h.ListPlayerBattles)
}

// StatusResponse is the probe body
type StatusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PlayerBattlesResponse lists the battles a player took part in
type PlayerBattlesResponse struct {
	PlayerID  string   `json:"player_id"`
	BattleIDs []string `json:"battle_ids"`
}

// LeaderboardQuery holds the leaderboard query parameters
type LeaderboardQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Healthz reports the process is up
func (h *Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz runs every dependency check
func (h *Handler) Readyz(c echo.Context) error {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := StatusResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	code := http.StatusOK
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.checkTimeout)
		err := h.checks[name](ctx)
		cancel()

		if err != nil {
			slog.Warn("Readiness check failed", "check", name, "error", err)
			resp.Checks[name] = err.Error()
			resp.Status = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	return c.JSON(code, resp)
}

// GetBattle returns a battle snapshot
func (h *Handler) GetBattle(c echo.Context) error {
	out, err := h.battleService.GetBattle(c.Request().Context(), &battle.GetBattleInput{
		BattleID: c.Param("id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out.Battle)
}

// GetArchivedBattle returns the archive entry of a settled battle
func (h *Handler) GetArchivedBattle(c echo.Context) error {
	out, err := h.archive.Get(c.Request().Context(), &archive.GetInput{
		BattleID: c.Param("id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out.Entry)
}

// Leaderboard ranks players by settled wins
func (h *Handler) Leaderboard(c echo.Context) error {
	var q LeaderboardQuery
	if err := c.Bind(&q); err != nil {
		return errors.InvalidArgument("limit must be a number")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	out, err := h.archive.Leaderboard(c.Request().Context(), &archive.LeaderboardInput{Limit: q.Limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out.Standings)
}

// ListOpponents returns the opponent roster
func (h *Handler) ListOpponents(c echo.Context) error {
	out, err := h.battleService.ListOpponents(c.Request().Context(), &battle.ListOpponentsInput{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out.Opponents)
}

// ListPlayerBattles returns a player's battle IDs
func (h *Handler) ListPlayerBattles(c echo.Context) error {
	playerID := c.Param("id")
	out, err := h.battleService.ListBattles(c.Request().Context(), &battle.ListBattlesInput{
		PlayerID: playerID,
	})
	if err != nil {
		return err
	}

	ids := out.BattleIDs
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, PlayerBattlesResponse{PlayerID: playerID, BattleIDs: ids})
}

// errorHandler renders domain errors with their HTTP status
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := ErrorResponse{Code: string(errors.CodeInternal), Message: "internal error"}

	var he *echo.HTTPError
	var appErr *errors.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.Code.HTTPStatus()
		body = ErrorResponse{Code: string(appErr.Code), Message: appErr.Message}
	case asHTTPError(err, &he):
		status = he.Code
		body = ErrorResponse{Code: http.StatusText(he.Code), Message: http.StatusText(he.Code)}
	}

	if status >= http.StatusInternalServerError {
		slog.Error("HTTP request failed",
			"path", c.Path(),
			"error", err,
		)
	}

	if err := c.JSON(status, body); err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}

func asHTTPError(err error, target **echo.HTTPError) bool {
	he, ok := err.(*echo.HTTPError)
	if ok {
		*target = he
	}
	return ok
}
