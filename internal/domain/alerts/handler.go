package alerts

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hemovigil/hemovigil/internal/platform/auth"
	"github.com/hemovigil/hemovigil/pkg/pagination"
)

type Handler struct {
	engine          *Engine
	repo            Repository
	defaultLookback time.Duration
}

func NewHandler(engine *Engine, repo Repository, defaultLookback time.Duration) *Handler {
	return &Handler{engine: engine, repo: repo, defaultLookback: defaultLookback}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "epidemiologist"))
	readGroup.GET("/alerts", h.List)

	runGroup := api.Group("", auth.RequireRole("admin", "epidemiologist"))
	runGroup.POST("/alerts/run", h.Run)
}

// Run triggers one alert evaluation pass. The lookback defaults to the
// configured window and can be overridden with ?days=N.
func (h *Handler) Run(c echo.Context) error {
	lookback := h.defaultLookback
	if days := c.QueryParam("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		lookback = time.Duration(n) * 24 * time.Hour
	}

	res, err := h.engine.Run(c.Request().Context(), lookback)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "alert run failed")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)

	if sev := c.QueryParam("severity"); sev != "" {
		n, err := strconv.Atoi(sev)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid severity")
		}
		items, total, err := h.repo.ListBySeverity(c.Request().Context(), n, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}

	items, total, err := h.repo.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
