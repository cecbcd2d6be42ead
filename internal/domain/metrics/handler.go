package metrics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hemovigil/hemovigil/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "epidemiologist"))
	readGroup.GET("/metrics", h.Summary)
	readGroup.GET("/metrics/heatmap", h.Heatmap)
}

func (h *Handler) Summary(c echo.Context) error {
	var f Filter
	f.MunicipalityCode = c.QueryParam("municipality_code")

	if v := c.QueryParam("age_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid age_min")
		}
		f.AgeMin = &n
	}
	if v := c.QueryParam("age_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid age_max")
		}
		f.AgeMax = &n
	}
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid days")
		}
		f.DaysBack = n
	}

	summary, err := h.svc.Summary(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) Heatmap(c echo.Context) error {
	daysBack := 0
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid days")
		}
		daysBack = n
	}

	buckets, err := h.svc.MunicipalityHeatmap(c.Request().Context(), daysBack)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, buckets)
}
