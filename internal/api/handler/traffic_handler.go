package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/macetwatch/traffic-monitor/internal/core/ports"
)

// TrafficHandler handles HTTP requests for traffic monitoring operations.
type TrafficHandler struct {
	monitor ports.MonitorService
}

func NewTrafficHandler(monitor ports.MonitorService) *TrafficHandler {
	return &TrafficHandler{monitor: monitor}
}

// Report handles GET /v1/traffic/report — live report over all monitored roads.
//
// @Summary      Live traffic report for all monitored roads
// @Tags         traffic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  trafficReportResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/traffic/report [get]
func (h *TrafficHandler) Report(c echo.Context) error {
	report, err := h.monitor.TrafficReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrafficReportResponse(report))
}

// Locations handles GET /v1/traffic/locations — the monitored road roster.
//
// @Summary      List monitored roads
// @Tags         traffic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.MonitoredLocationInfo
// @Failure      401  {object}  errorResponse
// @Router       /v1/traffic/locations [get]
func (h *TrafficHandler) Locations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.monitor.Locations())
}

// LocationReport handles GET /v1/traffic/locations/:key/report.
//
// @Summary      Live report for a single monitored road
// @Tags         traffic
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "Location key (origin-destination pair)"
// @Success      200  {object}  locationReportResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/traffic/locations/{key}/report [get]
func (h *TrafficHandler) LocationReport(c echo.Context) error {
	report, err := h.monitor.LocationReport(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLocationReportResponse(report))
}

// RouteQuery handles POST /v1/traffic/route-query — on-demand route check
// from the caller's position to a free-form destination.
//
// @Summary      Check traffic on a route to a destination
// @Tags         traffic
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      routeQueryRequest  true  "Origin coordinates and destination text"
// @Success      200   {object}  routeReportResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/traffic/route-query [post]
func (h *TrafficHandler) RouteQuery(c echo.Context) error {
	var req routeQueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	report, err := h.monitor.RouteQuery(c.Request().Context(), toRouteQueryInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRouteReportResponse(report))
}

// Stats handles GET /v1/traffic/stats — summary over the trailing week.
//
// @Summary      Weekly traffic statistics
// @Tags         traffic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/traffic/stats [get]
func (h *TrafficHandler) Stats(c echo.Context) error {
	stats, err := h.monitor.WeeklyStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

// Sweep handles POST /v1/traffic/sweep — trigger a collection cycle now
// instead of waiting for the scheduler. Admin only.
//
// @Summary      Trigger an immediate collection sweep
// @Tags         traffic
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sweepResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/traffic/sweep [post]
func (h *TrafficHandler) Sweep(c echo.Context) error {
	summary, err := h.monitor.Sweep(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweepResponse(summary))
}
