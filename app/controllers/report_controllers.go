package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gurpreet0022/sales-dashboard/app/repositories"
	"github.com/Gurpreet0022/sales-dashboard/app/services"
	"github.com/Gurpreet0022/sales-dashboard/pkg/export"
	"github.com/Gurpreet0022/sales-dashboard/pkg/live"
	"github.com/Gurpreet0022/sales-dashboard/pkg/logger"
	"github.com/Gurpreet0022/sales-dashboard/pkg/response"
)

// ReportController exposes the report tables as JSON, CSV and a live
// WebSocket feed. Every endpoint accepts ?range=all|30d|90d|1y.
type ReportController struct {
	service *services.ReportService
	hub     *live.Hub
}

func NewReportController(service *services.ReportService, hub *live.Hub) *ReportController {
	return &ReportController{service: service, hub: hub}
}

// parseRange reads the ?range= query parameter, defaulting to all time.
func parseRange(w http.ResponseWriter, r *http.Request) (repositories.Range, bool) {
	rng, err := repositories.ParseRange(r.URL.Query().Get("range"))
	if err != nil {
		response.BadRequest(w, err.Error())
		return rng, false
	}
	return rng, true
}

// serve runs compute and writes the result or a 500. Storage failures are
// surfaced, not retried.
func serve(w http.ResponseWriter, r *http.Request, report string, compute func() (interface{}, error)) {
	data, err := compute()
	if err != nil {
		logger.WithCtx(r.Context()).Error("report failed", "report", report, "error", err)
		response.Error(w, http.StatusInternalServerError, "report unavailable")
		return
	}
	response.Success(w, data)
}

func (c *ReportController) Overview(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "overview", func() (interface{}, error) { return c.service.Overview(rng) })
}

func (c *ReportController) Revenue(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "total_revenue", func() (interface{}, error) {
		total, err := c.service.TotalRevenue(rng)
		if err != nil {
			return nil, err
		}
		return map[string]float64{"total_revenue": total}, nil
	})
}

func (c *ReportController) TopProducts(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "top_products", func() (interface{}, error) { return c.service.TopProducts(rng) })
}

func (c *ReportController) MonthlyTrend(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "monthly_trend", func() (interface{}, error) { return c.service.MonthlyTrend(rng) })
}

func (c *ReportController) RevenueByCountry(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "revenue_by_country", func() (interface{}, error) { return c.service.RevenueByCountry(rng) })
}

func (c *ReportController) TopCustomers(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "top_customers", func() (interface{}, error) { return c.service.TopCustomers(rng) })
}

func (c *ReportController) Segments(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "segments", func() (interface{}, error) { return c.service.CustomerSegments(rng) })
}

func (c *ReportController) TopCustomersDetail(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "top_customers_detail", func() (interface{}, error) { return c.service.TopCustomersDetail(rng) })
}

func (c *ReportController) ProductPerformance(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "product_performance", func() (interface{}, error) { return c.service.ProductPerformance(rng) })
}

func (c *ReportController) RecentOrders(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}
	serve(w, r, "recent_orders", func() (interface{}, error) { return c.service.RecentOrders(rng) })
}

// CSV streams one report table as a CSV download.
func (c *ReportController) CSV(w http.ResponseWriter, r *http.Request) {
	rng, ok := parseRange(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "report")
	snap, err := c.service.Snapshot(rng)
	if err != nil {
		logger.WithCtx(r.Context()).Error("report failed", "report", name, "error", err)
		response.Error(w, http.StatusInternalServerError, "report unavailable")
		return
	}

	table, found := export.ByName(snap, name)
	if !found {
		response.NotFound(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
	if err := export.WriteCSV(w, table); err != nil {
		logger.WithCtx(r.Context()).Error("csv write failed", "report", name, "error", err)
	}
}

// Live upgrades the request to the snapshot broadcast feed.
func (c *ReportController) Live(w http.ResponseWriter, r *http.Request) {
	c.hub.ServeWS(w, r)
}
