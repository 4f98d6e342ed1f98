package routes

import (
	"net/http"

	"github.com/Gurpreet0022/sales-dashboard/app/controllers"
	"github.com/Gurpreet0022/sales-dashboard/pkg/metrics"
	"github.com/Gurpreet0022/sales-dashboard/pkg/response"
	"github.com/Gurpreet0022/sales-dashboard/pkg/router"
)

func RegisterAPI(r *router.Router, ctrl *controllers.ReportController) {
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	reports := r.Group("/api/reports")
	reports.Get("/overview", "reports.overview", ctrl.Overview)
	reports.Get("/revenue", "reports.revenue", ctrl.Revenue)
	reports.Get("/top-products", "reports.top_products", ctrl.TopProducts)
	reports.Get("/monthly-revenue", "reports.monthly_revenue", ctrl.MonthlyTrend)
	reports.Get("/revenue-by-country", "reports.revenue_by_country", ctrl.RevenueByCountry)
	reports.Get("/top-customers", "reports.top_customers", ctrl.TopCustomers)
	reports.Get("/segments", "reports.segments", ctrl.Segments)
	reports.Get("/top-customers-detail", "reports.top_customers_detail", ctrl.TopCustomersDetail)
	reports.Get("/product-performance", "reports.product_performance", ctrl.ProductPerformance)
	reports.Get("/recent-orders", "reports.recent_orders", ctrl.RecentOrders)
	reports.Get("/live", "reports.live", ctrl.Live)
	reports.Get("/{report}/csv", "reports.csv", ctrl.CSV)
}
