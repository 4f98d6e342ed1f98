// Package repositories holds the read-only aggregation queries behind the
// dashboard. Every method is a pure function of the current table contents:
// it scans, joins by identifier, groups, aggregates and orders, with no
// caching and no side effects. An empty order set yields zero values or
// empty slices, never an error.
package repositories

import (
	"fmt"
	"time"

	"github.com/Gurpreet0022/sales-dashboard/pkg/metrics"
	"gorm.io/gorm"
)

// ReportRepository runs the aggregation queries.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ─── Row types ───────────────────────────────────────────────────────────────

// Overview is the KPI header row of the dashboard.
type Overview struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	ActiveCustomers int     `json:"active_customers"`
	AvgOrderValue   float64 `json:"avg_order_value"`
}

// ProductSales is one row of the top-selling-products report.
type ProductSales struct {
	ProductName  string  `json:"product_name"`
	TotalSold    int     `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// MonthlyRevenue is one month bucket of the revenue trend.
type MonthlyRevenue struct {
	Month          string  `json:"month"` // YYYY-MM
	MonthlyRevenue float64 `json:"monthly_revenue"`
	MonthlyOrders  int     `json:"monthly_orders"`
}

// CountryRevenue is one row of the revenue-by-country report.
type CountryRevenue struct {
	Country   string  `json:"country"`
	Revenue   float64 `json:"revenue"`
	Customers int     `json:"customers"`
	Orders    int     `json:"orders"`
}

// CustomerSpend is one row of the most-active-customers report.
type CustomerSpend struct {
	Name        string  `json:"name"`
	TotalOrders int     `json:"total_orders"`
	TotalSpent  float64 `json:"total_spent"`
}

// CustomerDetail is one row of the top-customers detail table.
type CustomerDetail struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Country       string  `json:"country"`
	TotalOrders   int     `json:"total_orders"`
	TotalItems    int     `json:"total_items"`
	TotalSpent    float64 `json:"total_spent"`
	LastOrderDate string  `json:"last_order_date"`
}

// ProductPerformance is one row of the product performance table.
type ProductPerformance struct {
	ProductName     string  `json:"product_name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	UnitsSold       int     `json:"units_sold"`
	TotalRevenue    float64 `json:"total_revenue"`
	UniqueCustomers int     `json:"unique_customers"`
}

// RecentOrder is one row of the recent-orders table.
type RecentOrder struct {
	OrderID      uint    `json:"order_id"`
	OrderDate    string  `json:"order_date"`
	CustomerName string  `json:"customer_name"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	OrderValue   float64 `json:"order_value"`
}

// SegmentStat is one row of the customer-segments report.
type SegmentStat struct {
	Segment       string  `json:"segment"`
	CustomerCount int     `json:"customer_count"`
	AvgSpending   float64 `json:"avg_spending"`
}

// ─── Core query set ──────────────────────────────────────────────────────────

// TotalRevenue sums price × quantity over all orders joined to their
// product. Orders whose product is missing are excluded by the inner join.
func (r *ReportRepository) TotalRevenue(rng Range) (float64, error) {
	defer metrics.ObserveReportQuery("total_revenue", time.Now())

	var total float64
	q := rng.apply(r.db.Table("orders o").
		Select("COALESCE(SUM(p.price * o.quantity), 0)").
		Joins("JOIN products p ON p.product_id = o.product_id"))

	if err := q.Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("report: total revenue: %w", err)
	}
	return total, nil
}

// TopProducts returns up to limit products ordered by units sold,
// descending. Ties break on product name ascending so the order is stable.
func (r *ReportRepository) TopProducts(rng Range, limit int) ([]ProductSales, error) {
	defer metrics.ObserveReportQuery("top_products", time.Now())

	rows := []ProductSales{}
	q := rng.apply(r.db.Table("orders o").
		Select("p.product_name AS product_name, SUM(o.quantity) AS total_sold, SUM(p.price * o.quantity) AS total_revenue").
		Joins("JOIN products p ON p.product_id = o.product_id").
		Group("p.product_name").
		Order("total_sold DESC, product_name ASC").
		Limit(limit))

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("report: top products: %w", err)
	}
	return rows, nil
}

// MonthlyTrend buckets orders by calendar month (the first seven characters
// of order_date) and sums revenue per bucket, oldest first. Months with no
// orders are absent; there is no zero-fill.
func (r *ReportRepository) MonthlyTrend(rng Range) ([]MonthlyRevenue, error) {
	defer metrics.ObserveReportQuery("monthly_trend", time.Now())

	rows := []MonthlyRevenue{}
	q := rng.apply(r.db.Table("orders o").
		Select("substr(o.order_date, 1, 7) AS month, SUM(p.price * o.quantity) AS monthly_revenue, COUNT(DISTINCT o.order_id) AS monthly_orders").
		Joins("JOIN products p ON p.product_id = o.product_id").
		Group("substr(o.order_date, 1, 7)").
		Order("month ASC"))

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("report: monthly trend: %w", err)
	}
	return rows, nil
}

// RevenueByCountry groups revenue by the buying customer's country,
// highest revenue first.
func (r *ReportRepository) RevenueByCountry(rng Range) ([]CountryRevenue, error) {
	defer metrics.ObserveReportQuery("revenue_by_country", time.Now())

	rows := []CountryRevenue{}
	q := rng.apply(r.db.Table("orders o").
		Select("c.country AS country, SUM(p.price * o.quantity) AS revenue, COUNT(DISTINCT o.customer_id) AS customers, COUNT(DISTINCT o.order_id) AS orders").
		Joins("JOIN customers c ON c.customer_id = o.customer_id").
		Joins("JOIN products p ON p.product_id = o.product_id").
		Group("c.country").
		Order("revenue DESC, country ASC"))

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("report: revenue by country: %w", err)
	}
	return rows, nil
}

// TopCustomers returns up to limit customers by total spend, descending.
//
// Grouping is by customer NAME, mirroring the dashboard this replaces.
// Two customers sharing a name collapse into one row; see DESIGN.md.
func (r *ReportRepository) TopCustomers(rng Range, limit int) ([]CustomerSpend, error) {
	defer metrics.ObserveReportQuery("top_customers", time.Now())

	rows := []CustomerSpend{}
	q := rng.apply(r.db.Table("orders o").
		Select("c.name AS name, COUNT(o.order_id) AS total_orders, SUM(p.price * o.quantity) AS total_spent").
		Joins("JOIN customers c ON c.customer_id = o.customer_id").
		Joins("JOIN products p ON p.product_id = o.product_id").
		Group("c.name").
		Order("total_spent DESC, name ASC").
		Limit(limit))

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("report: top customers: %w", err)
	}
	return rows, nil
}

// ─── KPI and detail queries ──────────────────────────────────────────────────

// Overview computes the KPI header: total revenue, order count, distinct
// buying customers, and average order value.
func (r *ReportRepository) Overview(rng Range) (Overview, error) {
	defer metrics.ObserveReportQuery("overview", time.Now())

	var out Overview

	revenue, err := r.TotalRevenue(rng)
	if err != nil {
		return out, err
	}
	out.TotalRevenue = revenue

	counts := struct {
		TotalOrders     int
		ActiveCustomers int
	}{}
	q := rng.apply(r.db.Table("orders o").
		Select("COUNT(DISTINCT o.order_id) AS total_orders, COUNT(DISTINCT o.customer_id) AS active_customers"))
	if err := q.Scan(&counts).Error; err != nil {
		return out, fmt.Errorf("report: overview counts: %w", err)
	}
	out.TotalOrders = counts.TotalOrders
	out.ActiveCustomers = counts.ActiveCustomers

	perOrder := rng.apply(r.db.Table("orders o").
		Select("SUM(p.price * o.quantity) AS order_total").
		Joins("JOIN products p ON p.product_id = o.product_id").
		Group("o.order_id"))

	var aov float64
	if err := r.db.Table("(?) AS t", perOrder).
		Select("COALESCE(AVG(order_total), 0)").
		Scan(&aov).Error; err != nil {
		return out, fmt.Errorf("report: avg order value: %w", err)
	}
	out.AvgOrderValue = aov

	return out, nil
}

// CustomerSegments buckets customers by their total spend and reports the
// size and average spend of each bucket, richest bucket first.
func (r *ReportRepository) CustomerSegments(rng Range) ([]SegmentStat, error) {
	defer metrics.ObserveReportQuery("customer_segments", time.Now())

	spend := rng.apply(r.db.Table("orders o").
		Select("SUM(p.price * o.quantity) AS total_spent").
		Joins("JOIN products p ON p.product_id = o.product_id").
		Group("o.customer_id"))

	rows := []SegmentStat{}
	err := r.db.Table("(?) AS spend", spend).
		Select(`CASE
			WHEN total_spent >= 10000 THEN 'VIP'
			WHEN total_spent >= 5000 THEN 'Premium'
			WHEN total_spent >= 1000 THEN 'Regular'
			ELSE 'New'
		END AS segment, COUNT(*) AS customer_count, AVG(total_spent) AS avg_spending`).
		Group("segment").
		Order("avg_spending DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("report: customer segments: %w", err)
	}
	return rows, nil
}

// TopCustomersDetail is the drill-down table behind TopCustomers: contact
// details, item counts and last order date, grouped by customer identifier.
func (r *ReportRepository) TopCustomersDetail(rng Range, limit int) ([]CustomerDetail, error) {
	defer metrics.ObserveReportQuery("top_customers_detail", time.Now())

	rows := []CustomerDetail{}
	q := rng.apply(r.db.Table("orders o").
		Select(`c.name AS name, c.email AS email, c.country AS country,
			COUNT(o.order_id) AS total_orders, SUM(o.quantity) AS total_items,
			SUM(p.price * o.quantity) AS total_spent, MAX(o.order_date) AS last_order_date`).
		Joins("JOIN customers c ON c.customer_id = o.customer_id").
		Joins("JOIN products p ON p.product_id = o.product_id").
		Group("c.customer_id, c.name, c.email, c.country").
		Order("total_spent DESC, name ASC").
		Limit(limit))

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("report: top customers detail: %w", err)
	}
	return rows, nil
}

// ProductPerformance reports per-product sales, revenue and reach, highest
// revenue first.
func (r *ReportRepository) ProductPerformance(rng Range) ([]ProductPerformance, error) {
	defer metrics.ObserveReportQuery("product_performance", time.Now())

	rows := []ProductPerformance{}
	q := rng.apply(r.db.Table("orders o").
		Select(`p.product_name AS product_name, p.category AS category, p.price AS price,
			SUM(o.quantity) AS units_sold, SUM(p.price * o.quantity) AS total_revenue,
			COUNT(DISTINCT o.customer_id) AS unique_customers`).
		Joins("JOIN products p ON p.product_id = o.product_id").
		Group("p.product_id, p.product_name, p.category, p.price").
		Order("total_revenue DESC, product_name ASC"))

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("report: product performance: %w", err)
	}
	return rows, nil
}

// RecentOrders lists the newest orders with customer and product context.
func (r *ReportRepository) RecentOrders(rng Range, limit int) ([]RecentOrder, error) {
	defer metrics.ObserveReportQuery("recent_orders", time.Now())

	rows := []RecentOrder{}
	q := rng.apply(r.db.Table("orders o").
		Select(`o.order_id AS order_id, o.order_date AS order_date, c.name AS customer_name,
			p.product_name AS product_name, o.quantity AS quantity, p.price AS price,
			p.price * o.quantity AS order_value`).
		Joins("JOIN customers c ON c.customer_id = o.customer_id").
		Joins("JOIN products p ON p.product_id = o.product_id").
		Order("o.order_date DESC, o.order_id DESC").
		Limit(limit))

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("report: recent orders: %w", err)
	}
	return rows, nil
}
