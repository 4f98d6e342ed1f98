// Package services composes the aggregation queries into the surface the
// dashboard consumes. The service adds a short-TTL result cache in front of
// the repository so repeated renders of the same view do not re-run the
// same aggregation; the repository itself always recomputes from the
// tables.
package services

import (
	"time"

	"github.com/Gurpreet0022/sales-dashboard/app/repositories"
	"github.com/Gurpreet0022/sales-dashboard/pkg/cache"
)

// Default row limits, matching the dashboard layout.
const (
	TopProductLimit    = 5
	TopCustomerLimit   = 5
	CustomerDetailRows = 10
	RecentOrderRows    = 20
)

// Snapshot is one full dashboard render: every report at a single point
// in time. It is what the live WebSocket feed broadcasts and what the
// CSV exporter walks.
type Snapshot struct {
	GeneratedAt      time.Time                         `json:"generated_at"`
	Range            repositories.Range                `json:"range"`
	Overview         repositories.Overview             `json:"overview"`
	TopProducts      []repositories.ProductSales       `json:"top_products"`
	MonthlyTrend     []repositories.MonthlyRevenue     `json:"monthly_trend"`
	RevenueByCountry []repositories.CountryRevenue     `json:"revenue_by_country"`
	TopCustomers     []repositories.CustomerSpend      `json:"top_customers"`
	Segments         []repositories.SegmentStat        `json:"segments"`
	CustomersDetail  []repositories.CustomerDetail     `json:"customers_detail"`
	Performance      []repositories.ProductPerformance `json:"product_performance"`
	RecentOrders     []repositories.RecentOrder        `json:"recent_orders"`
}

// ReportService serves cached report tables.
type ReportService struct {
	repo  *repositories.ReportRepository
	cache cache.Store
	ttl   time.Duration
}

func NewReportService(repo *repositories.ReportRepository, store cache.Store, ttl time.Duration) *ReportService {
	return &ReportService{repo: repo, cache: store, ttl: ttl}
}

// cached wraps one report computation with the get-or-compute cycle.
func cached[T any](s *ReportService, report string, rng repositories.Range, compute func() (T, error)) (T, error) {
	key := report + ":" + string(rng)

	var out T
	if s.cache.Get(key, &out) {
		return out, nil
	}

	out, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	_ = s.cache.Set(key, out, s.ttl)
	return out, nil
}

func (s *ReportService) Overview(rng repositories.Range) (repositories.Overview, error) {
	return cached(s, "overview", rng, func() (repositories.Overview, error) {
		return s.repo.Overview(rng)
	})
}

func (s *ReportService) TotalRevenue(rng repositories.Range) (float64, error) {
	return cached(s, "total_revenue", rng, func() (float64, error) {
		return s.repo.TotalRevenue(rng)
	})
}

func (s *ReportService) TopProducts(rng repositories.Range) ([]repositories.ProductSales, error) {
	return cached(s, "top_products", rng, func() ([]repositories.ProductSales, error) {
		return s.repo.TopProducts(rng, TopProductLimit)
	})
}

func (s *ReportService) MonthlyTrend(rng repositories.Range) ([]repositories.MonthlyRevenue, error) {
	return cached(s, "monthly_trend", rng, func() ([]repositories.MonthlyRevenue, error) {
		return s.repo.MonthlyTrend(rng)
	})
}

func (s *ReportService) RevenueByCountry(rng repositories.Range) ([]repositories.CountryRevenue, error) {
	return cached(s, "revenue_by_country", rng, func() ([]repositories.CountryRevenue, error) {
		return s.repo.RevenueByCountry(rng)
	})
}

func (s *ReportService) TopCustomers(rng repositories.Range) ([]repositories.CustomerSpend, error) {
	return cached(s, "top_customers", rng, func() ([]repositories.CustomerSpend, error) {
		return s.repo.TopCustomers(rng, TopCustomerLimit)
	})
}

func (s *ReportService) CustomerSegments(rng repositories.Range) ([]repositories.SegmentStat, error) {
	return cached(s, "customer_segments", rng, func() ([]repositories.SegmentStat, error) {
		return s.repo.CustomerSegments(rng)
	})
}

func (s *ReportService) TopCustomersDetail(rng repositories.Range) ([]repositories.CustomerDetail, error) {
	return cached(s, "top_customers_detail", rng, func() ([]repositories.CustomerDetail, error) {
		return s.repo.TopCustomersDetail(rng, CustomerDetailRows)
	})
}

func (s *ReportService) ProductPerformance(rng repositories.Range) ([]repositories.ProductPerformance, error) {
	return cached(s, "product_performance", rng, func() ([]repositories.ProductPerformance, error) {
		return s.repo.ProductPerformance(rng)
	})
}

func (s *ReportService) RecentOrders(rng repositories.Range) ([]repositories.RecentOrder, error) {
	return cached(s, "recent_orders", rng, func() ([]repositories.RecentOrder, error) {
		return s.repo.RecentOrders(rng, RecentOrderRows)
	})
}

// Snapshot computes every report for one full dashboard render.
func (s *ReportService) Snapshot(rng repositories.Range) (Snapshot, error) {
	snap := Snapshot{GeneratedAt: time.Now().UTC(), Range: rng}

	var err error
	if snap.Overview, err = s.Overview(rng); err != nil {
		return snap, err
	}
	if snap.TopProducts, err = s.TopProducts(rng); err != nil {
		return snap, err
	}
	if snap.MonthlyTrend, err = s.MonthlyTrend(rng); err != nil {
		return snap, err
	}
	if snap.RevenueByCountry, err = s.RevenueByCountry(rng); err != nil {
		return snap, err
	}
	if snap.TopCustomers, err = s.TopCustomers(rng); err != nil {
		return snap, err
	}
	if snap.Segments, err = s.CustomerSegments(rng); err != nil {
		return snap, err
	}
	if snap.CustomersDetail, err = s.TopCustomersDetail(rng); err != nil {
		return snap, err
	}
	if snap.Performance, err = s.ProductPerformance(rng); err != nil {
		return snap, err
	}
	if snap.RecentOrders, err = s.RecentOrders(rng); err != nil {
		return snap, err
	}

	return snap, nil
}
