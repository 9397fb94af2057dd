// Package analytics derives the dashboard numbers from the persisted
// collections and keeps them in a versioned Redis cache.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/vitrine-erp/vitrine-erp/internal/catalog"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/shared"
)

// SaleSource provides the sales ledger.
type SaleSource interface {
	List(ctx context.Context) ([]sales.Sale, error)
}

// ProductSource provides the catalog.
type ProductSource interface {
	List(ctx context.Context) ([]catalog.Product, error)
}

// KPISummary is the headline dashboard card set.
type KPISummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalRevenueLabel string  `json:"totalRevenueLabel"`
	SalesCount        int     `json:"salesCount"`
	AverageTicket     float64 `json:"averageTicket"`
	StockQuantity     int     `json:"stockQuantity"`
	StockValue        float64 `json:"stockValue"`
}

// MonthRevenue is one bucket of the revenue trend.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// TopProduct is one row of the best-sellers table.
type TopProduct struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// Service coordinates report execution with the cache layer.
type Service struct {
	sales    SaleSource
	products ProductSource
	cache    *Cache
	now      func() time.Time
}

// NewService wires the collection sources with a Cache helper.
func NewService(saleSrc SaleSource, productSrc ProductSource, cache *Cache) *Service {
	return &Service{sales: saleSrc, products: productSrc, cache: cache, now: time.Now}
}

// Invalidate drops every cached report. Called after imports and other
// bulk writes.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}

// KPIs computes the headline numbers, cached per version.
func (s *Service) KPIs(ctx context.Context) (KPISummary, error) {
	key, err := s.cache.BuildKey(ctx, "analytics", "kpi")
	if err != nil {
		return KPISummary{}, err
	}
	var summary KPISummary
	err = s.cache.FetchJSON(ctx, key, &summary, func(ctx context.Context) (interface{}, error) {
		return s.computeKPIs(ctx)
	})
	return summary, err
}

func (s *Service) computeKPIs(ctx context.Context) (KPISummary, error) {
	allSales, err := s.sales.List(ctx)
	if err != nil {
		return KPISummary{}, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return KPISummary{}, err
	}
	var summary KPISummary
	for _, sale := range allSales {
		summary.TotalRevenue += sale.Total
	}
	summary.SalesCount = len(allSales)
	if summary.SalesCount > 0 {
		summary.AverageTicket = shared.Round2(summary.TotalRevenue / float64(summary.SalesCount))
	}
	for _, p := range products {
		summary.StockQuantity += p.Quantity
		summary.StockValue += p.Price * float64(p.Quantity)
	}
	summary.TotalRevenue = shared.Round2(summary.TotalRevenue)
	summary.StockValue = shared.Round2(summary.StockValue)
	summary.TotalRevenueLabel = shared.FormatBRL(summary.TotalRevenue)
	return summary, nil
}

// RevenueTrend buckets revenue by sale month over the trailing window.
func (s *Service) RevenueTrend(ctx context.Context, months int) ([]MonthRevenue, error) {
	if months < 1 {
		months = 6
	}
	key, err := s.cache.BuildKey(ctx, "analytics", "trend", shared.MonthKey(s.now()))
	if err != nil {
		return nil, err
	}
	var trend []MonthRevenue
	err = s.cache.FetchJSON(ctx, key, &trend, func(ctx context.Context) (interface{}, error) {
		return s.computeTrend(ctx, months)
	})
	return trend, err
}

func (s *Service) computeTrend(ctx context.Context, months int) ([]MonthRevenue, error) {
	allSales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[string]*MonthRevenue)
	for _, sale := range allSales {
		month := shared.MonthKey(sale.Date.Local())
		bucket, ok := byMonth[month]
		if !ok {
			bucket = &MonthRevenue{Month: month}
			byMonth[month] = bucket
		}
		bucket.Revenue = shared.Round2(bucket.Revenue + sale.Total)
		bucket.Count++
	}

	trend := make([]MonthRevenue, 0, months)
	cursor := s.now()
	for i := 0; i < months; i++ {
		month := shared.MonthKey(cursor)
		if bucket, ok := byMonth[month]; ok {
			trend = append(trend, *bucket)
		} else {
			trend = append(trend, MonthRevenue{Month: month})
		}
		cursor = cursor.AddDate(0, -1, 0)
	}
	// oldest first for charting
	for i, j := 0, len(trend)-1; i < j; i, j = i+1, j-1 {
		trend[i], trend[j] = trend[j], trend[i]
	}
	return trend, nil
}

// TopProducts ranks products by quantity sold.
func (s *Service) TopProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	if limit < 1 {
		limit = 5
	}
	key, err := s.cache.BuildKey(ctx, "analytics", "top_products")
	if err != nil {
		return nil, err
	}
	var top []TopProduct
	err = s.cache.FetchJSON(ctx, key, &top, func(ctx context.Context) (interface{}, error) {
		return s.computeTopProducts(ctx, limit)
	})
	return top, err
}

func (s *Service) computeTopProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	allSales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	byProduct := make(map[string]*TopProduct)
	var order []string
	for _, sale := range allSales {
		for _, item := range sale.Items {
			row, ok := byProduct[item.ProductID]
			if !ok {
				row = &TopProduct{ProductID: item.ProductID, Name: names[item.ProductID]}
				byProduct[item.ProductID] = row
				order = append(order, item.ProductID)
			}
			row.Quantity += item.Quantity
			row.Revenue = shared.Round2(row.Revenue + float64(item.Quantity)*item.UnitPrice)
		}
	}
	top := make([]TopProduct, 0, len(order))
	for _, id := range order {
		top = append(top, *byProduct[id])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity > top[j].Quantity
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}
