package services

import (
	"time"

	"github.com/jinzhu/now"

	"lamsa/internal/clock"
	"lamsa/internal/domain"
)

const (
	weekWindowDays  = 7  // today-7 .. today, 8 calendar days
	monthWindowDays = 30 // today-30 .. today, 31 calendar days
	topProductLimit = 5

	DefaultChartDays = 7
)

type AnalyticsService struct {
	Sales   SaleRepository
	Catalog *CatalogService
	Clock   clock.Clock
}

func NewAnalyticsService(sales SaleRepository, catalog *CatalogService, clk clock.Clock) *AnalyticsService {
	return &AnalyticsService{Sales: sales, Catalog: catalog, Clock: clk}
}

func (s *AnalyticsService) today() time.Time {
	return now.With(s.Clock.Now()).BeginningOfDay()
}

func day(t time.Time) string { return t.Format(domain.DayLayout) }

// Summary computes revenue and order counts for today, the week window and
// the month window, plus month cost, net profit and averages.
func (s *AnalyticsService) Summary() (domain.Summary, error) {
	today := s.today()
	monthFrom := day(today.AddDate(0, 0, -monthWindowDays))

	var (
		sum domain.Summary
		err error
	)
	sum.GeneratedAt = s.Clock.Now()
	if sum.Today, err = s.Sales.TotalsOn(day(today)); err != nil {
		return domain.Summary{}, err
	}
	if sum.Week, err = s.Sales.TotalsSince(day(today.AddDate(0, 0, -weekWindowDays))); err != nil {
		return domain.Summary{}, err
	}
	if sum.Month, err = s.Sales.TotalsSince(monthFrom); err != nil {
		return domain.Summary{}, err
	}
	if sum.MonthCost, err = s.Sales.CostSince(monthFrom); err != nil {
		return domain.Summary{}, err
	}

	sum.NetProfit = sum.Month.Revenue - sum.MonthCost
	if sum.Month.Revenue != 0 {
		sum.AvgDaily = sum.Month.Revenue / 30
		sum.AvgWeekly = sum.Month.Revenue / 4
	}
	return sum, nil
}

func (s *AnalyticsService) TopProducts() ([]domain.TopProduct, error) {
	return s.Sales.TopProducts(topProductLimit)
}

// DailyChart returns one point per calendar day for the last days days,
// oldest first, ending today. Non-positive days yields an empty series.
func (s *AnalyticsService) DailyChart(days int) ([]domain.DailyPoint, error) {
	if days < 1 {
		return []domain.DailyPoint{}, nil
	}
	today := s.today()
	start := today.AddDate(0, 0, -(days - 1))

	rows, err := s.Sales.DailyTotals(day(start), day(today))
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]domain.DayTotal, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r
	}

	points := make([]domain.DailyPoint, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		r := byDay[day(d)]
		points = append(points, domain.DailyPoint{Date: d, Revenue: r.Revenue, Orders: r.Orders})
	}
	return points, nil
}

// Dashboard gathers everything the admin page shows.
func (s *AnalyticsService) Dashboard() (domain.Dashboard, error) {
	var (
		d   domain.Dashboard
		err error
	)
	if d.Summary, err = s.Summary(); err != nil {
		return domain.Dashboard{}, err
	}
	if d.TopProducts, err = s.TopProducts(); err != nil {
		return domain.Dashboard{}, err
	}
	if d.Chart, err = s.DailyChart(DefaultChartDays); err != nil {
		return domain.Dashboard{}, err
	}
	if d.Products, err = s.Catalog.ListAll(); err != nil {
		return domain.Dashboard{}, err
	}
	if d.TotalProducts, err = s.Catalog.CountProducts(); err != nil {
		return domain.Dashboard{}, err
	}
	return d, nil
}
