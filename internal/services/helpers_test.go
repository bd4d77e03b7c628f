package services_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"lamsa/internal/clock"
	"lamsa/internal/domain"
	"lamsa/internal/repos"
	"lamsa/internal/services"
)

var now = time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC)

type fixture struct {
	db        *sqlx.DB
	sales     *repos.SaleRepo
	catalog   *services.CatalogService
	purchases *services.PurchaseService
	analytics *services.AnalyticsService
}

func newFixture(t *testing.T, clk clock.Clock) *fixture {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sales := repos.NewSaleRepo(db)
	catalog := services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))
	return &fixture{
		db:        db,
		sales:     sales,
		catalog:   catalog,
		purchases: services.NewPurchaseService(catalog, sales, clk),
		analytics: services.NewAnalyticsService(sales, catalog, clk),
	}
}

func (f *fixture) product(t *testing.T, title, cat string, price, cost float64) int64 {
	t.Helper()
	id, err := f.catalog.AddProduct(services.ProductInput{Title: title, Price: price, Cost: cost, Category: cat})
	require.NoError(t, err)
	return id
}

// saleAt writes a sale directly so tests can place it on any day.
func (f *fixture) saleAt(t *testing.T, productID int64, qty int, unit float64, at time.Time) {
	t.Helper()
	_, err := f.sales.Insert(domain.Sale{
		ProductID:  productID,
		Quantity:   qty,
		UnitPrice:  unit,
		TotalPrice: unit * float64(qty),
		SaleDate:   at.Format(domain.SaleTimeLayout),
	})
	require.NoError(t, err)
}

func daysAgo(n int) time.Time { return now.AddDate(0, 0, -n) }
