package services

import (
	"github.com/pkg/errors"

	"lamsa/internal/domain"
)

var (
	// ErrNotFound means the referenced product does not exist.
	ErrNotFound = errors.New("product not found")
	// ErrBadCreds means the admin username/password pair did not match.
	ErrBadCreds = errors.New("invalid username or password")
)

// ProductRepository is the catalog storage the services depend on.
// repos.ProductRepo implements it.
type ProductRepository interface {
	List() ([]domain.Product, error)
	ListByCategory(category string) ([]domain.Product, error)
	Get(id int64) (domain.Product, error)
	Related(category string, excludeID int64, limit int) ([]domain.Product, error)
	Create(p domain.Product) (int64, error)
	Delete(id int64) error
	Count() (int, error)
}

// SaleRepository is the append-only sales storage plus its aggregates.
// repos.SaleRepo implements it.
type SaleRepository interface {
	Insert(s domain.Sale) (int64, error)
	ProductStats(productID int64) (domain.ProductStats, error)
	TotalsOn(day string) (domain.Totals, error)
	TotalsSince(day string) (domain.Totals, error)
	CostSince(day string) (float64, error)
	TopProducts(limit int) ([]domain.TopProduct, error)
	DailyTotals(from, to string) ([]domain.DayTotal, error)
}

type CategoryRepository interface {
	List() ([]string, error)
}
