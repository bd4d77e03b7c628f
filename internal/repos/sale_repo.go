package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"lamsa/internal/domain"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// Insert appends one sale. The caller computes TotalPrice and SaleDate.
func (r *SaleRepo) Insert(s domain.Sale) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO sales(product_id, quantity, unit_price, total_price, sale_date)
	  VALUES (?, ?, ?, ?, ?)
	`, s.ProductID, s.Quantity, s.UnitPrice, s.TotalPrice, s.SaleDate)
	if err != nil {
		return 0, errors.Wrap(err, "insert sale")
	}
	id, err := res.LastInsertId()
	return id, errors.Wrap(err, "sale id")
}

// ByProduct lists sales for productID, including sales of deleted products.
func (r *SaleRepo) ByProduct(productID int64) ([]domain.Sale, error) {
	out := []domain.Sale{}
	err := r.db.Select(&out, `
	  SELECT id, product_id, quantity, unit_price, total_price, sale_date
	  FROM sales
	  WHERE product_id = ?
	  ORDER BY id
	`, productID)
	return out, errors.Wrap(err, "sales by product")
}

func (r *SaleRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM sales`)
	return n, errors.Wrap(err, "count sales")
}

// ProductStats sums quantity and counts orders for one product; no sales is 0/0.
func (r *SaleRepo) ProductStats(productID int64) (domain.ProductStats, error) {
	var st domain.ProductStats
	err := r.db.Get(&st, `
	  SELECT COALESCE(SUM(quantity),0) AS total_sold, COUNT(*) AS orders
	  FROM sales
	  WHERE product_id = ?
	`, productID)
	return st, errors.Wrap(err, "product stats")
}

// TotalsOn aggregates sales whose calendar date equals day (YYYY-MM-DD).
func (r *SaleRepo) TotalsOn(day string) (domain.Totals, error) {
	var t domain.Totals
	err := r.db.Get(&t, `
	  SELECT COALESCE(SUM(total_price),0.0) AS revenue, COUNT(*) AS orders
	  FROM sales
	  WHERE date(sale_date) = ?
	`, day)
	return t, errors.Wrap(err, "totals on day")
}

// TotalsSince aggregates sales whose calendar date is on or after day.
func (r *SaleRepo) TotalsSince(day string) (domain.Totals, error) {
	var t domain.Totals
	err := r.db.Get(&t, `
	  SELECT COALESCE(SUM(total_price),0.0) AS revenue, COUNT(*) AS orders
	  FROM sales
	  WHERE date(sale_date) >= ?
	`, day)
	return t, errors.Wrap(err, "totals since day")
}

// CostSince prices sold quantities at each product's current cost. Sales
// whose product was deleted drop out of the join.
func (r *SaleRepo) CostSince(day string) (float64, error) {
	var cost float64
	err := r.db.Get(&cost, `
	  SELECT COALESCE(SUM(s.quantity * p.cost),0.0)
	  FROM sales s
	  JOIN products p ON s.product_id = p.id
	  WHERE date(s.sale_date) >= ?
	`, day)
	return cost, errors.Wrap(err, "cost since day")
}

// TopProducts ranks products by quantity sold. Unsold products carry NULL
// aggregates, which SQLite orders after every number in DESC.
func (r *SaleRepo) TopProducts(limit int) ([]domain.TopProduct, error) {
	out := []domain.TopProduct{}
	err := r.db.Select(&out, `
	  SELECT p.id, p.title, p.image_url, p.price, p.category,
	         SUM(s.quantity) AS total_qty, SUM(s.total_price) AS total_revenue
	  FROM products p
	  LEFT JOIN sales s ON p.id = s.product_id
	  GROUP BY p.id
	  ORDER BY total_qty DESC, p.id
	  LIMIT ?
	`, limit)
	return out, errors.Wrap(err, "top products")
}

// DailyTotals groups sales by calendar date within [from, to].
func (r *SaleRepo) DailyTotals(from, to string) ([]domain.DayTotal, error) {
	out := []domain.DayTotal{}
	err := r.db.Select(&out, `
	  SELECT date(sale_date) AS day,
	         COALESCE(SUM(total_price),0.0) AS revenue,
	         COUNT(*) AS orders
	  FROM sales
	  WHERE date(sale_date) BETWEEN ? AND ?
	  GROUP BY date(sale_date)
	  ORDER BY day
	`, from, to)
	return out, errors.Wrap(err, "daily totals")
}
