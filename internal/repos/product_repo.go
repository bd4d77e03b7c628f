package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"lamsa/internal/domain"
)

// ErrNoProduct is returned by Get when the id does not exist.
var ErrNoProduct = errors.New("product does not exist")

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, title, description, price, cost, image_url, category, badge,
    COALESCE(created_at,'') AS created_at`

// List returns every product, newest first.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  ORDER BY created_at DESC, id DESC
`)
	return out, errors.Wrap(err, "list products")
}

// ListByCategory returns products in insertion order. An empty category
// matches everything.
func (r *ProductRepo) ListByCategory(category string) ([]domain.Product, error) {
	where := ``
	args := []any{}
	if category != "" {
		where = `WHERE category = ?`
		args = append(args, category)
	}
	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  `+where+`
  ORDER BY id
`, args...)
	return out, errors.Wrap(err, "list products by category")
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT `+productCols+`
  FROM products
  WHERE id = ?
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNoProduct
	}
	return p, errors.Wrap(err, "get product")
}

// Related returns up to limit products sharing category, excluding id.
func (r *ProductRepo) Related(category string, excludeID int64, limit int) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  WHERE category = ? AND id != ?
  ORDER BY id
  LIMIT ?
`, category, excludeID, limit)
	return out, errors.Wrap(err, "related products")
}

// Create inserts p and returns the assigned id. CreatedAt is left to the store.
func (r *ProductRepo) Create(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(title, description, price, cost, image_url, category, badge)
	  VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Title, p.Description, p.Price, p.Cost, p.ImageURL, p.Category, p.Badge)
	if err != nil {
		return 0, errors.Wrap(err, "insert product")
	}
	id, err := res.LastInsertId()
	return id, errors.Wrap(err, "product id")
}

// Delete removes the product row only. Sales referencing it are kept.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return errors.Wrap(err, "delete product")
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, errors.Wrap(err, "count products")
}
