package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// CategoryRepo reads categories as they appear on products; there is no
// categories table.
type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `
  SELECT category
  FROM products
  GROUP BY category
  ORDER BY MIN(id)
`)
	return out, errors.Wrap(err, "list categories")
}
