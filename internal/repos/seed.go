package repos

import (
	"math/rand"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"lamsa/internal/clock"
	"lamsa/internal/domain"
	applog "lamsa/internal/log"
)

const (
	seedDays         = 30
	seedMinDailySale = 3
	seedMaxDailySale = 15
	seedMaxQty       = 4
)

// DemoCatalog is the fixed product list inserted into an empty store.
var DemoCatalog = []domain.Product{
	{Title: "Royal Vanilla Cake", Description: "Soft sponge under French buttercream with toasted almond flakes", Price: 75, Cost: 30, ImageURL: "https://images.unsplash.com/photo-1550617931-e17a7b70dce2?q=80&w=500", Category: "cakes", Badge: "Best seller"},
	{Title: "Dark Chocolate Cupcake", Description: "70% Belgian chocolate batter topped with a smooth ganache", Price: 25, Cost: 10, ImageURL: "https://images.unsplash.com/photo-1599785209707-a456fc1337bb?q=80&w=500", Category: "cupcakes", Badge: "New"},
	{Title: "French Strawberry Tart", Description: "Crisp pastry shell, crème pâtissière and fresh strawberries", Price: 55, Cost: 22, ImageURL: "https://images.unsplash.com/photo-1488477181946-6428a0291777?q=80&w=500", Category: "tarts"},
	{Title: "Blueberry Muffin", Description: "Fresh blueberries, lemon zest and a custard-sugar crust", Price: 18, Cost: 7, ImageURL: "https://images.unsplash.com/photo-1558303910-41f6b7b96ead?q=80&w=500", Category: "muffins", Badge: "Featured"},
	{Title: "German Chocolate Cake", Description: "Chocolate layers with coconut cream and caramel", Price: 95, Cost: 40, ImageURL: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?q=80&w=500", Category: "cakes", Badge: "Exclusive"},
	{Title: "Pistachio Macaron", Description: "French macaron with a soft pistachio cream filling", Price: 15, Cost: 5, ImageURL: "https://images.unsplash.com/photo-1569864358642-9d1684040f43?q=80&w=500", Category: "macarons"},
	{Title: "American Cinnamon Roll", Description: "Brioche dough rolled with cinnamon and raisins, cream glaze", Price: 20, Cost: 8, ImageURL: "https://images.unsplash.com/photo-1609428651985-f9abb43ea6e0?q=80&w=500", Category: "pastries", Badge: "Most ordered"},
	{Title: "New York Cheesecake", Description: "Classic creamy cheesecake with red berry sauce", Price: 65, Cost: 28, ImageURL: "https://images.unsplash.com/photo-1508737027454-e6454ef45afd?q=80&w=500", Category: "cakes"},
}

// SeedIfEmpty fills an empty product table with DemoCatalog and 30 days of
// synthetic sales ending yesterday. It does nothing when products exist.
func SeedIfEmpty(db *sqlx.DB, clk clock.Clock, rng *rand.Rand) (bool, error) {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return false, errors.Wrap(err, "count products")
	}
	if n > 0 {
		return false, nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return false, errors.Wrap(err, "begin seed")
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range DemoCatalog {
		if _, err := tx.Exec(`
			INSERT INTO products(title, description, price, cost, image_url, category, badge)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, p.Title, p.Description, p.Price, p.Cost, p.ImageURL, p.Category, p.Badge); err != nil {
			return false, errors.Wrap(err, "seed product")
		}
	}

	// Sales left over from a previous catalog would point at recycled ids.
	if _, err := tx.Exec(`DELETE FROM sales`); err != nil {
		return false, errors.Wrap(err, "clear sales")
	}

	type priced struct {
		ID    int64   `db:"id"`
		Price float64 `db:"price"`
	}
	var prods []priced
	if err := tx.Select(&prods, `SELECT id, price FROM products ORDER BY id`); err != nil {
		return false, errors.Wrap(err, "load seeded products")
	}

	now := clk.Now()
	total := 0
	for daysAgo := seedDays; daysAgo >= 1; daysAgo-- {
		at := now.AddDate(0, 0, -daysAgo).Format(domain.SaleTimeLayout)
		daily := seedMinDailySale + rng.Intn(seedMaxDailySale-seedMinDailySale+1)
		for i := 0; i < daily; i++ {
			p := prods[rng.Intn(len(prods))]
			qty := 1 + rng.Intn(seedMaxQty)
			if _, err := tx.Exec(`
				INSERT INTO sales(product_id, quantity, unit_price, total_price, sale_date)
				VALUES (?, ?, ?, ?, ?)
			`, p.ID, qty, p.Price, p.Price*float64(qty), at); err != nil {
				return false, errors.Wrap(err, "seed sale")
			}
			total++
		}
	}

	if err := tx.Commit(); err != nil {
		return false, errors.Wrap(err, "commit seed")
	}
	applog.Info(nil, "seed.done", map[string]any{"products": len(prods), "sales": total, "days": seedDays})
	return true, nil
}
