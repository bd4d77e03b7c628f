package http

import (
	html "github.com/gofiber/template/html/v2"

	"lamsa/internal/money"
)

// NewEngine loads the page templates under dir and registers the helpers
// they use for money and nullable aggregates.
func NewEngine(dir string, reload bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Reload(reload)
	engine.AddFunc("money", money.Format)
	engine.AddFunc("moneyOrDash", func(v *float64) string {
		if v == nil {
			return "—"
		}
		return money.Format(*v)
	})
	engine.AddFunc("qtyOrZero", func(v *int64) int64 {
		if v == nil {
			return 0
		}
		return *v
	})
	return engine
}
