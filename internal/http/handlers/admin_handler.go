package handlers

import (
	"lamsa/internal/domain"
	applog "lamsa/internal/log"
	"lamsa/internal/money"
	"lamsa/internal/services"
	"lamsa/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Catalog   *services.CatalogService
	Analytics *services.AnalyticsService
}

type chartPoint struct {
	Date    string  `json:"date"`
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

func chartPoints(points []domain.DailyPoint, label string) []chartPoint {
	out := make([]chartPoint, 0, len(points))
	for _, p := range points {
		out = append(out, chartPoint{
			Date:    p.Date.Format(domain.DayLayout),
			Day:     p.Date.Format(label),
			Revenue: money.Round2(p.Revenue),
			Orders:  p.Orders,
		})
	}
	return out
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.Analytics.Dashboard()
	if err != nil {
		applog.Error(c, "admin.dashboard.fail", err, nil)
		return err
	}
	return render(c, "admin", fiber.Map{
		"S":             d.Summary,
		"TopProducts":   d.TopProducts,
		"Chart":         chartPoints(d.Chart, "01/02"),
		"Products":      d.Products,
		"TotalProducts": d.TotalProducts,
	})
}

// POST /admin/add
func (h *AdminHandler) AddProduct(c *fiber.Ctx) error {
	price, okPrice := validate.Money(c.FormValue("price"), 0)
	cost, okCost := validate.Money(c.FormValue("cost"), 0)
	if !okPrice || !okCost {
		return fiber.NewError(fiber.StatusBadRequest, "Price and cost must be non-negative numbers.")
	}
	in := services.ProductInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
		Cost:        cost,
		ImageURL:    c.FormValue("image_url"),
		Category:    validate.Text(c.FormValue("category"), domain.DefaultCategory),
		Badge:       c.FormValue("badge"),
	}
	id, err := h.Catalog.AddProduct(in)
	if err != nil {
		applog.Error(c, "admin.product.add.fail", err, map[string]any{"title": in.Title})
		return err
	}
	applog.Audit(c, "admin.product.add", map[string]any{"product": id, "title": in.Title, "price": in.Price, "cost": in.Cost})
	setFlash(c, "success", `Added "`+in.Title+`" successfully`)
	return c.Redirect("/admin")
}

// POST /admin/delete/:id. Sales of the product are kept.
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Redirect("/admin")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		applog.Error(c, "admin.product.delete.fail", err, map[string]any{"product": id})
		return err
	}
	applog.Audit(c, "admin.product.delete", map[string]any{"product": id})
	setFlash(c, "success", "Product deleted")
	return c.Redirect("/admin")
}

// maxChartDays bounds one response to ten years of points.
const maxChartDays = 3650

// GET /api/chart-data?days=N
func (h *AdminHandler) ChartData(c *fiber.Ctx) error {
	days, ok := validate.Days(c.Query("days"), services.DefaultChartDays)
	if !ok || days > maxChartDays {
		return fiber.NewError(fiber.StatusBadRequest, "days must be a whole number up to 3650")
	}
	points, err := h.Analytics.DailyChart(days)
	if err != nil {
		return err
	}
	return c.JSON(chartPoints(points, "02/01"))
}
