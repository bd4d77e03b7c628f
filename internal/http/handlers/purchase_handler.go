package handlers

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	applog "lamsa/internal/log"
	"lamsa/internal/services"
	"lamsa/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type PurchaseHandler struct {
	Purchases *services.PurchaseService
}

type buyRequest struct {
	Quantity flexQty `json:"quantity"`
}

// flexQty accepts a JSON number or a numeric string: 3, 3.0 and "3".
// Fractional numbers are truncated; fractional strings are rejected.
type flexQty struct{ N *int }

func (q *flexQty) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return nil
	}
	var n int
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.Errorf("quantity %q is not a whole number", s)
		}
		n = v
	} else {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.Abs(f) > math.MaxInt32 {
			return errors.Errorf("quantity %s is not a number", raw)
		}
		n = int(f)
	}
	q.N = &n
	return nil
}

// POST /api/buy/:id with an optional JSON body {"quantity": n}.
func (h *PurchaseHandler) Buy(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}

	var req buyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}

	sale, err := h.Purchases.Buy(id, validate.Qty(req.Quantity.N))
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "purchase.record", map[string]any{
		"product": sale.ProductID, "qty": sale.Quantity, "total": sale.TotalPrice,
	})
	return c.JSON(fiber.Map{"success": true, "message": "Added to your cart!"})
}
