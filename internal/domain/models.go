package domain

import "time"

const (
	DefaultCategory = "general"
	AllCategories   = "all" // listing sentinel, never stored
)

type Product struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Cost        float64 `db:"cost"`
	ImageURL    string  `db:"image_url"`
	Category    string  `db:"category"`
	Badge       string  `db:"badge"`
	CreatedAt   string  `db:"created_at"`
}

// Sale is immutable once written. TotalPrice is Quantity*UnitPrice at insert time.
type Sale struct {
	ID         int64   `db:"id"`
	ProductID  int64   `db:"product_id"`
	Quantity   int     `db:"quantity"`
	UnitPrice  float64 `db:"unit_price"`
	TotalPrice float64 `db:"total_price"`
	SaleDate   string  `db:"sale_date"` // YYYY-MM-DD HH:MM:SS
}

// SaleTimeLayout is how sale_date is stored so SQLite's date() can bucket it.
const SaleTimeLayout = "2006-01-02 15:04:05"

// DayLayout is the calendar-date form used for window bounds.
const DayLayout = "2006-01-02"

type ProductStats struct {
	TotalSold int64 `db:"total_sold"`
	Orders    int64 `db:"orders"`
}

type Totals struct {
	Revenue float64 `db:"revenue"`
	Orders  int64   `db:"orders"`
}

// TopProduct aggregates are nil for products that never sold.
type TopProduct struct {
	ID           int64    `db:"id"`
	Title        string   `db:"title"`
	ImageURL     string   `db:"image_url"`
	Price        float64  `db:"price"`
	Category     string   `db:"category"`
	TotalQty     *int64   `db:"total_qty"`
	TotalRevenue *float64 `db:"total_revenue"`
}

// DayTotal is one row of the per-day grouping; days without sales are absent.
type DayTotal struct {
	Day     string  `db:"day"`
	Revenue float64 `db:"revenue"`
	Orders  int64   `db:"orders"`
}

type DailyPoint struct {
	Date    time.Time
	Revenue float64
	Orders  int64
}

type Summary struct {
	Today       Totals
	Week        Totals
	Month       Totals
	MonthCost   float64
	NetProfit   float64
	AvgDaily    float64
	AvgWeekly   float64
	GeneratedAt time.Time
}

type Dashboard struct {
	Summary       Summary
	TopProducts   []TopProduct
	Chart         []DailyPoint
	Products      []Product
	TotalProducts int
}

// Session is the verified, per-request view of the admin cookie.
type Session struct {
	ID            string
	Subject       string
	Authenticated bool
	ExpiresAt     time.Time
}
