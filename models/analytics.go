package models

// TopItem is one row of the most-frequently-ordered report.
type TopItem struct {
	Name    string  `json:"name"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// DailyCount is the number of orders placed on one calendar day.
type DailyCount struct {
	Day    string `json:"day"` // YYYY-MM-DD
	Orders int64  `json:"orders"`
}

// MonthlyRevenue aggregates order revenue per calendar month.
type MonthlyRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// AnalyticsSummary is the dashboard payload; it is cached in Redis.
type AnalyticsSummary struct {
	TopItems     []TopItem    `json:"top_items"`
	DailyOrders  []DailyCount `json:"daily_orders"`
	RecentOrders []Order      `json:"recent_orders"`
}
