package models

// RevenueCompare holds the year-over-year comparison
type RevenueCompare struct {
	CurrentYearRevenue  float64 `json:"currentYearRevenue"`
	PreviousYearRevenue float64 `json:"previousYearRevenue"`
}

// TopClient is one entry of the top-clients ranking
type TopClient struct {
	ClientID    int     `json:"client_id"`
	Name        string  `json:"name"`
	ContactName string  `json:"contact_name"`
	Revenue     float64 `json:"revenue"`
}

// StatusRatio is an invoice count per status, zero-filled for missing ones
type StatusRatio struct {
	Draft int `json:"Draft"`
	Sent  int `json:"Sent"`
	Paid  int `json:"Paid"`
}

// MonthSnapshot summarises the invoices issued in one calendar month
type MonthSnapshot struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"` // status = Sent
	Total   float64 `json:"total"`
}
