package models

// CategoryStatistic is one entry of the categoryStatistics query:
// a category label with the summed amount of the caller's transactions
// carrying that label.
type CategoryStatistic struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"totalAmount"`
}
