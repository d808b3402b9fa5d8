package entities

import "time"

// Transaction represents a financial transaction entity in the database
type Transaction struct {
	ID              string    `json:"id"`     // UUID
	UserID          string    `json:"userId"` // Owning user's UUID
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transactionType"` // "income" or "expense"
	Location        string    `json:"location"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
