package models

// CreateTransactionInput mirrors the createTransaction mutation's input object.
// The owner is always stamped from the session, never taken from the input.
type CreateTransactionInput struct {
	Description     string  `json:"description" validate:"required"`
	Category        string  `json:"category" validate:"required"`
	Amount          float64 `json:"amount"`
	TransactionType string  `json:"transactionType" validate:"required,oneof=income expense"`
	Location        string  `json:"location"`
	Date            string  `json:"date" validate:"required"` // YYYY-MM-DD
}

// UpdateTransactionInput mirrors the updateTransaction mutation's input object.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID   string   `json:"transactionId" validate:"required"`
	Description     *string  `json:"description,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	TransactionType *string  `json:"transactionType,omitempty" validate:"omitempty,oneof=income expense"`
	Location        *string  `json:"location,omitempty"`
	Date            *string  `json:"date,omitempty"` // YYYY-MM-DD
}
