package repository

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack-be/internal/entities"
)

// TransactionRepository defines the interface for transaction database
// operations. Lookups that find nothing return (nil, nil).
type TransactionRepository interface {
	Create(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error)
	FindByID(ctx context.Context, id string) (*entities.Transaction, error)
	FindByUserID(ctx context.Context, userID string) ([]*entities.Transaction, error)
	Update(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = "id, user_id, description, category, amount, transaction_type, location, date, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*entities.Transaction, error) {
	var t entities.Transaction
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Description,
		&t.Category,
		&t.Amount,
		&t.TransactionType,
		&t.Location,
		&t.Date,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new transaction into the database
func (r *transactionRepository) Create(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, description, category, amount, transaction_type, location, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + transactionColumns

	created, err := scanTransaction(r.db.QueryRowContext(ctx, query,
		t.UserID, t.Description, t.Category, t.Amount, t.TransactionType, t.Location, t.Date))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

// FindByID finds a transaction by ID (UUID)
func (r *transactionRepository) FindByID(ctx context.Context, id string) (*entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return t, nil
}

// FindByUserID returns all transactions owned by the given user, in store order
func (r *transactionRepository) FindByUserID(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*entities.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

// Update applies all fields of t to the stored row
func (r *transactionRepository) Update(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	query := `
		UPDATE transactions
		SET description = $1, category = $2, amount = $3, transaction_type = $4,
		    location = $5, date = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING ` + transactionColumns

	updated, err := scanTransaction(r.db.QueryRowContext(ctx, query,
		t.Description, t.Category, t.Amount, t.TransactionType, t.Location, t.Date, t.ID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return updated, nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
