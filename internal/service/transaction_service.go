package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"fintrack-be/internal/apperr"
	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
)

const dateLayout = "2006-01-02"

// TransactionService defines the interface for transaction business logic.
// Every operation that touches a single record checks that the caller
// owns it; callerID is the authenticated user's id.
type TransactionService interface {
	ListForUser(ctx context.Context, userID string) ([]*entities.Transaction, error)
	Get(ctx context.Context, callerID, transactionID string) (*entities.Transaction, error)
	Create(ctx context.Context, callerID string, input models.CreateTransactionInput) (*entities.Transaction, error)
	Update(ctx context.Context, callerID string, input models.UpdateTransactionInput) (*entities.Transaction, error)
	Delete(ctx context.Context, callerID, transactionID string) (*entities.Transaction, error)
	CategoryStatistics(ctx context.Context, userID string) ([]models.CategoryStatistic, error)
}

type transactionService struct {
	repo     repository.TransactionRepository
	validate *validator.Validate
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo repository.TransactionRepository) TransactionService {
	return &transactionService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListForUser returns all transactions owned by the user, in store order.
func (s *transactionService) ListForUser(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	transactions, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap("failed to list transactions", err)
	}
	return transactions, nil
}

// Get returns a transaction by id if the caller owns it; (nil, nil)
// when it does not exist.
func (s *transactionService) Get(ctx context.Context, callerID, transactionID string) (*entities.Transaction, error) {
	t, err := s.repo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, apperr.Wrap("failed to find transaction", err)
	}
	if t == nil {
		return nil, nil
	}
	if t.UserID != callerID {
		return nil, apperr.New(apperr.Unauthorized, "Unauthorized")
	}
	return t, nil
}

// Create persists a new transaction. The owner is always the caller,
// regardless of anything in the input.
func (s *transactionService) Create(ctx context.Context, callerID string, input models.CreateTransactionInput) (*entities.Transaction, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.Validation, "All fields are required")
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		return nil, apperr.New(apperr.Validation, "Invalid date, expected YYYY-MM-DD")
	}

	location := input.Location
	if location == "" {
		location = "Unknown"
	}

	created, err := s.repo.Create(ctx, &entities.Transaction{
		UserID:          callerID,
		Description:     input.Description,
		Category:        input.Category,
		Amount:          input.Amount,
		TransactionType: input.TransactionType,
		Location:        location,
		Date:            date,
	})
	if err != nil {
		return nil, apperr.Wrap("failed to create transaction", err)
	}
	return created, nil
}

// Update applies the supplied fields to a transaction the caller owns.
// Nil input fields leave the stored values untouched.
func (s *transactionService) Update(ctx context.Context, callerID string, input models.UpdateTransactionInput) (*entities.Transaction, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.Validation, "All fields are required")
	}

	t, err := s.repo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, apperr.Wrap("failed to find transaction", err)
	}
	if t == nil {
		return nil, nil
	}
	if t.UserID != callerID {
		return nil, apperr.New(apperr.Unauthorized, "Unauthorized")
	}

	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Category != nil {
		t.Category = *input.Category
	}
	if input.Amount != nil {
		t.Amount = *input.Amount
	}
	if input.TransactionType != nil {
		t.TransactionType = *input.TransactionType
	}
	if input.Location != nil {
		t.Location = *input.Location
	}
	if input.Date != nil {
		date, err := time.Parse(dateLayout, *input.Date)
		if err != nil {
			return nil, apperr.New(apperr.Validation, "Invalid date, expected YYYY-MM-DD")
		}
		t.Date = date
	}

	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, apperr.Wrap("failed to update transaction", err)
	}
	return updated, nil
}

// Delete removes a transaction the caller owns and returns the deleted
// record; (nil, nil) when it does not exist.
func (s *transactionService) Delete(ctx context.Context, callerID, transactionID string) (*entities.Transaction, error) {
	t, err := s.repo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, apperr.Wrap("failed to find transaction", err)
	}
	if t == nil {
		return nil, nil
	}
	if t.UserID != callerID {
		return nil, apperr.New(apperr.Unauthorized, "Unauthorized")
	}

	if err := s.repo.Delete(ctx, transactionID); err != nil {
		return nil, apperr.Wrap("failed to delete transaction", err)
	}
	return t, nil
}

// CategoryStatistics groups the user's transactions by category label
// (exact match) and sums amounts per group. Output order is the first
// time each category was seen among the user's transactions.
func (s *transactionService) CategoryStatistics(ctx context.Context, userID string) ([]models.CategoryStatistic, error) {
	transactions, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap("failed to list transactions", err)
	}

	index := make(map[string]int)
	stats := make([]models.CategoryStatistic, 0, len(transactions))

	for _, t := range transactions {
		i, seen := index[t.Category]
		if !seen {
			i = len(stats)
			index[t.Category] = i
			stats = append(stats, models.CategoryStatistic{Category: t.Category})
		}
		stats[i].TotalAmount += t.Amount
	}

	return stats, nil
}
