package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-be/internal/apperr"
	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
)

type fakeTransactionRepo struct {
	transactions []*entities.Transaction
	nextID       int
	reads        int
}

func (f *fakeTransactionRepo) Create(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	f.nextID++
	stored := *t
	stored.ID = fmt.Sprintf("tx-%d", f.nextID)
	f.transactions = append(f.transactions, &stored)
	out := stored
	return &out, nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id string) (*entities.Transaction, error) {
	f.reads++
	for _, t := range f.transactions {
		if t.ID == id {
			out := *t
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) FindByUserID(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	f.reads++
	var out []*entities.Transaction
	for _, t := range f.transactions {
		if t.UserID == userID {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	for i, existing := range f.transactions {
		if existing.ID == t.ID {
			stored := *t
			f.transactions[i] = &stored
			out := stored
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id string) error {
	for i, t := range f.transactions {
		if t.ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func seedTransaction(t *testing.T, svc TransactionService, userID, category string, amount float64) *entities.Transaction {
	t.Helper()
	created, err := svc.Create(context.Background(), userID, models.CreateTransactionInput{
		Description:     category + " spending",
		Category:        category,
		Amount:          amount,
		TransactionType: "expense",
		Date:            "2026-08-01",
	})
	require.NoError(t, err)
	return created
}

func TestCreateStampsOwner(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	created, err := svc.Create(context.Background(), "user-a", models.CreateTransactionInput{
		Description:     "Groceries",
		Category:        "food",
		Amount:          42.5,
		TransactionType: "expense",
		Location:        "Berlin",
		Date:            "2026-08-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-a", created.UserID)
	assert.Equal(t, "Berlin", created.Location)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), created.Date)
}

func TestCreateDefaultsLocation(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	created, err := svc.Create(context.Background(), "user-a", models.CreateTransactionInput{
		Description:     "Groceries",
		Category:        "food",
		Amount:          10,
		TransactionType: "expense",
		Date:            "2026-08-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", created.Location)
}

func TestCreateInvalidDate(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	_, err := svc.Create(context.Background(), "user-a", models.CreateTransactionInput{
		Description:     "Groceries",
		Category:        "food",
		Amount:          10,
		TransactionType: "expense",
		Date:            "15/08/2026",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestCreateMissingFields(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewTransactionService(repo)

	_, err := svc.Create(context.Background(), "user-a", models.CreateTransactionInput{
		Category: "food", Amount: 10, TransactionType: "expense", Date: "2026-08-15",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.Empty(t, repo.transactions)
}

func TestCategoryStatistics(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	seedTransaction(t, svc, "user-a", "food", 50)
	seedTransaction(t, svc, "user-a", "food", 30)
	seedTransaction(t, svc, "user-a", "salary", 200)

	stats, err := svc.CategoryStatistics(context.Background(), "user-a")
	require.NoError(t, err)

	// First-encounter order, summed per category
	require.Len(t, stats, 2)
	assert.Equal(t, models.CategoryStatistic{Category: "food", TotalAmount: 80}, stats[0])
	assert.Equal(t, models.CategoryStatistic{Category: "salary", TotalAmount: 200}, stats[1])
}

func TestCategoryStatisticsScopedToCaller(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	seedTransaction(t, svc, "user-a", "food", 50)
	seedTransaction(t, svc, "user-b", "travel", 500)

	stats, err := svc.CategoryStatistics(context.Background(), "user-a")
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, "food", stats[0].Category)
}

func TestCategoryStatisticsCaseSensitive(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	seedTransaction(t, svc, "user-a", "Food", 50)
	seedTransaction(t, svc, "user-a", "food", 30)

	stats, err := svc.CategoryStatistics(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Len(t, stats, 2)
}

func TestGetEnforcesOwnership(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})
	created := seedTransaction(t, svc, "user-a", "food", 50)

	_, err := svc.Get(context.Background(), "user-b", created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	got, err := svc.Get(context.Background(), "user-a", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestGetMissingIsNil(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	got, err := svc.Get(context.Background(), "user-a", "tx-404")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateAppliesSuppliedFieldsOnly(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})
	created := seedTransaction(t, svc, "user-a", "food", 50)

	amount := 75.0
	updated, err := svc.Update(context.Background(), "user-a", models.UpdateTransactionInput{
		TransactionID: created.ID,
		Amount:        &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, 75.0, updated.Amount)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Date, updated.Date)
}

func TestUpdateEnforcesOwnership(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})
	created := seedTransaction(t, svc, "user-a", "food", 50)

	amount := 75.0
	_, err := svc.Update(context.Background(), "user-b", models.UpdateTransactionInput{
		TransactionID: created.ID,
		Amount:        &amount,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewTransactionService(repo)
	created := seedTransaction(t, svc, "user-a", "food", 50)

	_, err := svc.Delete(context.Background(), "user-b", created.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
	assert.Len(t, repo.transactions, 1)

	deleted, err := svc.Delete(context.Background(), "user-a", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Empty(t, repo.transactions)
}

func TestDeleteMissingIsNil(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	deleted, err := svc.Delete(context.Background(), "user-a", "tx-404")
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

func TestListForUserStoreOrder(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	first := seedTransaction(t, svc, "user-a", "food", 50)
	second := seedTransaction(t, svc, "user-a", "rent", 900)

	list, err := svc.ListForUser(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}
