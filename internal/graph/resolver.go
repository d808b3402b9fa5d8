package graph

import (
	"context"
	"errors"
	"log"

	"github.com/graphql-go/graphql"

	"fintrack-be/internal/apperr"
	"fintrack-be/internal/auth"
	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
	"fintrack-be/internal/service"
)

// Resolver is the root resolver for the GraphQL schema. It holds the
// services that back every query and mutation field.
type Resolver struct {
	auth         service.AuthService
	transactions service.TransactionService
}

// NewResolver creates a new root resolver
func NewResolver(authService service.AuthService, transactionService service.TransactionService) *Resolver {
	return &Resolver{
		auth:         authService,
		transactions: transactionService,
	}
}

// requireUser returns the session's user, or an UnauthorizedError when
// the request is anonymous. No store access happens before this check.
func requireUser(ctx context.Context) (*entities.User, error) {
	if a := auth.FromContext(ctx); a != nil && a.User() != nil {
		return a.User(), nil
	}
	return nil, apperr.New(apperr.Unauthorized, "Unauthorized")
}

// fail is the error boundary: client-visible messages pass through
// verbatim, everything else is logged once here and collapsed to a
// generic message.
func fail(op string, err error) error {
	if e, ok := err.(*apperr.Error); ok && e.ClientVisible() {
		return errors.New(e.Message)
	}
	log.Printf("Error in %s: %v", op, err)
	return errors.New("Internal Server Error")
}

// AuthUser resolves the authUser query: the session's user, or null
// when the request is anonymous. Never an error.
func (r *Resolver) AuthUser(p graphql.ResolveParams) (interface{}, error) {
	if a := auth.FromContext(p.Context); a != nil && a.User() != nil {
		return a.User(), nil
	}
	return nil, nil
}

// User resolves the user query: lookup by id, null when absent.
func (r *Resolver) User(p graphql.ResolveParams) (interface{}, error) {
	userID, _ := p.Args["userId"].(string)

	user, err := r.auth.UserByID(p.Context, userID)
	if err != nil {
		return nil, fail("user query", err)
	}
	if user == nil {
		return nil, nil
	}
	return user, nil
}

// SignUp resolves the signUp mutation: create the account and establish
// a session for it.
func (r *Resolver) SignUp(p graphql.ResolveParams) (interface{}, error) {
	input := argMap(p, "input")

	user, err := r.auth.SignUp(p.Context, models.SignUpInput{
		Username: strArg(input, "username"),
		Name:     strArg(input, "name"),
		Password: strArg(input, "password"),
		Gender:   strArg(input, "gender"),
	})
	if err != nil {
		return nil, fail("signUp", err)
	}

	a := auth.FromContext(p.Context)
	if a == nil {
		return nil, fail("signUp", errors.New("auth context missing"))
	}
	if err := a.Login(p.Context, user); err != nil {
		return nil, fail("signUp", err)
	}

	return user, nil
}

// Login resolves the login mutation: verify credentials and establish
// a session. Re-login replaces the session's bound user.
func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	input := argMap(p, "input")

	user, err := r.auth.Authenticate(p.Context, strArg(input, "username"), strArg(input, "password"))
	if err != nil {
		return nil, fail("login", err)
	}

	a := auth.FromContext(p.Context)
	if a == nil {
		return nil, fail("login", errors.New("auth context missing"))
	}
	if err := a.Login(p.Context, user); err != nil {
		return nil, fail("login", err)
	}

	return user, nil
}

// Logout resolves the logout mutation. A session-destroy failure fails
// the request rather than returning a false success.
func (r *Resolver) Logout(p graphql.ResolveParams) (interface{}, error) {
	a := auth.FromContext(p.Context)
	if a == nil {
		return nil, fail("logout", errors.New("auth context missing"))
	}
	if err := a.Logout(p.Context); err != nil {
		return nil, fail("logout", err)
	}
	return models.LogoutPayload{Message: "Logged out successfully"}, nil
}

// Transactions resolves the transactions query: the caller's owned
// transactions, in store order.
func (r *Resolver) Transactions(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, fail("transactions", err)
	}

	transactions, err := r.transactions.ListForUser(p.Context, user.ID)
	if err != nil {
		return nil, fail("transactions", err)
	}
	return transactions, nil
}

// Transaction resolves the transaction query: lookup by id, restricted
// to the caller's own records. Null when absent.
func (r *Resolver) Transaction(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, fail("transaction", err)
	}
	transactionID, _ := p.Args["transactionId"].(string)

	t, err := r.transactions.Get(p.Context, user.ID, transactionID)
	if err != nil {
		return nil, fail("transaction", err)
	}
	if t == nil {
		return nil, nil
	}
	return t, nil
}

// CategoryStatistics resolves the categoryStatistics query.
func (r *Resolver) CategoryStatistics(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, fail("categoryStatistics", err)
	}

	stats, err := r.transactions.CategoryStatistics(p.Context, user.ID)
	if err != nil {
		return nil, fail("categoryStatistics", err)
	}
	return stats, nil
}

// CreateTransaction resolves the createTransaction mutation. The owner
// is stamped from the session, never from the input.
func (r *Resolver) CreateTransaction(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, fail("createTransaction", err)
	}
	input := argMap(p, "input")

	t, err := r.transactions.Create(p.Context, user.ID, models.CreateTransactionInput{
		Description:     strArg(input, "description"),
		Category:        strArg(input, "category"),
		Amount:          floatArg(input, "amount"),
		TransactionType: strArg(input, "transactionType"),
		Location:        strArg(input, "location"),
		Date:            strArg(input, "date"),
	})
	if err != nil {
		return nil, fail("createTransaction", err)
	}
	return t, nil
}

// UpdateTransaction resolves the updateTransaction mutation: applies
// the supplied fields to a record the caller owns.
func (r *Resolver) UpdateTransaction(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, fail("updateTransaction", err)
	}
	input := argMap(p, "input")

	t, err := r.transactions.Update(p.Context, user.ID, models.UpdateTransactionInput{
		TransactionID:   strArg(input, "transactionId"),
		Description:     strPtrArg(input, "description"),
		Category:        strPtrArg(input, "category"),
		Amount:          floatPtrArg(input, "amount"),
		TransactionType: strPtrArg(input, "transactionType"),
		Location:        strPtrArg(input, "location"),
		Date:            strPtrArg(input, "date"),
	})
	if err != nil {
		return nil, fail("updateTransaction", err)
	}
	if t == nil {
		return nil, nil
	}
	return t, nil
}

// DeleteTransaction resolves the deleteTransaction mutation: deletes a
// record the caller owns and returns it.
func (r *Resolver) DeleteTransaction(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, fail("deleteTransaction", err)
	}
	transactionID, _ := p.Args["transactionId"].(string)

	t, err := r.transactions.Delete(p.Context, user.ID, transactionID)
	if err != nil {
		return nil, fail("deleteTransaction", err)
	}
	if t == nil {
		return nil, nil
	}
	return t, nil
}

// UserTransactions resolves the User.transactions field: the ownership
// join from a resolved user to its transactions. Restricted to the
// caller's own user so other users' records cannot be enumerated.
func (r *Resolver) UserTransactions(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p.Context)
	if err != nil {
		return nil, fail("user transactions", err)
	}

	parent, ok := p.Source.(*entities.User)
	if !ok {
		return nil, fail("user transactions", errors.New("unexpected source type"))
	}
	if parent.ID != user.ID {
		return nil, fail("user transactions", apperr.New(apperr.Unauthorized, "Unauthorized"))
	}

	transactions, err := r.transactions.ListForUser(p.Context, parent.ID)
	if err != nil {
		return nil, fail("user transactions", err)
	}
	return transactions, nil
}
