package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"fintrack-be/internal/apperr"
	"fintrack-be/internal/entities"
	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	SignUp(ctx context.Context, input models.SignUpInput) (*entities.User, error)
	Authenticate(ctx context.Context, username, password string) (*entities.User, error)
	UserByID(ctx context.Context, id string) (*entities.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// SignUp creates a new user account. The password is stored as a bcrypt
// hash and the profile picture URL is derived from username and gender.
func (s *authService) SignUp(ctx context.Context, input models.SignUpInput) (*entities.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.New(apperr.Validation, "All fields are required")
	}

	// Check if user already exists
	existingUser, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, apperr.Wrap("failed to check username", err)
	}
	if existingUser != nil {
		return nil, apperr.New(apperr.Conflict, "User already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap("failed to hash password", err)
	}

	user, err := s.userRepo.Create(ctx, input.Username, input.Name, string(hashedPassword),
		input.Gender, profilePictureURL(input.Username, input.Gender))
	if err != nil {
		return nil, apperr.Wrap("failed to create user", err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair and returns the user.
// Any mismatch yields the same AuthenticationError so callers cannot
// probe for valid usernames.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, apperr.New(apperr.Validation, "All fields are required")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Wrap("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.Authentication, "Incorrect username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.New(apperr.Authentication, "Incorrect username or password")
	}

	return user, nil
}

// UserByID looks a user up by id; (nil, nil) when absent.
func (s *authService) UserByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap("failed to find user", err)
	}
	return user, nil
}

// profilePictureURL derives a deterministic avatar URL from username and gender.
func profilePictureURL(username, gender string) string {
	if gender == "male" {
		return fmt.Sprintf("https://avatar.iran.liara.run/public/boy?username=%s", username)
	}
	return fmt.Sprintf("https://avatar.iran.liara.run/public/girl?username=%s", username)
}
