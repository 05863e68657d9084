package service

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/dto"
)

// ErrInvalidCredentials indicates an unknown account or a wrong password.
var ErrInvalidCredentials = errors.New("invalid user id or password")

// Account is one entry in the static credential table. There is no user
// store behind it; the table lives in memory for the process lifetime.
type Account struct {
	ID       string
	Password string
	Role     string
	Name     string
}

// AuthService authenticates against the static account table and issues
// bearer tokens.
type AuthService interface {
	Login(req dto.LoginRequest) (dto.LoginResponse, error)
}

type authService struct {
	accounts  map[string]Account
	secret    []byte
	tokenTTL  time.Duration
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService builds the auth service around a credential table.
func NewAuthService(accounts []Account, secret string, tokenTTL time.Duration, validate *validator.Validate, logger zerolog.Logger) AuthService {
	table := make(map[string]Account, len(accounts))
	for _, account := range accounts {
		table[account.ID] = account
	}

	return &authService{
		accounts:  table,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

// DemoAccounts returns the built-in credential table: two teacher accounts
// and three student accounts matching the seeded roster.
func DemoAccounts() []Account {
	return []Account{
		{ID: "t001", Password: "teach123", Role: "teacher", Name: "Dr. Amanda Johnson"},
		{ID: "t002", Password: "teach123", Role: "teacher", Name: "Prof. Brian Smith"},
		{ID: "s001", Password: "student123", Role: "student", Name: "John Kirk"},
		{ID: "s002", Password: "student123", Role: "student", Name: "Sarah Williams"},
		{ID: "s003", Password: "student123", Role: "student", Name: "Maria Rodriguez"},
	}
}

// Login checks the credentials and returns a signed token carrying the
// account id, role and display name.
func (s *authService) Login(req dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.LoginResponse{}, err
	}

	account, ok := s.accounts[req.UserID]
	if !ok || account.Password != req.Password {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	issued := s.now()
	claims := jwt.MapClaims{
		"sub":  account.ID,
		"role": account.Role,
		"name": account.Name,
		"iat":  issued.Unix(),
		"exp":  issued.Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	s.logger.Info().Str("user_id", account.ID).Str("role", account.Role).Msg("login succeeded")

	return dto.LoginResponse{Token: token, Role: account.Role, Name: account.Name}, nil
}
