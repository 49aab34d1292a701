package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/vasiliy-maslov/shop-backend/internal/user"
)

var (
	ErrEmailExists = errors.New("user with this email already exists")
	// ErrInvalidCredentials намеренно одинаков для неизвестного email и
	// неверного пароля, чтобы не раскрывать, какой из двух случился.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// Tokens — пара токенов, выдаваемая при логине.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type SignupInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
}

type Service interface {
	Signup(ctx context.Context, input SignupInput) (*user.User, error)
	Login(ctx context.Context, email, password string) (*Tokens, error)
	CurrentUser(ctx context.Context, token string) (*user.User, error)
}

type service struct {
	users  user.Repository
	tokens *TokenManager
}

func NewService(users user.Repository, tokens *TokenManager) Service {
	return &service{users: users, tokens: tokens}
}

func (s *service) Signup(ctx context.Context, input SignupInput) (*user.User, error) {
	_, err := s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, user.ErrNotFound) {
		log.Error().Err(err).Msg("service: failed to check email uniqueness")
		return nil, fmt.Errorf("service: failed to check email uniqueness: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to hash password")
		return nil, fmt.Errorf("service: failed to hash password: %w", err)
	}

	u := &user.User{
		ID:          uuid.Must(uuid.NewV4()).String(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Password:    string(hash),
		PhoneNumber: input.PhoneNumber,
	}

	if err := s.users.Create(ctx, u); err != nil {
		log.Error().Err(err).Msg("service: failed to create user in repository")
		return nil, fmt.Errorf("service: failed to create user: %w", err)
	}

	log.Info().Str("user_id", u.ID).Msg("service: user created")

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Tokens, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Error().Err(err).Msg("service: failed to fetch user for login")
		return nil, fmt.Errorf("service: failed to fetch user for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.NewAccessToken(u.Email)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to issue access token")
		return nil, fmt.Errorf("service: failed to issue access token: %w", err)
	}

	refresh, err := s.tokens.NewRefreshToken(u.Email)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to issue refresh token")
		return nil, fmt.Errorf("service: failed to issue refresh token: %w", err)
	}

	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// CurrentUser resolves the bearer token to the stored user record.
// Возвращается полная запись, включая хеш пароля: так делала исходная
// система, наружу хеш не отдаёт только схема ответа (см. DESIGN.md).
func (s *service) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	subject, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			log.Warn().Str("subject", subject).Msg("service: token subject has no matching user")
			return nil, user.ErrNotFound
		}
		log.Error().Err(err).Msg("service: failed to fetch user by token subject")
		return nil, fmt.Errorf("service: failed to fetch user by token subject: %w", err)
	}

	return u, nil
}
