package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"

	"github.com/Nexora712/linkbio-backend/internal/modules/auth/domain"
	profiledomain "github.com/Nexora712/linkbio-backend/internal/modules/profile/domain"
	"github.com/Nexora712/linkbio-backend/internal/shared/utils"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	Token string `json:"token"`
}

// AuthResponse carries the session token plus the account it belongs to.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// PageProvisioner creates the user's page on first access. The profile
// module's PageService satisfies this.
type PageProvisioner interface {
	GetPage(ctx context.Context, userID uuid.UUID) (*profiledomain.Page, error)
}

// AuthService provides registration and sign-in.
type AuthService struct {
	repo                 domain.UserRepository
	pages                PageProvisioner
	jwtSecret            string
	jwtExpiry            time.Duration
	logger               *zap.Logger
	googleTokenValidator func(ctx context.Context, token string, audience string) (*idtoken.Payload, error)
}

func NewAuthService(repo domain.UserRepository, pages PageProvisioner, jwtSecret string, jwtExpiry time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:                 repo,
		pages:                pages,
		jwtSecret:            jwtSecret,
		jwtExpiry:            jwtExpiry,
		logger:               logger,
		googleTokenValidator: idtoken.Validate,
	}
}

// Register creates a new account and its blank page, then signs the user in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Email == "" {
		return nil, errors.New("email is required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, errors.New("invalid email format")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashedPass),
		Name:         req.Name,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.provisionPage(ctx, user)

	return s.respond(user)
}

// Login authenticates with email and password.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("missing email or password")
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// same error as a bad password, so callers cannot probe for accounts
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.respond(user)
}

// GoogleLogin validates a Google ID token and signs the account in, creating
// it on first use.
func (s *AuthService) GoogleLogin(ctx context.Context, googleClientID string, req GoogleLoginRequest) (*AuthResponse, error) {
	validate := s.googleTokenValidator
	if validate == nil {
		validate = idtoken.Validate
	}

	payload, err := validate(ctx, req.Token, googleClientID)
	if err != nil {
		return nil, errors.New("invalid google token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, errors.New("email not provided by google")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user = &domain.User{
			ID:        uuid.New(),
			Email:     email,
			Name:      name,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if createErr := s.repo.Create(ctx, user); createErr != nil {
			return nil, createErr
		}
		s.logger.Info("created account from google sign-in", zap.String("user_id", user.ID.String()))
		s.provisionPage(ctx, user)
	}

	return s.respond(user)
}

// GetUser retrieves an account by ID.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// provisionPage eagerly creates the page row so the editor opens on a page
// that already exists. Failure is soft: GetPage provisions lazily later.
func (s *AuthService) provisionPage(ctx context.Context, user *domain.User) {
	if s.pages == nil {
		return
	}
	if _, err := s.pages.GetPage(ctx, user.ID); err != nil {
		s.logger.Warn("could not provision page at signup",
			zap.String("user_id", user.ID.String()), zap.Error(err))
	}
}

func (s *AuthService) respond(user *domain.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}
