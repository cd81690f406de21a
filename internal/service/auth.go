package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sea-catering-backend/internal/apperr"
	"sea-catering-backend/internal/config"
	"sea-catering-backend/internal/dto"
	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/repository"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// SessionClaims is what a verified bearer token carries.
type SessionClaims struct {
	UserID string
	Role   model.Role
}

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	VerifyToken(token string) (*SessionClaims, error)

	// EnsureAdmin seeds the configured admin account on startup when no user
	// with that email exists yet.
	EnsureAdmin(ctx context.Context, email, password, name string) error
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWT
}

func NewAuthService(userRepo repository.UserRepository, jwtCfg config.JWT) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	verr := apperr.NewValidation()
	if req.FullName == "" {
		verr.Add("fullName", "full name is required")
	}
	if !emailRe.MatchString(req.Email) {
		verr.Add("email", "must be a valid email address")
	}
	validatePassword(verr, req.Password)
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		verr.Add("email", "an account with this email already exists")
		return nil, verr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("invalid email or password")
		}
		return nil, fmt.Errorf("look up email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthorized("invalid email or password")
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user", id)
		}
		return nil, err
	}

	return user, nil
}

func (s *authServiceImpl) VerifyToken(token string) (*SessionClaims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.jwtCfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, apperr.Unauthorized("invalid or expired token")
	}

	return &SessionClaims{
		UserID: claims.Subject,
		Role:   model.Role(claims.Role),
	}, nil
}

func (s *authServiceImpl) EnsureAdmin(ctx context.Context, email, password, name string) error {
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return s.userRepo.Create(ctx, &model.User{
		ID:           uuid.NewString(),
		FullName:     name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
}

func (s *authServiceImpl) issueToken(user *model.User) (*dto.AuthResponse, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.TTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.AuthResponse{User: user, Token: signed}, nil
}

// validatePassword enforces the signup password policy: at least 8 characters
// mixing upper case, lower case, a digit and a special character.
func validatePassword(verr apperr.ValidationError, password string) {
	if len(password) < 8 {
		verr.Add("password", "must be at least 8 characters")
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		verr.Add("password", "must contain upper case, lower case, a number and a special character")
	}
}
