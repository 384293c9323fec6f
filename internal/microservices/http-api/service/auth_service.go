package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"webtoonhub/internal/config"
	"webtoonhub/internal/microservices/http-api/models"
	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/middleware/auth"
	"webtoonhub/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrNameInUse          = shared.Conflict("username already in use")
	ErrEmailInUse         = shared.Conflict("email already in use")
	ErrInvalidCredentials = shared.Unauthorized("invalid credentials")
	ErrInvalidToken       = shared.Unauthorized("invalid token")
	ErrMemberSuspended    = shared.Forbidden("member is suspended")
)

type AuthService interface {
	Register(ctx context.Context, username, password, email, name string) (*models.Member, error)
	Login(ctx context.Context, username, password string) (accessToken string, member *models.Member, err error)
	ValidateToken(tokenString string) (*shared.AuthClaims, error)
	TokenTTL() time.Duration
}

type authService struct {
	memberRepo     repository.MemberRepository
	jwtSecret      []byte
	accessTokenTTL time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

func NewAuthService(memberRepo repository.MemberRepository, cfg *config.Config) AuthService {
	return &authService{
		memberRepo:     memberRepo,
		jwtSecret:      []byte(cfg.JWTSecret),
		accessTokenTTL: cfg.AccessTokenTTL,
		now:            time.Now,
		logger:         slog.Default(),
	}
}

// Register creates a member with role user.
func (s *authService) Register(ctx context.Context, username, password, email, name string) (*models.Member, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.memberRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrNameInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.Internal("lookup username", err)
	}

	if _, err := s.memberRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.Internal("lookup email", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, shared.Internal("hash password", err)
	}

	member := &models.Member{
		Username: username,
		Email:    email,
		Password: hashed,
		Name:     strings.TrimSpace(name),
		Role:     models.RoleUser,
		Status:   models.MemberStatusActive,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		// lost the race against a concurrent register with the same name
		if shared.IsUniqueViolation(err) {
			return nil, ErrNameInUse
		}
		return nil, shared.Internal("create member", err)
	}
	return member, nil
}

// Login verifies credentials and returns a signed access token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.Member, error) {
	member, err := s.memberRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		auth.BurnCompare(password)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, shared.Internal("lookup member", err)
	}

	if err := auth.VerifyPassword(member.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if member.Status == models.MemberStatusSuspended {
		return "", nil, ErrMemberSuspended
	}

	token, err := s.generateAccessToken(member)
	if err != nil {
		return "", nil, shared.Internal("sign token", err)
	}

	if err := s.memberRepo.TouchLastLogin(ctx, member.ID, s.now()); err != nil {
		s.logger.Warn("last_login_update_failed", "member_id", member.ID, "error", err)
	}
	return token, member, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.accessTokenTTL
}

type accessClaims struct {
	MemberID int64  `json:"member_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (s *authService) generateAccessToken(member *models.Member) (string, error) {
	now := s.now()
	claims := accessClaims{
		MemberID: member.ID,
		Username: member.Username,
		Role:     member.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *authService) ValidateToken(tokenString string) (*shared.AuthClaims, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.MemberID <= 0 {
		return nil, ErrInvalidToken
	}

	return &shared.AuthClaims{
		MemberID: claims.MemberID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
