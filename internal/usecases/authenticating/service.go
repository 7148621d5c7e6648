package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/commission-dashboard-api/internal/config"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionMaxAge é a validade do cookie e do bearer token quando não configurada
const DefaultSessionMaxAge = 8 * time.Hour

type Authenticator interface {
	Login(username, password string) (*Session, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	ValidateSession(value string) bool
}

// Session é o resultado de um login administrativo bem sucedido
type Session struct {
	Cookie string        // valor do cookie admin_session
	Token  string        // bearer token JWT
	MaxAge time.Duration // validade de ambos
}

type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	if cfg.SessionMaxAge <= 0 {
		cfg.SessionMaxAge = DefaultSessionMaxAge
	}

	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func (s *Service) Login(username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "usuário e senha são obrigatórios")
	}

	if !equal(username, s.cfg.AdminUsername) || !s.checkPassword(password) {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	if s.cfg.SessionToken == "" {
		return nil, NewAuthError(ErrSessionNotConfigured, apiErrors.ErrSessionNotConfigured, "defina ADMIN_SESSION_TOKEN")
	}

	token, err := s.generateJWT(username)
	if err != nil {
		return nil, NewAuthError(fmt.Errorf("%w: %v", ErrTokenGeneration, err), apiErrors.ErrInternalServer, "")
	}

	return &Session{
		Cookie: s.cfg.SessionToken,
		Token:  token,
		MaxAge: s.cfg.SessionMaxAge,
	}, nil
}

// checkPassword usa o hash bcrypt quando configurado; senha vazia nunca autentica
func (s *Service) checkPassword(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}

	if s.cfg.AdminPassword == "" {
		return false
	}

	return equal(password, s.cfg.AdminPassword)
}

// ValidateSession compara o cookie com o token configurado em tempo constante
func (s *Service) ValidateSession(value string) bool {
	if value == "" || s.cfg.SessionToken == "" {
		return false
	}

	return equal(value, s.cfg.SessionToken)
}

func (s *Service) generateJWT(username string) (string, error) {
	if s.cfg.Secret == "" {
		return "", errors.New("AUTH_SECRET vazio")
	}

	now := s.now()
	claims := domain.Claims{
		Username: username,
		Role:     domain.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionMaxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg.Secret == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Role != domain.AdminRole {
		return nil, ErrInsufficientPrivilege
	}

	return claims, nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
