package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commission-dashboard-api/internal/config"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func authConfig() config.Auth {
	return config.Auth{
		Secret:        "segredo-de-teste",
		AdminUsername: "admin",
		AdminPassword: "senha123",
		SessionToken:  "token-de-sessao",
		SessionMaxAge: 8 * time.Hour,
	}
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hash-secreto"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name         string
		setup        func(cfg *config.Auth)
		username     string
		password     string
		expectedErr  error
		expectedCode string
	}{
		{
			name:     "Credenciais corretas",
			username: "admin",
			password: "senha123",
		},
		{
			name:         "Senha incorreta",
			username:     "admin",
			password:     "errada",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Usuário incorreto",
			username:     "root",
			password:     "senha123",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Campos ausentes",
			username:     "",
			password:     "",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Senha configurada vazia nunca autentica",
			setup:        func(cfg *config.Auth) { cfg.AdminPassword = "" },
			username:     "admin",
			password:     "qualquer",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Hash bcrypt tem precedência",
			setup:    func(cfg *config.Auth) { cfg.AdminPasswordHash = string(hash) },
			username: "admin",
			password: "hash-secreto",
		},
		{
			name:         "Hash bcrypt rejeita a senha em texto",
			setup:        func(cfg *config.Auth) { cfg.AdminPasswordHash = string(hash) },
			username:     "admin",
			password:     "senha123",
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:         "Token de sessão não configurado",
			setup:        func(cfg *config.Auth) { cfg.SessionToken = "" },
			username:     "admin",
			password:     "senha123",
			expectedErr:  ErrSessionNotConfigured,
			expectedCode: apiErrors.ErrSessionNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := authConfig()
			if tt.setup != nil {
				tt.setup(&cfg)
			}
			service := NewService(cfg)

			session, err := service.Login(tt.username, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Nil(t, session)
				assert.True(t, errors.Is(err, tt.expectedErr))

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.expectedCode, authErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, cfg.SessionToken, session.Cookie)
			assert.Equal(t, 8*time.Hour, session.MaxAge)
			assert.NotEmpty(t, session.Token)

			claims, err := service.ValidateToken(session.Token)
			require.NoError(t, err)
			assert.Equal(t, "admin", claims.Username)
			assert.Equal(t, domain.AdminRole, claims.Role)
		})
	}
}

func TestService_ValidateSession(t *testing.T) {
	service := NewService(authConfig())

	assert.True(t, service.ValidateSession("token-de-sessao"))
	assert.False(t, service.ValidateSession("outro"))
	assert.False(t, service.ValidateSession(""))

	empty := authConfig()
	empty.SessionToken = ""
	assert.False(t, NewService(empty).ValidateSession(""))
}

func TestService_ValidateToken(t *testing.T) {
	cfg := authConfig()
	issuedAt := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	issuer := &Service{cfg: cfg, now: func() time.Time { return issuedAt }}
	token, err := issuer.generateJWT("admin")
	require.NoError(t, err)

	t.Run("Token dentro da validade", func(t *testing.T) {
		validator := &Service{cfg: cfg, now: func() time.Time { return issuedAt.Add(7 * time.Hour) }}
		claims, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
	})

	t.Run("Token expirado", func(t *testing.T) {
		validator := &Service{cfg: cfg, now: func() time.Time { return issuedAt.Add(9 * time.Hour) }}
		_, err := validator.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Assinado com outro segredo", func(t *testing.T) {
		other := cfg
		other.Secret = "outro-segredo"
		validator := &Service{cfg: other, now: func() time.Time { return issuedAt }}
		_, err := validator.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Role diferente de admin", func(t *testing.T) {
		claims := domain.Claims{
			Username: "agente",
			Role:     "viewer",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
		require.NoError(t, err)

		validator := &Service{cfg: cfg, now: func() time.Time { return issuedAt }}
		_, err = validator.ValidateToken(raw)
		assert.ErrorIs(t, err, ErrInsufficientPrivilege)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := issuer.ValidateToken("nao-e-um-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
