package utilities

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"serenity-backend/internal/config"
	"serenity-backend/internal/model"
)

// Secret keys
var (
	accessSecret  = []byte("change-me-access-secret")
	refreshSecret = []byte("change-me-refresh-secret")
	secretsMu     sync.RWMutex
)

// Token expiration times, overridable through SetupTokens.
var (
	AccessTokenExpiry  = time.Minute * 15
	RefreshTokenExpiry = time.Hour * 24 * 7
)

var (
	ErrInvalidToken = errors.New("invalid or malformed token")
	ErrTokenExpired = errors.New("token has expired")
)

// Claims struct
type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// SetupTokens installs the secrets and lifetimes from the configuration.
// Empty secrets keep the built-in development values.
func SetupTokens(cfg config.AuthenticationConfig) {
	secretsMu.Lock()
	defer secretsMu.Unlock()
	if cfg.AccessSecret != "" {
		accessSecret = []byte(cfg.AccessSecret)
	} else {
		Warn("ACCESS_SECRET not configured, using development secret")
	}
	if cfg.RefreshSecret != "" {
		refreshSecret = []byte(cfg.RefreshSecret)
	}
	if cfg.AccessTokenTTL > 0 {
		AccessTokenExpiry = time.Duration(cfg.AccessTokenTTL) * time.Minute
	}
	if cfg.RefreshTokenTTL > 0 {
		RefreshTokenExpiry = time.Duration(cfg.RefreshTokenTTL) * time.Minute
	}
}

// GenerateTokens creates both access and refresh tokens
func GenerateTokens(user *model.User) (string, string, error) {
	secretsMu.RLock()
	defer secretsMu.RUnlock()

	accessToken, err := generateToken(user, accessSecret, AccessTokenExpiry)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := generateToken(user, refreshSecret, RefreshTokenExpiry)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken verifies the token and extracts claims
func ValidateToken(tokenStr string, isRefresh bool) (*Claims, error) {
	secretsMu.RLock()
	secret := accessSecret
	if isRefresh {
		secret = refreshSecret
	}
	secretsMu.RUnlock()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RefreshTokens generates a new access and refresh token using a valid refresh token
func RefreshTokens(refreshToken string) (string, string, error) {
	claims, err := ValidateToken(refreshToken, true)
	if err != nil {
		return "", "", err
	}

	newAccessToken, newRefreshToken, err := GenerateTokens(&model.User{
		ID:      claims.UserID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	})
	if err != nil {
		return "", "", errors.New("failed to generate new tokens")
	}

	return newAccessToken, newRefreshToken, nil
}

func generateToken(user *model.User, secret []byte, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   user.Email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
