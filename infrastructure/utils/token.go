package utils

import (
	"time"

	"github.com/golang-jwt/jwt"

	"streamhub/domain/model"
	"streamhub/infrastructure/configuration"
	"streamhub/infrastructure/logger"
)

type ITokenManager interface {
	GenerateAccessToken(user model.User) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	VerifyAccessToken(token string) (model.UserClaims, error)
	// VerifyRefreshToken checks signature and expiry only; the caller still
	// has to compare the presented value with the one stored on the user
	// record to detect rotated credentials.
	VerifyRefreshToken(token string) (string, error)
}

// TokenManager signs and verifies the two HS256 credentials with distinct
// secrets and lifetimes.
type TokenManager struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(cfg configuration.Token) ITokenManager {
	return &TokenManager{
		accessSecret:  cfg.AccessSecret,
		refreshSecret: cfg.RefreshSecret,
		accessTTL:     time.Duration(cfg.AccessTTLMinutes) * time.Minute,
		refreshTTL:    time.Duration(cfg.RefreshTTLDays) * 24 * time.Hour,
	}
}

func (t *TokenManager) GenerateAccessToken(user model.User) (string, error) {
	now := GetCurrentTime()
	claims := model.UserClaims{
		Username: user.Username,
		Email:    user.Email,
		Fullname: user.Fullname,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.accessTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(t.accessSecret))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generating access token")
		return "", model.NewInternalError("Tokens could not be generated from our end")
	}
	return tokenString, nil
}

func (t *TokenManager) GenerateRefreshToken(userID string) (string, error) {
	now := GetCurrentTime()
	claims := model.RefreshClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.refreshTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(t.refreshSecret))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generating refresh token")
		return "", model.NewInternalError("Tokens could not be generated from our end")
	}
	return tokenString, nil
}

func (t *TokenManager) VerifyAccessToken(tokenString string) (model.UserClaims, error) {
	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(t.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return model.UserClaims{}, model.NewUnauthorizedError("Invalid access token")
	}
	return claims, nil
}

func (t *TokenManager) VerifyRefreshToken(tokenString string) (string, error) {
	var claims model.RefreshClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(t.refreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", model.NewUnauthorizedError("Invalid refresh token")
	}
	return claims.Subject, nil
}
