package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/miikeyanderson/AMED-Referrals-sub000/config"
)

var (
	jwtSecret     []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
)

// InitAuth stores the signing secret and token lifetimes from config.
func InitAuth(cfg *config.Config) {
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set in the environment")
	}
	jwtSecret = []byte(cfg.JWTSecret)
	accessExpiry = cfg.JWTAccessExpiry
	refreshExpiry = cfg.JWTRefreshExpiry
}

// GenerateAccessToken creates a new JWT access token
func GenerateAccessToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(accessExpiry).Unix(),
	})

	return token.SignedString(jwtSecret)
}

// GenerateRefreshToken creates a random opaque refresh token. Only its
// hash is stored server-side.
func GenerateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// RefreshTokenExpired reports whether a refresh token issued at issuedAt
// has outlived the configured refresh lifetime. A missing issue time is
// treated as expired.
func RefreshTokenExpired(issuedAt *time.Time, now time.Time) bool {
	if issuedAt == nil {
		return true
	}
	return now.Sub(*issuedAt) >= refreshExpiry
}

// HashToken returns the hex SHA-256 digest of a token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ExtractUserIDFromToken parses a Bearer authorization header and
// returns the user id claim. Expired tokens are rejected.
func ExtractUserIDFromToken(authHeader string) (uint, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, errors.New("invalid authorization header format")
	}

	tokenString := parts[1]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid user ID in token")
	}

	return uint(userIDFloat), nil
}
