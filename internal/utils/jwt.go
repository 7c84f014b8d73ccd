package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/epqs-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims are the claims of a session token: the standard registered
// claims plus the username, so that a session can be restored without a
// storage round trip.
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - username:       the user's login name
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	session, err := utils.GenerateSessionToken("epqs-catalog", 42, "alice", 24*time.Hour, "secret")
func GenerateSessionToken(issuer string, userID int64, username string, sessionDuration time.Duration, signKey string) (models.Session, error) {
	if issuer == "" || sessionDuration <= 0 || signKey == "" || username == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	expiresAt := now.Add(sessionDuration)
	claims := &sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{
		UserID:    userID,
		Username:  username,
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateAndParseSessionToken verifies the signature, issuer and expiry of
// tokenString and restores the session it carries.
//
// Only HS256 is accepted. The subject must be a base-10 user id and the
// username claim must be present.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	if claims.Subject == "" {
		return models.Session{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	if claims.Username == "" {
		return models.Session{}, errors.New("empty username error")
	}

	return models.Session{
		UserID:    userID,
		Username:  claims.Username,
		Token:     tokenString,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
