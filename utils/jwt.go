package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"coordinator/models"
)

// Session tokens carry the whole trusted identity: id, display name and the
// role string chosen at login. Nothing is validated against a user registry;
// whatever the token says is what downstream policy checks see.

func GenerateToken(u models.User, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":     u.ID,
		"name":       u.Name,
		"role":       string(u.Role),
		"bandId":     u.BandID,
		"instrument": u.Instrument,
		"section":    u.Section,
		"exp":        time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifyToken checks the signature and expiry and rebuilds the user record.
func VerifyToken(tokenString, secret string) (models.User, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return models.User{}, errors.New("could not parse token")
	}
	if !parsed.Valid {
		return models.User{}, errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, errors.New("invalid token claims")
	}

	str := func(key string) string {
		s, _ := claims[key].(string)
		return s
	}
	u := models.User{
		ID:         str("userId"),
		Name:       str("name"),
		Role:       models.Role(str("role")),
		BandID:     str("bandId"),
		Instrument: str("instrument"),
		Section:    str("section"),
	}
	if u.ID == "" {
		return models.User{}, errors.New("invalid token claims")
	}
	return u, nil
}
