package organizer

import (
	"errors"
	"fmt"
	"time"

	"hackportal-backend/jwt"
)

var (
	ErrKeyRequired = errors.New("organizer key is required")
	ErrExpired     = errors.New("expiration must be in the future")
)

func GenerateToken(exp time.Time, key string, now time.Time) (string, error) {
	if key == "" {
		return "", ErrKeyRequired
	}
	if !exp.After(now) {
		return "", ErrExpired
	}

	ss, err := jwt.NewOrganizerToken(exp, []byte(key))
	if err != nil {
		fmt.Println("Signing failure:", err)
		return "", err
	}

	return ss, nil
}
