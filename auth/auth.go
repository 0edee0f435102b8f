package auth

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/log"
	"hackportal-backend/store"
)

const cost = 10

// dummyHash is compared against when the username is unknown, so a miss costs
// as much as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hackportal-dummy-secret"), cost)

// Identity is who a request acts as once a team token has been verified.
type Identity struct {
	TeamID   primitive.ObjectID
	Username string
}

type Authenticator struct {
	credentials store.Credentials
}

func NewAuthenticator(credentials store.Credentials) *Authenticator {
	return &Authenticator{credentials: credentials}
}

func (a *Authenticator) Authenticate(ctx context.Context, username, secret string) (*entity.Credential, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrUsernameRequired
	}
	if secret == "" {
		return nil, errs.ErrPasswordRequired
	}

	c, err := a.credentials.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(secret))
			log.Logger.Debug("unknown username", zap.String("username", username))
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Logger.Debug("invalid password", zap.String("username", username))
			return nil, errs.ErrInvalidCredentials
		}

		log.Logger.Error("bcrypt failure", zap.Error(err))
		return nil, errs.ErrCryptographic
	}

	return c, nil
}

func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", errs.ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		log.Logger.Error("failed to generate bcrypt hash", zap.Error(err))
		return "", errs.ErrCryptographic
	}
	return string(hash), nil
}
