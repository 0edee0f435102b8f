package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/auth"
	"go.uber.org/zap"
	"hackportal-backend/auth"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/log"
)

const Issuer = "hackportal"

var (
	ErrExpired = errors.New("token expired")

	validMethods = []string{jwt.SigningMethodHS512.Alg()}
)

type TeamClaims struct {
	TeamID   string `json:"team_id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

// Identity resolves the claims to the team they were issued for.
func (c *TeamClaims) Identity() (auth.Identity, error) {
	id, err := entity.ParseID(c.TeamID)
	if err != nil {
		return auth.Identity{}, errs.ErrJWT
	}
	return auth.Identity{TeamID: id, Username: c.Username}, nil
}

type OrganizerClaims struct {
	IsOrganizer bool `json:"is_organizer"`
	jwt.StandardClaims
}

type JWT struct {
	key          []byte
	organizerKey []byte
	ttl          time.Duration
}

func NewJWT(key, organizerKey []byte, ttl time.Duration) *JWT {
	return &JWT{
		key:          key,
		organizerKey: organizerKey,
		ttl:          ttl,
	}
}

func (j *JWT) NewTeamToken(c *entity.Credential) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &TeamClaims{
		TeamID:   c.TeamID.Hex(),
		Username: c.Username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(j.ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    Issuer,
		},
	})

	ss, err := token.SignedString(j.key)
	if err != nil {
		log.Logger.Error("signing failure", zap.Error(err))
		return "", err
	}

	return ss, nil
}

// NewOrganizerToken signs an organizer token with the organizer key.
func NewOrganizerToken(exp time.Time, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &OrganizerClaims{
		IsOrganizer: true,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: exp.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    Issuer,
		},
	})

	return token.SignedString(key)
}

func parse(token string, claims jwt.Claims, key []byte) error {
	_, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods(validMethods))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpired
		}

		log.Logger.Debug("parse failure", zap.Error(err))
		return err
	}
	return nil
}

func (j *JWT) ValidateTeamToken(token string) (*TeamClaims, error) {
	c := &TeamClaims{}
	if err := parse(token, c, j.key); err != nil {
		return nil, err
	}
	if c.TeamID == "" {
		return nil, errs.ErrJWT
	}

	return c, nil
}

func (j *JWT) ValidateOrganizerToken(token string) (*OrganizerClaims, error) {
	c := &OrganizerClaims{}
	if err := parse(token, c, j.organizerKey); err != nil {
		return nil, err
	}
	if !c.IsOrganizer {
		return nil, errs.ErrNotOrganizer
	}

	return c, nil
}

// TokenError maps a validation failure to the error returned to callers.
func TokenError(err error) error {
	switch {
	case errors.Is(err, ErrExpired):
		return errs.ErrTokenExpired
	case errors.Is(err, errs.ErrNotOrganizer):
		return errs.ErrNotOrganizer
	}
	return errs.ErrJWT
}

type claimsKey struct{}

func WithClaims(ctx context.Context, c *TeamClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

func GetClaimsFromCtx(ctx context.Context) (*TeamClaims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*TeamClaims)
	return c, ok
}

// TeamAuthFunc reads a team token from the "authorization: bearer" metadata.
func (j *JWT) TeamAuthFunc() grpc_auth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		token, err := grpc_auth.AuthFromMD(ctx, "bearer")
		if err != nil {
			return nil, errs.ErrUnauthorized
		}

		claims, err := j.ValidateTeamToken(token)
		if err != nil {
			return nil, TokenError(err)
		}

		return WithClaims(ctx, claims), nil
	}
}

func (j *JWT) OrganizerAuthFunc() grpc_auth.AuthFunc {
	return func(ctx context.Context) (context.Context, error) {
		token, err := grpc_auth.AuthFromMD(ctx, "bearer")
		if err != nil {
			return nil, errs.ErrUnauthorized
		}

		if _, err := j.ValidateOrganizerToken(token); err != nil {
			return nil, TokenError(err)
		}

		return ctx, nil
	}
}
