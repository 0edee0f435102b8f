package jwt_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/metadata"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/jwt"
)

var (
	key          = []byte("test-key")
	organizerKey = []byte("test-organizer-key")
)

func incoming(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
}

var _ = Describe("JWT", func() {
	var (
		j    *jwt.JWT
		cred *entity.Credential
	)

	BeforeEach(func() {
		j = jwt.NewJWT(key, organizerKey, time.Hour)
		cred = &entity.Credential{Username: "alpha", TeamID: primitive.NewObjectID()}
	})

	Describe("team tokens", func() {
		Specify("happy path", func() {
			token, err := j.NewTeamToken(cred)
			Expect(err).To(BeNil())

			c, err := j.ValidateTeamToken(token)
			Expect(err).To(BeNil())
			Expect(c.Username).To(Equal("alpha"))
			Expect(c.Issuer).To(Equal(jwt.Issuer))

			id, err := c.Identity()
			Expect(err).To(BeNil())
			Expect(id.TeamID).To(Equal(cred.TeamID))
		})

		Specify("sad path - expired", func() {
			token, err := jwt.NewJWT(key, organizerKey, -time.Minute).NewTeamToken(cred)
			Expect(err).To(BeNil())

			_, err = j.ValidateTeamToken(token)
			Expect(err).To(Equal(jwt.ErrExpired))
			Expect(jwt.TokenError(err)).To(Equal(errs.ErrTokenExpired))
		})

		Specify("sad path - signed with another key", func() {
			token, err := jwt.NewJWT([]byte("other"), organizerKey, time.Hour).NewTeamToken(cred)
			Expect(err).To(BeNil())

			_, err = j.ValidateTeamToken(token)
			Expect(err).NotTo(BeNil())
			Expect(jwt.TokenError(err)).To(Equal(errs.ErrJWT))
		})
	})

	Describe("organizer tokens", func() {
		Specify("happy path", func() {
			token, err := jwt.NewOrganizerToken(time.Now().Add(time.Hour), organizerKey)
			Expect(err).To(BeNil())

			c, err := j.ValidateOrganizerToken(token)
			Expect(err).To(BeNil())
			Expect(c.IsOrganizer).To(BeTrue())
		})

		Specify("sad path - team token is not an organizer token", func() {
			token, err := j.NewTeamToken(cred)
			Expect(err).To(BeNil())

			_, err = j.ValidateOrganizerToken(token)
			Expect(err).NotTo(BeNil())
		})
	})

	Describe("auth funcs", func() {
		Specify("team token is put into the context", func() {
			token, err := j.NewTeamToken(cred)
			Expect(err).To(BeNil())

			ctx, err := j.TeamAuthFunc()(incoming(token))
			Expect(err).To(BeNil())

			c, ok := jwt.GetClaimsFromCtx(ctx)
			Expect(ok).To(BeTrue())
			Expect(c.TeamID).To(Equal(cred.TeamID.Hex()))
		})

		Specify("sad path - no metadata", func() {
			_, err := j.TeamAuthFunc()(context.Background())
			Expect(err).To(Equal(errs.ErrUnauthorized))
		})

		Specify("sad path - team token on organizer service", func() {
			token, err := j.NewTeamToken(cred)
			Expect(err).To(BeNil())

			_, err = j.OrganizerAuthFunc()(incoming(token))
			Expect(err).To(Equal(errs.ErrJWT))
		})
	})
})
