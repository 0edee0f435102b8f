package organizer_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"hackportal-backend/internal/organizer"
	"hackportal-backend/jwt"
	"hackportal-backend/log"
)

var _ = Describe("GenerateToken", func() {
	BeforeEach(func() {
		log.Logger = zap.NewNop()
	})

	Specify("happy path", func() {
		now := time.Now()
		token, err := organizer.GenerateToken(now.Add(time.Hour), "organizer-key", now)
		Expect(err).To(BeNil())

		claims, err := jwt.NewJWT([]byte("team-key"), []byte("organizer-key"), time.Hour).ValidateOrganizerToken(token)
		Expect(err).To(BeNil())
		Expect(claims.IsOrganizer).To(BeTrue())
		Expect(claims.Issuer).To(Equal(jwt.Issuer))
	})

	Specify("sad path - wrong key", func() {
		now := time.Now()
		token, err := organizer.GenerateToken(now.Add(time.Hour), "organizer-key", now)
		Expect(err).To(BeNil())

		_, err = jwt.NewJWT([]byte("team-key"), []byte("other-key"), time.Hour).ValidateOrganizerToken(token)
		Expect(err).NotTo(BeNil())
	})

	Specify("sad path - empty key", func() {
		_, err := organizer.GenerateToken(time.Now().Add(time.Hour), "", time.Now())
		Expect(err).To(Equal(organizer.ErrKeyRequired))
	})

	Specify("sad path - already expired", func() {
		now := time.Now()
		_, err := organizer.GenerateToken(now.Add(-time.Minute), "organizer-key", now)
		Expect(err).To(Equal(organizer.ErrExpired))
	})
})
