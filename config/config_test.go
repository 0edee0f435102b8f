package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"hackportal-backend/config"
)

var _ = Describe("FromMap", func() {
	var environ map[string]string

	BeforeEach(func() {
		environ = map[string]string{
			"JWT_KEY":       "team-secret",
			"ORGANIZER_KEY": "organizer-secret",
		}
	})

	Specify("defaults", func() {
		cfg, err := config.FromMap(environ)
		Expect(err).To(BeNil())
		Expect(cfg.Port).To(Equal("6969"))
		Expect(cfg.HTTPPort).To(Equal("8080"))
		Expect(cfg.Store).To(Equal(config.StoreMongo))
		Expect(cfg.MongoDatabase).To(Equal("iict-hack"))
		Expect(cfg.TokenTTL).To(Equal(24 * time.Hour))
		Expect(cfg.PublicCacheTTL).To(Equal(15 * time.Second))
		Expect(cfg.WindowOpen).To(BeFalse())
		Expect(cfg.Window().StartDate.IsZero()).To(BeTrue())
	})

	Specify("window settings", func() {
		environ["SUBMISSION_WINDOW_OPEN"] = "true"
		environ["SUBMISSION_OPENS_AT"] = "2025-03-01T09:00:00Z"
		environ["SUBMISSION_CLOSES_AT"] = "2025-03-02T09:00:00Z"

		cfg, err := config.FromMap(environ)
		Expect(err).To(BeNil())

		w := cfg.Window()
		Expect(w.Open).To(BeTrue())
		Expect(w.StartDate).To(Equal(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)))
		Expect(w.EndDate).To(Equal(time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)))
	})

	Specify("sad path - missing jwt key", func() {
		delete(environ, "JWT_KEY")
		_, err := config.FromMap(environ)
		Expect(err).To(MatchError(ContainSubstring("JWT_KEY")))
	})

	Specify("sad path - missing organizer key", func() {
		delete(environ, "ORGANIZER_KEY")
		_, err := config.FromMap(environ)
		Expect(err).To(MatchError(ContainSubstring("ORGANIZER_KEY")))
	})

	Specify("sad path - keys must differ", func() {
		environ["ORGANIZER_KEY"] = environ["JWT_KEY"]
		_, err := config.FromMap(environ)
		Expect(err).To(MatchError(ContainSubstring("must differ")))
	})

	Specify("sad path - unknown store", func() {
		environ["STORE"] = "postgres"
		_, err := config.FromMap(environ)
		Expect(err).To(MatchError(ContainSubstring("STORE")))
	})

	Specify("sad path - window closes before it opens", func() {
		environ["SUBMISSION_OPENS_AT"] = "2025-03-02T09:00:00Z"
		environ["SUBMISSION_CLOSES_AT"] = "2025-03-01T09:00:00Z"
		_, err := config.FromMap(environ)
		Expect(err).NotTo(BeNil())
	})

	Specify("sad path - malformed duration", func() {
		environ["TOKEN_TTL"] = "forever"
		_, err := config.FromMap(environ)
		Expect(err).NotTo(BeNil())
	})
})

var _ = Describe("Winners", func() {
	Specify("ordered list", func() {
		w, err := config.ParseWinners([]byte(`winners = ["UBqitous", " we dont know llvm ", "FutureForge"]`))
		Expect(err).To(BeNil())
		Expect(w).To(Equal([]string{"UBqitous", "we dont know llvm", "FutureForge"}))
	})

	Specify("missing file means no winners", func() {
		w, err := config.LoadWinners(filepath.Join(os.TempDir(), "hackportal-does-not-exist.toml"))
		Expect(err).To(BeNil())
		Expect(w).To(BeEmpty())
	})

	Specify("reads a file", func() {
		dir, err := os.MkdirTemp("", "winners")
		Expect(err).To(BeNil())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "winners.toml")
		Expect(os.WriteFile(path, []byte("winners = [\"Alpha\"]\n"), 0o600)).To(Succeed())

		w, err := config.LoadWinners(path)
		Expect(err).To(BeNil())
		Expect(w).To(Equal([]string{"Alpha"}))
	})

	Specify("sad path - blank name", func() {
		_, err := config.ParseWinners([]byte(`winners = ["Alpha", "  "]`))
		Expect(err).To(MatchError(ContainSubstring("blank")))
	})

	Specify("sad path - duplicate name", func() {
		_, err := config.ParseWinners([]byte(`winners = ["Alpha", "Alpha"]`))
		Expect(err).To(MatchError(ContainSubstring("twice")))
	})

	Specify("sad path - not toml", func() {
		_, err := config.ParseWinners([]byte(`winners = [`))
		Expect(err).NotTo(BeNil())
	})
})
