package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"hackportal-backend/cache"
	"hackportal-backend/errs"
	"hackportal-backend/httpapi"
	"hackportal-backend/jwt"
	"hackportal-backend/portal"
	"hackportal-backend/store"
	"hackportal-backend/submission"
)

var organizerKey = []byte("organizer-key")

type switchGate struct {
	open atomic.Bool
}

func (g *switchGate) IsOpen() bool { return g.open.Load() }

type response struct {
	Code int
	Body map[string]interface{}
	Raw  []byte
}

func do(r *gin.Engine, method, path, token string, body interface{}) response {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			Expect(json.NewEncoder(&buf).Encode(b)).To(Succeed())
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	res := response{Code: w.Code, Raw: w.Body.Bytes()}
	_ = json.Unmarshal(w.Body.Bytes(), &res.Body)
	return res
}

func teamBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"team_name":         name,
		"team_size":         1,
		"idea_title":        name + " idea",
		"idea_document_url": "https://docs.example.com/" + name,
		"participants": []map[string]interface{}{{
			"name":                    name + " lead",
			"email":                   "lead@example.com",
			"age":                     20,
			"phone":                   "1234567890",
			"student_or_professional": "student",
			"college_or_company_name": "IIIT",
			"github_profile":          "https://github.com/lead",
		}},
	}
}

var _ = Describe("Router", func() {
	var (
		r         *gin.Engine
		gate      *switchGate
		organizer string
	)

	register := func(name string) string {
		res := do(r, http.MethodPost, "/api/organizer/teams", organizer, map[string]interface{}{
			"team":     teamBody(name),
			"username": name,
			"password": name + "-secret",
		})
		Expect(res.Code).To(Equal(http.StatusCreated), string(res.Raw))

		login := do(r, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": name,
			"password": name + "-secret",
		})
		Expect(login.Code).To(Equal(http.StatusOK))
		Expect(login.Body["status"]).To(BeTrue())
		return login.Body["token"].(string)
	}

	teamID := func(token string) string {
		res := do(r, http.MethodGet, "/api/teamDetails", token, nil)
		Expect(res.Code).To(Equal(http.StatusOK))
		return res.Body["team"].(map[string]interface{})["_id"].(string)
	}

	BeforeEach(func() {
		gate = &switchGate{}
		gate.open.Store(true)

		s := store.NewMemory()
		subs := submission.NewService(s.Submissions, gate, nil)
		tokens := jwt.NewJWT([]byte("team-key"), organizerKey, time.Hour)
		svc := portal.NewService(s, subs, tokens, cache.NewMemory(time.Minute), nil)
		r = httpapi.NewRouter(svc)

		var err error
		organizer, err = jwt.NewOrganizerToken(time.Now().Add(time.Hour), organizerKey)
		Expect(err).To(BeNil())
	})

	Describe("login", func() {
		Specify("sad path - wrong password", func() {
			register("Alpha")
			res := do(r, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "Alpha", "password": "x"})
			Expect(res.Code).To(Equal(http.StatusUnauthorized))
			Expect(res.Body["status"]).To(BeFalse())
			Expect(res.Body["message"]).To(Equal(errs.ErrInvalidCredentials.Error()))
		})

		Specify("sad path - malformed body", func() {
			res := do(r, http.MethodPost, "/api/auth/login", "", "{")
			Expect(res.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("submission", func() {
		var token string

		BeforeEach(func() {
			token = register("Alpha")
		})

		Specify("happy path", func() {
			res := do(r, http.MethodPost, "/api/submission", token, `{"submission":[{"ppt":"https://x"},{"figma":"https://f"}]}`)
			Expect(res.Code).To(Equal(http.StatusOK), string(res.Raw))
			Expect(res.Body["submission"]).To(HaveKeyWithValue("submission_document_url", []interface{}{
				map[string]interface{}{"ppt": "https://x"},
				map[string]interface{}{"figma": "https://f"},
			}))
		})

		Specify("replaces instead of merging", func() {
			Expect(do(r, http.MethodPost, "/api/submission", token, `{"submission":[{"ppt":"https://x"}]}`).Code).To(Equal(http.StatusOK))
			Expect(do(r, http.MethodPost, "/api/submission", token, `{"submission":[{"repo":"https://y"}]}`).Code).To(Equal(http.StatusOK))

			res := do(r, http.MethodGet, "/api/teamDetails", token, nil)
			Expect(res.Body["submission"]).To(HaveKeyWithValue("submission_document_url", []interface{}{
				map[string]interface{}{"repo": "https://y"},
			}))
			Expect(res.Body["links"]).To(Equal(map[string]interface{}{"repository": "https://y"}))
		})

		Specify("sad path - two keys in one entry", func() {
			res := do(r, http.MethodPost, "/api/submission", token, `{"submission":[{"ppt":"https://x","repo":"https://y"}]}`)
			Expect(res.Code).To(Equal(http.StatusBadRequest))
			Expect(res.Body["message"]).To(ContainSubstring(errs.ErrValidation.Error()))

			details := do(r, http.MethodGet, "/api/teamDetails", token, nil)
			Expect(details.Body).NotTo(HaveKey("submission"))
		})

		Specify("sad path - ftp url", func() {
			res := do(r, http.MethodPost, "/api/submission", token, `{"submission":[{"ppt":"ftp://x"}]}`)
			Expect(res.Code).To(Equal(http.StatusBadRequest))
		})

		Specify("sad path - empty list", func() {
			res := do(r, http.MethodPost, "/api/submission", token, `{"submission":[]}`)
			Expect(res.Code).To(Equal(http.StatusBadRequest))
		})

		Specify("sad path - window closed", func() {
			gate.open.Store(false)

			res := do(r, http.MethodPost, "/api/submission", token, `{"submission":[{"ppt":"https://x"}]}`)
			Expect(res.Code).To(Equal(http.StatusForbidden))
			Expect(res.Body["window_closed"]).To(BeTrue())

			details := do(r, http.MethodGet, "/api/teamDetails", token, nil)
			Expect(details.Code).To(Equal(http.StatusOK))
			Expect(details.Body["window_open"]).To(BeFalse())
		})

		Specify("sad path - window closed wins over a malformed entry", func() {
			Expect(do(r, http.MethodPost, "/api/submission", token, `{"submission":[{"ppt":"https://x"}]}`).Code).To(Equal(http.StatusOK))
			gate.open.Store(false)

			for _, body := range []string{
				`{"submission":[{"ppt":"https://x","repo":"https://y"}]}`,
				`{"submission":[{}]}`,
				`{"submission":[{"ppt":42}]}`,
				`{"submission":[{"ppt":"ftp://x"}]}`,
				`{`,
			} {
				res := do(r, http.MethodPost, "/api/submission", token, body)
				Expect(res.Code).To(Equal(http.StatusForbidden), body)
				Expect(res.Body["window_closed"]).To(BeTrue(), body)
				Expect(res.Body["message"]).To(Equal(errs.ErrWindowClosed.Error()))
			}

			details := do(r, http.MethodGet, "/api/teamDetails", token, nil)
			Expect(details.Body["submission"]).To(HaveKeyWithValue("submission_document_url", []interface{}{
				map[string]interface{}{"ppt": "https://x"},
			}))
		})

		Specify("sad path - no token", func() {
			res := do(r, http.MethodPost, "/api/submission", "", `{"submission":[{"ppt":"https://x"}]}`)
			Expect(res.Code).To(Equal(http.StatusUnauthorized))
		})

		Specify("sad path - garbage token", func() {
			res := do(r, http.MethodGet, "/api/teamDetails", "garbage", nil)
			Expect(res.Code).To(Equal(http.StatusUnauthorized))
			Expect(res.Body["message"]).To(Equal(errs.ErrJWT.Error()))
		})
	})

	Describe("public listing", func() {
		Specify("only teams with a submission", func() {
			alpha := register("Alpha")
			register("Beta")
			gamma := register("Gamma")

			Expect(do(r, http.MethodPost, "/api/submission", alpha, `{"submission":[{"ppt":"https://a"}]}`).Code).To(Equal(http.StatusOK))
			Expect(do(r, http.MethodPost, "/api/submission", gamma, `{"submission":[{"repo":"https://g"}]}`).Code).To(Equal(http.StatusOK))

			res := do(r, http.MethodPut, "/api/organizer/teams/"+teamID(gamma)+"/classification", organizer, map[string]string{"classification": "finalist"})
			Expect(res.Code).To(Equal(http.StatusOK), string(res.Raw))

			list := do(r, http.MethodGet, "/api/submissions", "", nil)
			Expect(list.Code).To(Equal(http.StatusOK))

			var names []string
			for _, v := range list.Body["submissions"].([]interface{}) {
				entry := v.(map[string]interface{})
				names = append(names, entry["team_name"].(string))
				Expect(entry["participants"].([]interface{})[0]).NotTo(HaveKey("email"))
			}
			Expect(names).To(ConsistOf("Alpha", "Gamma"))

			rankings := do(r, http.MethodGet, "/api/rankings", "", nil)
			Expect(rankings.Code).To(Equal(http.StatusOK))
			Expect(rankings.Body["winners"]).To(BeEmpty())
			Expect(rankings.Body["finalists"]).To(HaveLen(1))
			Expect(rankings.Body["finalists"].([]interface{})[0]).To(HaveKeyWithValue("team_name", "Gamma"))
			Expect(rankings.Body["others"].([]interface{})[0]).To(HaveKeyWithValue("team_name", "Alpha"))
		})
	})

	Describe("organizer", func() {
		Specify("sad path - team token", func() {
			token := register("Alpha")
			res := do(r, http.MethodPost, "/api/organizer/teams", token, map[string]interface{}{"team": teamBody("Beta")})
			Expect(res.Code).To(Equal(http.StatusUnauthorized))
		})

		Specify("sad path - duplicate team", func() {
			register("Alpha")
			res := do(r, http.MethodPost, "/api/organizer/teams", organizer, map[string]interface{}{
				"team":     teamBody("Alpha"),
				"username": "other",
				"password": "secret",
			})
			Expect(res.Code).To(Equal(http.StatusConflict))
		})

		Specify("team status", func() {
			id := teamID(register("Alpha"))
			res := do(r, http.MethodPut, "/api/organizer/teams/"+id+"/status", organizer, map[string]string{"status": "approved"})
			Expect(res.Code).To(Equal(http.StatusOK))
			Expect(res.Body["team"]).To(HaveKeyWithValue("status", "approved"))
		})

		Specify("sad path - bad id", func() {
			res := do(r, http.MethodPut, "/api/organizer/teams/nope/status", organizer, map[string]string{"status": "approved"})
			Expect(res.Code).To(Equal(http.StatusBadRequest))
		})

		Specify("sad path - abstract without submission", func() {
			id := teamID(register("Alpha"))
			res := do(r, http.MethodPut, "/api/organizer/teams/"+id+"/abstract", organizer, map[string]string{"abstract": "x"})
			Expect(res.Code).To(Equal(http.StatusNotFound))
		})
	})

	Specify("request id is echoed", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/submissions", nil)
		req.Header.Set(httpapi.RequestIDHeader, "abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		Expect(w.Header().Get(httpapi.RequestIDHeader)).To(Equal("abc"))
	})
})

var _ = Describe("Status", func() {
	Specify("taxonomy", func() {
		Expect(httpapi.Status(errs.Invalid("x", "bad"))).To(Equal(http.StatusBadRequest))
		Expect(httpapi.Status(errs.ErrTokenExpired)).To(Equal(http.StatusUnauthorized))
		Expect(httpapi.Status(errs.ErrWindowClosed)).To(Equal(http.StatusForbidden))
		Expect(httpapi.Status(errs.ErrTeamNameTaken)).To(Equal(http.StatusConflict))
		Expect(httpapi.Status(errs.ErrDatabase)).To(Equal(http.StatusInternalServerError))
	})
})
