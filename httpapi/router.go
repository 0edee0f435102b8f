// Package httpapi serves the portal over REST for the web front end.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/portal"
)

type handler struct {
	svc *portal.Service
}

func NewRouter(svc *portal.Service) *gin.Engine {
	h := &handler{svc: svc}
	tokens := svc.Tokens()

	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())

	api := r.Group("/api")
	{
		api.POST("/auth/login", h.login)
		api.GET("/submissions", h.listSubmissions)
		api.GET("/rankings", h.rankings)

		team := api.Group("")
		team.Use(TeamAuth(tokens))
		{
			team.GET("/teamDetails", h.teamDetails)
			team.POST("/submission", h.saveSubmission)
		}

		organizer := api.Group("/organizer")
		organizer.Use(OrganizerAuth(tokens))
		{
			organizer.POST("/teams", h.registerTeam)
			organizer.PUT("/teams/:id/status", h.setTeamStatus)
			organizer.PUT("/teams/:id/classification", h.setClassification)
			organizer.PUT("/teams/:id/abstract", h.setAbstract)
		}
	}
	return r
}

// bind decodes the JSON body. Malformed link entries keep their own reason.
func bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if !errs.IsValidation(err) {
			err = errs.Invalid("body", "malformed JSON: %v", err)
		}
		fail(c, err)
		return false
	}
	return true
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}

	token, _, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Login successful",
		"token":   token,
	})
}

func (h *handler) listSubmissions(c *gin.Context) {
	entries, err := h.svc.PublicSubmissions(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": entries})
}

func (h *handler) rankings(c *gin.Context) {
	s, err := h.svc.Rankings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

func (h *handler) teamDetails(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		fail(c, errs.ErrUnauthorized)
		return
	}

	d, err := h.svc.Dashboard(c.Request.Context(), actor)
	if err != nil {
		fail(c, err)
		return
	}

	body := gin.H{
		"status":      true,
		"message":     "Team details fetched",
		"team":        teamToJSON(d.Team),
		"window_open": d.WindowOpen,
		"links":       d.Links,
	}
	if d.Submission != nil {
		body["submission"] = submissionToJSON(d.Submission)
	}
	c.JSON(http.StatusOK, body)
}

func (h *handler) saveSubmission(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		fail(c, errs.ErrUnauthorized)
		return
	}

	// Link entries are checked while decoding, so a closed window has to be
	// reported first.
	if !h.svc.WindowOpen() {
		fail(c, errs.ErrWindowClosed)
		return
	}

	var req saveSubmissionRequest
	if !bind(c, &req) {
		return
	}

	sub, err := h.svc.SaveSubmission(c.Request.Context(), actor, req.Submission)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     true,
		"message":    "Submission saved",
		"submission": submissionToJSON(sub),
	})
}

func (h *handler) registerTeam(c *gin.Context) {
	var req registerTeamRequest
	if !bind(c, &req) {
		return
	}

	t, err := h.svc.RegisterTeam(c.Request.Context(), req.Team.entity(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "Team registered",
		"team":    teamToJSON(*t),
	})
}

func (h *handler) setTeamStatus(c *gin.Context) {
	id, err := entity.ParseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req statusRequest
	if !bind(c, &req) {
		return
	}

	t, err := h.svc.SetTeamStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Team status updated", "team": teamToJSON(*t)})
}

func (h *handler) setClassification(c *gin.Context) {
	id, err := entity.ParseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req classificationRequest
	if !bind(c, &req) {
		return
	}

	sub, err := h.svc.SetClassification(c.Request.Context(), id, req.Classification)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Classification updated", "submission": submissionToJSON(sub)})
}

func (h *handler) setAbstract(c *gin.Context) {
	id, err := entity.ParseID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	var req abstractRequest
	if !bind(c, &req) {
		return
	}

	sub, err := h.svc.SetAbstract(c.Request.Context(), id, req.Abstract)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Abstract updated", "submission": submissionToJSON(sub)})
}
