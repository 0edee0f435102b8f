package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"hackportal-backend/auth"
	"hackportal-backend/errs"
	"hackportal-backend/jwt"
	"hackportal-backend/log"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	identityKey  = "identity"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Logger writes one access log line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("requestID", c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			log.Logger.Error("request failed", fields...)
			return
		}
		log.Logger.Debug("request", fields...)
	}
}

func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Logger.Error("panic while serving request",
			zap.Any("panic", recovered),
			zap.String("requestID", c.GetString(requestIDKey)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  false,
			"message": "internal error",
		})
	})
}

func bearer(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// TeamAuth requires a team token and stores the caller's identity.
func TeamAuth(tokens *jwt.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c)
		if !ok {
			fail(c, errs.ErrUnauthorized)
			return
		}

		claims, err := tokens.ValidateTeamToken(token)
		if err != nil {
			fail(c, jwt.TokenError(err))
			return
		}

		id, err := claims.Identity()
		if err != nil {
			fail(c, err)
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

func OrganizerAuth(tokens *jwt.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearer(c)
		if !ok {
			fail(c, errs.ErrUnauthorized)
			return
		}

		if _, err := tokens.ValidateOrganizerToken(token); err != nil {
			fail(c, jwt.TokenError(err))
			return
		}
		c.Next()
	}
}

func identity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
