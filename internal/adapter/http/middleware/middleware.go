package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"payment-gateway-core/internal/core/domain"
	"payment-gateway-core/internal/core/ports"
	"payment-gateway-core/pkg/apperror"
	"payment-gateway-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Context keys
	CtxTeamID   = "team_id"
	CtxTeamSlug = "team_slug"
	CtxTeamKey  = "team"

	// failedAuthLockThreshold and lockDuration implement the team-lockout
	// policy of spec.md §4.4: five failures within policy locks the team
	// for 30 minutes.
	failedAuthLockThreshold = 5
	lockDuration            = 30 * time.Minute
)

// nonScalarKeys are always excluded from the canonical-hash parameter set,
// regardless of their JSON type, per spec.md §4.4 step 2.
var nonScalarKeys = map[string]bool{
	"Token":   true,
	"Receipt": true,
}

// TokenAuth creates a middleware implementing the canonical-hash request
// authentication scheme (spec.md §4.4): read the JSON body, filter it down
// to top-level scalar parameters, recompute the expected token against the
// team's decrypted API secret, and compare in constant time. A mismatch
// increments the team's failed-auth counter; enough failures locks the
// team out for a fixed window.
func TokenAuth(
	teamRepo ports.TeamRepository,
	encSvc ports.EncryptionService,
	authenticator ports.TokenAuthenticator,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, apperror.Validation("cannot read request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var raw map[string]interface{}
		if err := json.Unmarshal(bodyBytes, &raw); err != nil {
			response.Error(c, apperror.Validation("malformed JSON body"))
			c.Abort()
			return
		}

		params := make(map[string]string, len(raw))
		var suppliedToken, teamSlug string
		for k, v := range raw {
			if k == "Token" {
				if s, ok := v.(string); ok {
					suppliedToken = s
				}
				continue
			}
			if nonScalarKeys[k] {
				continue
			}
			s, ok := scalarString(v)
			if !ok {
				continue
			}
			if k == "TeamSlug" {
				teamSlug = s
			}
			params[k] = s
		}

		if teamSlug == "" || suppliedToken == "" {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		team, err := teamRepo.GetBySlug(c.Request.Context(), teamSlug)
		if err != nil {
			log.Error().Err(err).Msg("failed to fetch team")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}
		if team == nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		if team.IsLocked(time.Now()) {
			auditAuthEvent(c.Request.Context(), auditSvc, team, domain.AuditActionTeamLockout, c.ClientIP(), nil, log)
			response.Error(c, apperror.ErrTeamLocked())
			c.Abort()
			return
		}
		if !team.IsActive() {
			response.Error(c, apperror.ErrTeamSuspended())
			c.Abort()
			return
		}

		secret, err := encSvc.Decrypt(team.APISecretEncrypted)
		if err != nil {
			log.Error().Err(err).Msg("failed to decrypt team API secret")
			response.Error(c, apperror.InternalError(err))
			c.Abort()
			return
		}

		if !authenticator.Verify(params, secret, suppliedToken) {
			recordAuthFailure(c.Request.Context(), teamRepo, team, log)
			auditAuthEvent(c.Request.Context(), auditSvc, team, domain.AuditActionAuthFailure, c.ClientIP(), nil, log)
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		if team.FailedAuthCount > 0 {
			if err := teamRepo.ResetFailedAuth(c.Request.Context(), team.ID); err != nil {
				log.Warn().Err(err).Msg("failed to reset team failed-auth counter")
			}
		}

		c.Set(CtxTeamID, team.ID)
		c.Set(CtxTeamSlug, team.TeamSlug)
		c.Set(CtxTeamKey, team)

		c.Next()
	}
}

// recordAuthFailure increments the team's failure counter and, once the
// threshold is crossed, stamps a lockout deadline.
func recordAuthFailure(ctx context.Context, teamRepo ports.TeamRepository, team *domain.Team, log zerolog.Logger) {
	var lockedUntil *int64
	if team.FailedAuthCount+1 >= failedAuthLockThreshold {
		until := time.Now().Add(lockDuration).Unix()
		lockedUntil = &until
	}
	if err := teamRepo.IncrementFailedAuth(ctx, team.ID, lockedUntil); err != nil {
		log.Warn().Err(err).Str("team_id", team.ID.String()).Msg("failed to record auth failure")
	}
}

// scalarString coerces a decoded JSON value into its canonical string form
// per spec.md §4.4's coercion rules, reporting false for non-scalar values.
func scalarString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// JWTAuth creates a middleware that validates dashboard session JWTs.
func JWTAuth(sessionSvc ports.SessionTokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}

		tokenStr := authHeader[7:]
		claims, err := sessionSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrInvalidSession())
			c.Abort()
			return
		}

		c.Set(CtxTeamID, claims.TeamID)
		c.Set(CtxTeamSlug, claims.TeamSlug)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
