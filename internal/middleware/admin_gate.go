package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"consultdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminTokenHeader carries the admin secret. Authorization: Bearer is also accepted.
const AdminTokenHeader = "x-admin-token"

// Gate authorizes privileged calls against the single configured admin secret.
// The secret is fixed at construction.
type Gate struct {
	secret []byte
}

func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Authorize compares in constant time. An empty credential never matches.
func (g *Gate) Authorize(presented string) bool {
	if presented == "" || len(g.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), g.secret) == 1
}

// Credential extracts the presented admin credential from the request.
func Credential(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(AdminTokenHeader)); v != "" {
		return v
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AdminOnly rejects requests without a valid admin credential.
func AdminOnly(g *Gate, log *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		cred := Credential(c)
		if !g.Authorize(cred) {
			reason := "invalid_token"
			if cred == "" {
				reason = "missing_token"
			}
			log.Warn().
				Str("path", c.Request.URL.Path).
				Str("client_ip", c.ClientIP()).
				Str("request_id", requestID(c)).
				Str("reason", reason).
				Msg("admin auth failed")
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Admin credential required")
			return
		}

		c.Next()
	}
}
