package http

import (
	"net/http"
	"strings"

	"motor-rental-api/internal/core/domain"
	"motor-rental-api/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const authPayloadKey = "authorization_payload"

type errorResponse struct {
	Error string `json:"error"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// AuthMiddleware verifies the bearer token and stores the caller's
// payload for the handlers.
func AuthMiddleware(tokenService ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set(authPayloadKey, payload)
		c.Next()
	}
}

func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok
}
