package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles token endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// IssueToken godoc
// @Summary Issue a development token
// @Description Issue a signed bearer token for the given username. Only registered outside production.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token subject"
// @Success 200 {object} TokenResponse "Issued token"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.GenerateJWT(req.Username, req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, token)
}

// Validate godoc
// @Summary Validate JWT token
// @Description Validate the bearer token and return its claims
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Authentication required or token invalid"
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
