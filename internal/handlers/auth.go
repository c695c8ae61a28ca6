package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blogcms/api/internal/middleware"
	"blogcms/api/internal/models"
	"blogcms/api/internal/service"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type tokenDetailResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type tokensResponse struct {
	Access  tokenDetailResponse `json:"access"`
	Refresh tokenDetailResponse `json:"refresh"`
}

type userResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

func newUserResponse(user models.User) userResponse {
	return userResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		Status:          string(user.Status),
		IsEmailVerified: user.IsEmailVerified,
	}
}

func newTokensResponse(pair service.TokenPair) tokensResponse {
	return tokensResponse{
		Access:  tokenDetailResponse{Token: pair.Access.Token, Expires: pair.Access.ExpiresAt},
		Refresh: tokenDetailResponse{Token: pair.Refresh.Token, Expires: pair.Refresh.ExpiresAt},
	}
}

func (h HandlerSet) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   newUserResponse(result.User),
		"tokens": newTokensResponse(result.Tokens),
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   newUserResponse(result.User),
		"tokens": newTokensResponse(result.Tokens),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h HandlerSet) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": newTokensResponse(pair)})
}

// refreshTokenFrom resolves the refresh token from body, header or cookie,
// in that priority order.
func refreshTokenFrom(c *gin.Context) string {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&body); err == nil && body.RefreshToken != "" {
		return body.RefreshToken
	}
	if token := c.GetHeader("X-Refresh-Token"); token != "" {
		return token
	}
	if token, err := c.Cookie("refreshToken"); err == nil {
		return token
	}
	return ""
}

func (h HandlerSet) Logout(c *gin.Context) {
	token := refreshTokenFrom(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken required"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Home returns the authenticated user's own profile.
func (h HandlerSet) Home(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}
