package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "mechmobile/internal/handler/dto/request"
	resdto "mechmobile/internal/handler/dto/response"
	"mechmobile/internal/pkg/config"
	"mechmobile/internal/pkg/cookie"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase   usecase.AuthUseCase
	cookieCfg     config.CookieConfig
	tokenDuration time.Duration
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookieCfg config.CookieConfig, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		cookieCfg:     cookieCfg,
		tokenDuration: tokenDuration,
	}
}

// @Summary Portal login
// @Description Login with email and password, sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.Token, h.tokenDuration)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Portal logout
// @Description Clear the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
