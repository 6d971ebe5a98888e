package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/httputil"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/auth"
)

type AuthHandler struct {
	authSvc AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Token godoc
//
//	@Summary		Issue an access token
//	@Description	Authenticate the operator and return a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.TokenRequest	true	"Operator credentials"
//	@Success		200		{object}	response.TokenResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse	"Invalid credentials"
//	@Failure		404		{object}	httputil.ErrorResponse	"Authentication disabled"
//	@Router			/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req request.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
	})
}
