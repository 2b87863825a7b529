package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/config"
	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/internal/middleware"
	"github.com/reusemart/consignment-service/internal/service"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/reusemart/consignment-service/pkg/response"
	"github.com/reusemart/consignment-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service service.AuthService
	config  *config.Config
}

func CreateAuthController(g *echo.Group, service service.AuthService, config *config.Config) {
	ac := AuthController{
		service: service,
		config:  config,
	}
	g.POST("/register", ac.Register)
	g.GET("/verify-email", ac.VerifyEmail)
	g.POST("/login", ac.Login)
	g.POST("/logout", ac.Logout)
	g.GET("/auth/google", ac.GoogleRedirect)
	g.GET("/auth/google/callback", ac.GoogleCallback)
}

func (c *AuthController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
		return response.WriteErrorResponse(e, errs.ErrRequiredFields, "")
	}

	err = c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Failed to register pembeli")
	}

	return response.WriteCreatedResponse(e, "Registration successful. Please check your email to verify.", nil)
}

func (c *AuthController) VerifyEmail(e echo.Context) error {
	err := c.service.VerifyEmail(e.Request().Context(), e.QueryParam("token"))
	if err != nil {
		return response.WriteErrorResponse(e, err, "Failed to verify email")
	}

	return response.WriteSuccessResponse(e, "Email verified successfully. You can now log in.", nil)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrRequiredFields, "")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Failed to log in")
	}

	e.SetCookie(c.sessionCookie(respPayload.Token))

	return response.WriteSuccessResponse(e, "Login berhasil", respPayload)
}

func (c *AuthController) Logout(e echo.Context) error {
	e.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.WriteSuccessResponse(e, "Logout berhasil", dto.LogoutResponse{Success: true})
}

func (c *AuthController) GoogleRedirect(e echo.Context) error {
	return e.Redirect(http.StatusFound, c.service.GoogleAuthURL())
}

func (c *AuthController) GoogleCallback(e echo.Context) error {
	payload := dto.GoogleCallbackRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "GoogleCallback").Msg("")
	}

	if payload.Error != "" {
		return response.WriteErrorResponse(e, errs.New(errs.KindUnauthorized, "Google sign-in was cancelled: "+payload.Error), "")
	}

	respPayload, err := c.service.GoogleCallback(e.Request().Context(), payload.Code)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Failed to sign in with Google")
	}

	e.SetCookie(c.sessionCookie(respPayload.Token))

	return e.Redirect(http.StatusFound, c.config.AppBaseURL)
}

func (c *AuthController) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.SessionTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
