package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/reusemart/consignment-service/config"
	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/internal/dto"
	circuitbreaker "github.com/reusemart/consignment-service/internal/infrastructure/circuit-breaker"
	"github.com/reusemart/consignment-service/internal/repository"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/reusemart/consignment-service/pkg/httpclient"
	"github.com/reusemart/consignment-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	GoogleAuthEndpoint     = "https://accounts.google.com/o/oauth2/v2/auth"
	GoogleTokenEndpoint    = "https://oauth2.googleapis.com/token"
	GoogleUserInfoEndpoint = "https://openidconnect.googleapis.com/v1/userinfo"
	GoogleScope            = "openid email profile"
)

// registrationTables is the order in which email collisions are reported.
var registrationTables = []struct {
	table domain.AccountTable
	err   error
}{
	{domain.TablePegawai, errs.ErrEmailInPegawai},
	{domain.TablePembeli, errs.ErrEmailInPembeli},
	{domain.TableOrganisasi, errs.ErrEmailInOrganisasi},
	{domain.TablePenitip, errs.ErrEmailInPenitip},
}

type AuthServiceImpl struct {
	repo      repository.AccountRepository
	config    *config.Config
	mailer    VerificationMailer
	publisher EventPublisher
	breaker   *gobreaker.CircuitBreaker[[]byte]

	tokenURL    string
	userInfoURL string
}

func CreateAuthService(repo repository.AccountRepository, config *config.Config, mailer VerificationMailer, publisher EventPublisher) AuthService {
	return &AuthServiceImpl{
		repo:        repo,
		config:      config,
		mailer:      mailer,
		publisher:   publisher,
		breaker:     circuitbreaker.CreateCircuitBreaker[[]byte]("google-oauth"),
		tokenURL:    GoogleTokenEndpoint,
		userInfoURL: GoogleUserInfoEndpoint,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	email := strings.TrimSpace(req.Email)
	if utils.IsBlank(req.Nama, req.NoTelepon.String(), email, req.Password) {
		return errs.ErrRequiredFields
	}

	if !utils.IsValidEmail(email) {
		return errs.ErrInvalidEmailFormat
	}

	if !utils.IsStrongPassword(req.Password) {
		return errs.ErrWeakPassword
	}

	for _, t := range registrationTables {
		exists, err := s.repo.EmailExists(ctx, t.table, email)
		if err != nil {
			return err
		}
		if exists {
			return t.err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := s.repo.AddPembeli(ctx, domain.Pembeli{
		Nama:           strings.TrimSpace(req.Nama),
		NoTelepon:      req.NoTelepon.String(),
		Email:          email,
		HashedPassword: string(hash),
		PoinLoyalitas:  0,
		IsVerified:     false,
	})
	if err != nil {
		return err
	}

	s.dispatchVerification(ctx, id, email)

	return nil
}

// dispatchVerification never fails registration; errors are only logged.
func (s *AuthServiceImpl) dispatchVerification(ctx context.Context, id int64, email string) {
	token, err := utils.CreateVerificationToken(id, s.config.JWTSecret)
	if err != nil {
		log.Error().Err(err).Str("component", "dispatchVerification").Msg("")
		return
	}

	link := fmt.Sprintf("%s/api/verify-email?%s",
		strings.TrimRight(s.config.AppBaseURL, "/"),
		url.Values{"token": {token}}.Encode(),
	)

	if s.mailer != nil {
		if err := s.mailer.SendVerificationEmail(ctx, email, link); err != nil {
			log.Error().Err(err).Str("component", "dispatchVerification").Int64("id_pembeli", id).Msg("")
		}
	}

	publishEvent(ctx, s.publisher, EventPembeliRegistered, dto.PembeliRegisteredEvent{
		IDPembeli: id,
		Email:     email,
	})
}

func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) (err error) {
	claims, err := utils.ParseJWTToken(token, s.config.JWTSecret)
	if err != nil {
		log.Error().Err(err).Str("component", "VerifyEmail").Msg("")
		return errs.ErrUnauthorized
	}

	if claims.Purpose != utils.PurposeEmailVerification {
		return errs.ErrUnauthorized
	}

	pembeli, err := s.repo.GetPembeliByID(ctx, claims.ID)
	if err != nil {
		return
	}

	if pembeli.ID == 0 {
		return errs.ErrPembeliNotFound
	}

	if pembeli.IsVerified {
		return nil
	}

	return s.repo.VerifyPembeli(ctx, pembeli.ID)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	if utils.IsBlank(req.Email, req.Password) {
		return resp, errs.ErrRequiredFields
	}

	account, err := s.repo.GetAccountByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return
	}

	if account.ID == 0 {
		return resp, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentialsEmail
	}

	if !account.IsVerified {
		return resp, errs.ErrUnverifiedUser
	}

	return s.issueToken(account)
}

func (s *AuthServiceImpl) issueToken(account domain.Account) (resp dto.LoginResponse, err error) {
	token, err := utils.CreateJWTToken(account.ID, account.Role, s.config.JWTSecret)
	if err != nil {
		return
	}

	resp.Token = token
	resp.ID = account.ID
	resp.Role = account.Role

	return resp, nil
}

func (s *AuthServiceImpl) GoogleAuthURL() string {
	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", s.config.GoogleOAuthConfig.ClientID)
	params.Set("redirect_uri", s.config.GoogleOAuthConfig.RedirectURI)
	params.Set("scope", GoogleScope)

	return GoogleAuthEndpoint + "?" + params.Encode()
}

// GoogleCallback exchanges the authorization code, reads the Google account's
// email and signs in the local account that owns it.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (resp dto.LoginResponse, err error) {
	if strings.TrimSpace(code) == "" {
		return resp, errs.Validation("code is required!")
	}

	tokenBody, err := s.callGoogle(ctx, httpclient.HttpRequest{
		URL:    s.tokenURL,
		Method: http.MethodPost,
		Body: []byte(url.Values{
			"code":          {code},
			"client_id":     {s.config.GoogleOAuthConfig.ClientID},
			"client_secret": {s.config.GoogleOAuthConfig.ClientSecret},
			"redirect_uri":  {s.config.GoogleOAuthConfig.RedirectURI},
			"grant_type":    {"authorization_code"},
		}.Encode()),
		Headers: map[string]string{
			"Content-Type": "application/x-www-form-urlencoded",
		},
	})
	if err != nil {
		return
	}

	var googleToken dto.GoogleTokenResponse
	if err = json.Unmarshal(tokenBody, &googleToken); err != nil || googleToken.AccessToken == "" {
		log.Error().Err(err).Str("component", "GoogleCallback").Msg("invalid token response")
		return resp, errs.ErrBadGateway
	}

	userInfoBody, err := s.callGoogle(ctx, httpclient.HttpRequest{
		URL:    s.userInfoURL,
		Method: http.MethodGet,
		Headers: map[string]string{
			"Authorization": "Bearer " + googleToken.AccessToken,
		},
	})
	if err != nil {
		return
	}

	var userInfo dto.GoogleUserInfo
	if err = json.Unmarshal(userInfoBody, &userInfo); err != nil || userInfo.Email == "" {
		log.Error().Err(err).Str("component", "GoogleCallback").Msg("invalid userinfo response")
		return resp, errs.ErrBadGateway
	}

	account, err := s.repo.GetAccountByEmail(ctx, userInfo.Email)
	if err != nil {
		return
	}

	if account.ID == 0 {
		return resp, errs.ErrAccountNotFound
	}

	// Google has already proven ownership of the address.
	if !account.IsVerified && account.Role == domain.RolePembeli && userInfo.EmailVerified {
		if err = s.repo.VerifyPembeli(ctx, account.ID); err != nil {
			return
		}
		account.IsVerified = true
	}

	if !account.IsVerified {
		return resp, errs.ErrUnverifiedUser
	}

	return s.issueToken(account)
}

// callGoogle runs req through the circuit breaker. Transport failures, non-200
// answers and an open breaker all surface as errs.ErrBadGateway.
func (s *AuthServiceImpl) callGoogle(ctx context.Context, req httpclient.HttpRequest) ([]byte, error) {
	body, err := s.breaker.Execute(func() ([]byte, error) {
		statusCode, body, err := httpclient.SendRequest(ctx, req)
		if err != nil {
			return nil, err
		}

		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("google returned non-OK status: %d", statusCode)
		}

		return body, nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "callGoogle").Str("url", req.URL).Msg("")
		return nil, errs.ErrBadGateway
	}

	return body, nil
}
