package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/domain"
	"github.com/aussiebroadwan/clientarea/internal/clientarea/service"
	"github.com/aussiebroadwan/clientarea/pkg/areasdk"
	"github.com/aussiebroadwan/clientarea/pkg/httpx"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
)

// RegistrationTokenHeader carries the shared secret that allows sign up.
const RegistrationTokenHeader = "X-Registration-Token"

type ProfessionalsHandler struct {
	ProfessionalService *service.ProfessionalService
	SessionService      *service.SessionService
}

// HandleRegister handles POST /api/professionals
//
//	@Summary		Register a professional
//	@Description	Creates a professional account and assigns its PROF_ code. Requires the registration token
//	@Description	configured on the server; the endpoint answers 404 when registration is disabled.
//	@Tags			Professionals
//	@Accept			json
//	@Produce		json
//	@Param			X-Registration-Token	header		string					true	"Registration token"
//	@Param			request					body		areasdk.RegisterRequest	true	"Account details"
//	@Success		201						{object}	areasdk.Professional
//	@Failure		400						{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		403						{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		404						{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		409						{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/professionals [post].
func (h *ProfessionalsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Report a disabled registration before looking at the body.
	if h.ProfessionalService.RegistrationToken == "" {
		areasdk.ErrRegistrationDisabled.WriteError(w)
		return
	}

	var req areasdk.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.ProfessionalService.Register(ctx, r.Header.Get(RegistrationTokenHeader), service.RegisterInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
	})
	if err != nil {
		writeServiceError(w, log, "failed to register professional", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKProfessional(p))
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Professional login
//	@Description	Exchanges a username and password for a bearer session token with the clients:read and
//	@Description	clients:write scopes.
//	@Tags			Professionals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		areasdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	areasdk.LoginResponse
//	@Failure		400		{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	areasdk.ErrorResponse	"error, error_description"
//	@Header			200		{string}	Cache-Control			"no-store"
//	@Router			/api/auth/login [post].
func (h *ProfessionalsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req areasdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		areasdk.ErrValidation.WithDescription("username and password are required").WriteError(w)
		return
	}

	p, err := h.ProfessionalService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, "login failed", err)
		return
	}

	session, err := h.SessionService.Issue(p)
	if err != nil {
		writeServiceError(w, log, "failed to issue session token", err)
		return
	}

	log.Info("professional logged in", "professional_id", p.ID)
	httpx.WriteJSON(w, http.StatusOK, areasdk.LoginResponse{
		AccessToken:  session.AccessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(session.TTL().Seconds()),
		Scope:        strings.Join(session.Scopes, " "),
		Professional: toSDKProfessional(p),
	})
}

func toSDKProfessional(p domain.Professional) areasdk.Professional {
	return areasdk.Professional{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Code:        p.Code,
		CreatedAt:   p.CreatedAt,
	}
}
