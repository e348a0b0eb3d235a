package http

import (
	"net/http"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/service"
	"github.com/aussiebroadwan/clientarea/pkg/areasdk"
	"github.com/aussiebroadwan/clientarea/pkg/httpx"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
)

type ClientAccessHandler struct {
	VerifyService *service.VerifyService
	AccessService *service.AccessService
	ClientService *service.ClientService
}

// HandleVerify handles POST /api/client-access/verify-token
//
//	@Summary		Verify access token
//	@Description	Checks the token from an activation link against the client's current unique code and owner.
//	@Description	A successful verification records one access and returns the client's own details.
//	@Tags			Client access
//	@Accept			json
//	@Produce		json
//	@Param			request	body		areasdk.VerifyTokenRequest	true	"Token and client id from the link"
//	@Success		200		{object}	areasdk.VerifyTokenResponse
//	@Failure		400		{object}	areasdk.ErrorResponse	"validation_error"
//	@Failure		401		{object}	areasdk.ErrorResponse	"token_mismatch"
//	@Failure		404		{object}	areasdk.ErrorResponse	"client_not_found"
//	@Failure		429		{object}	areasdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/api/client-access/verify-token [post].
func (h *ClientAccessHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req areasdk.VerifyTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	// Missing fields are rejected by Verify so they show up in its metrics.
	client, err := h.VerifyService.Verify(ctx, req.Token, req.ClientID, accessMeta(r))
	if err != nil {
		writeServiceError(w, log, "verification failed", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, areasdk.VerifyTokenResponse{Client: toSDKSafeClient(client)})
}

// HandleTrack handles POST /api/client-access/track/{clientId}
//
//	@Summary		Track access
//	@Description	Records an access for a client whose link was already verified by the client area.
//	@Tags			Client access
//	@Produce		json
//	@Param			clientId	path		int	true	"Client id"
//	@Success		201			{object}	areasdk.TrackResponse
//	@Failure		400			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/client-access/track/{clientId} [post].
func (h *ClientAccessHandler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID, ok := pathClientID(w, r)
	if !ok {
		return
	}

	access, err := h.AccessService.Record(ctx, clientID, accessMeta(r))
	if err != nil {
		writeServiceError(w, log, "failed to track access", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, areasdk.TrackResponse{Access: toSDKAccess(access)})
}

// HandleCount handles GET /api/client-access/count/{clientId}
//
//	@Summary		Access count
//	@Tags			Client access
//	@Produce		json
//	@Security		BearerAuth
//	@Param			clientId	path		int	true	"Client id"
//	@Success		200			{object}	areasdk.AccessCount
//	@Failure		404			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/client-access/count/{clientId} [get].
func (h *ClientAccessHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ownerID, ok := professionalID(w, r)
	if !ok {
		return
	}
	clientID, ok := pathClientID(w, r)
	if !ok {
		return
	}

	if _, err := h.ClientService.GetOwnedClient(ctx, ownerID, clientID); err != nil {
		writeServiceError(w, log, "failed to count accesses", err)
		return
	}
	count, err := h.AccessService.CountFor(ctx, clientID)
	if err != nil {
		writeServiceError(w, log, "failed to count accesses", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, areasdk.AccessCount{ClientID: clientID, Count: count})
}

// HandleList handles GET /api/client-access/{clientId}
//
//	@Summary		Access history
//	@Description	Lists a client's accesses, oldest first.
//	@Tags			Client access
//	@Produce		json
//	@Security		BearerAuth
//	@Param			clientId	path		int	true	"Client id"
//	@Success		200			{object}	areasdk.AccessList
//	@Failure		404			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/client-access/{clientId} [get].
func (h *ClientAccessHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ownerID, ok := professionalID(w, r)
	if !ok {
		return
	}
	clientID, ok := pathClientID(w, r)
	if !ok {
		return
	}

	if _, err := h.ClientService.GetOwnedClient(ctx, ownerID, clientID); err != nil {
		writeServiceError(w, log, "failed to list accesses", err)
		return
	}
	accesses, err := h.AccessService.ListFor(ctx, clientID)
	if err != nil {
		writeServiceError(w, log, "failed to list accesses", err)
		return
	}

	out := areasdk.AccessList{ClientID: clientID, Accesses: make([]areasdk.Access, 0, len(accesses))}
	for _, a := range accesses {
		out.Accesses = append(out.Accesses, toSDKAccess(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCounts handles GET /api/client-access/counts
//
//	@Summary		Access counts per client
//	@Description	Every client of the caller with its total, including clients never accessed.
//	@Tags			Client access
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	areasdk.AccessCounts
//	@Router			/api/client-access/counts [get].
func (h *ClientAccessHandler) HandleCounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ownerID, ok := professionalID(w, r)
	if !ok {
		return
	}

	counts, err := h.AccessService.CountsForOwner(ctx, ownerID)
	if err != nil {
		writeServiceError(w, log, "failed to count accesses", err)
		return
	}

	out := areasdk.AccessCounts{Counts: make([]areasdk.ClientAccessCount, 0, len(counts))}
	for _, c := range counts {
		out.Counts = append(out.Counts, areasdk.ClientAccessCount{
			ClientID:  c.ClientID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Count:     c.Count,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
