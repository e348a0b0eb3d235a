package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/clientarea/internal/clientarea/service"
	"github.com/aussiebroadwan/clientarea/pkg/areasdk"
	"github.com/aussiebroadwan/clientarea/pkg/httpx"
	"github.com/aussiebroadwan/clientarea/pkg/qrx"
	"github.com/aussiebroadwan/clientarea/pkg/slogx"
)

// ClientsHandler serves the professional's client management endpoints.
// Every lookup is scoped to the caller.
type ClientsHandler struct {
	ClientService     *service.ClientService
	ActivationService *service.ActivationService
}

// HandleCreate handles POST /api/clients
//
//	@Summary		Create client
//	@Description	Creates a client owned by the caller and assigns its unique code in the same transaction.
//	@Description	Phone numbers are normalised to E.164.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		areasdk.CreateClientRequest	true	"Client details"
//	@Success		201		{object}	areasdk.Client
//	@Failure		400		{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ownerID, ok := professionalID(w, r)
	if !ok {
		return
	}

	var req areasdk.CreateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.ClientService.CreateClient(ctx, ownerID, service.NewClientInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		HasConsent: req.HasConsent,
	})
	if err != nil {
		writeServiceError(w, log, "failed to create client", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKClient(c))
}

// HandleList handles GET /api/clients
//
//	@Summary		List clients
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	areasdk.ClientList
//	@Failure		401	{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	ownerID, ok := professionalID(w, r)
	if !ok {
		return
	}

	clients, err := h.ClientService.ListClients(ctx, ownerID)
	if err != nil {
		writeServiceError(w, log, "failed to list clients", err)
		return
	}

	out := areasdk.ClientList{Clients: make([]areasdk.Client, 0, len(clients))}
	for _, c := range clients {
		out.Clients = append(out.Clients, toSDKClient(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /api/clients/{clientId}
//
//	@Summary		Get client
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			clientId	path		int	true	"Client id"
//	@Success		200			{object}	areasdk.Client
//	@Failure		400			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/clients/{clientId} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.ClientService.GetOwnedClient(ctx, ownerID, clientID)
	if err != nil {
		writeServiceError(w, log, "failed to get client", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKClient(c))
}

// HandleReassign handles PUT /api/clients/{clientId}/owner
//
//	@Summary		Reassign client
//	@Description	Moves a client to another professional. The unique code is regenerated under the new owner,
//	@Description	so activation links issued before the move stop working.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			clientId	path		int								true	"Client id"
//	@Param			request		body		areasdk.ReassignClientRequest	true	"New owner"
//	@Success		200			{object}	areasdk.Client
//	@Failure		400			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/clients/{clientId}/owner [put].
func (h *ClientsHandler) HandleReassign(w http.ResponseWriter, r *http.Request) {
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

	var req areasdk.ReassignClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.ClientService.ReassignClient(ctx, ownerID, clientID, req.OwnerID)
	if err != nil {
		writeServiceError(w, log, "failed to reassign client", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKClient(c))
}

// HandleActivationToken handles GET /api/clients/{clientId}/activation-token
//
//	@Summary		Activation link
//	@Description	Returns the deep link that opens the client area with the client's access token. The link
//	@Description	is meant to be encoded as a QR code and does not expire.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			clientId	path		int	true	"Client id"
//	@Success		200			{object}	areasdk.ActivationToken
//	@Failure		400			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/clients/{clientId}/activation-token [get].
func (h *ClientsHandler) HandleActivationToken(w http.ResponseWriter, r *http.Request) {
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

	link, err := h.ActivationService.Link(ctx, ownerID, clientID)
	if err != nil {
		writeServiceError(w, log, "failed to build activation link", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, areasdk.ActivationToken{
		URL:        link.URL,
		Token:      link.Token,
		ClientID:   link.ClientID,
		ClientName: link.ClientName,
	})
}

// HandleActivationQR handles GET /api/clients/{clientId}/activation-qr.png
//
//	@Summary		Activation QR code
//	@Tags			Clients
//	@Produce		png
//	@Security		BearerAuth
//	@Param			clientId	path		int		true	"Client id"
//	@Param			size		query		int		false	"Image size in pixels (64-1024)"
//	@Success		200			{file}		binary	"PNG image"
//	@Failure		404			{object}	areasdk.ErrorResponse	"error, error_description"
//	@Router			/api/clients/{clientId}/activation-qr.png [get].
func (h *ClientsHandler) HandleActivationQR(w http.ResponseWriter, r *http.Request) {
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

	size := qrx.DefaultSize
	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			areasdk.ErrValidation.WithDescription("size must be an integer").WriteError(w)
			return
		}
		size = n
	}

	png, err := h.ActivationService.QRCode(ctx, ownerID, clientID, size)
	if err != nil {
		writeServiceError(w, log, "failed to render activation qr code", err)
		return
	}
	httpx.WritePNG(w, png)
}
