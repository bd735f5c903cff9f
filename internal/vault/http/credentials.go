package http

import (
	"net/http"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
)

type CredentialsHandler struct {
	VaultService *service.VaultService
}

// HandleCreate godoc
//
//	@Summary		Create a credential
//	@Description	Stores a login in one of the caller's groups. The password is encrypted before it is persisted.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.CreateCredentialRequest	true	"Credential"
//	@Success		201		{object}	vaultsdk.CreatedResponse			"id, message"
//	@Failure		400		{object}	vaultsdk.ErrorResponse				"Validation failed"
//	@Failure		401		{object}	vaultsdk.ErrorResponse				"Missing or invalid token"
//	@Failure		404		{object}	vaultsdk.ErrorResponse				"Group not found or not yours"
//	@Failure		409		{object}	vaultsdk.ErrorResponse				"Service and login already stored in this group"
//	@Security		BearerAuth
//	@Router			/v1/credentials [post].
func (h *CredentialsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req vaultsdk.CreateCredentialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.VaultService.CreateCredential(ctx, id, req.GroupID, req.ServiceName, req.Login, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "create credential")
		return
	}

	log.Info("credential created", "credential_id", c.ID, "group_id", c.GroupID)
	httpx.WriteJSON(w, http.StatusCreated, vaultsdk.CreatedResponse{
		ID:      c.ID,
		Message: "credential for " + c.ServiceName + " created",
	})
}

// HandleUpdate godoc
//
//	@Summary		Update a credential
//	@Description	Changes service name, login and/or password. At least one field is required.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Credential id"
//	@Param			request	body		vaultsdk.UpdateCredentialRequest	true	"Fields to change"
//	@Success		200		{object}	vaultsdk.CredentialResponse
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"Not found or not yours"
//	@Failure		409		{object}	vaultsdk.ErrorResponse	"Collides with another credential"
//	@Security		BearerAuth
//	@Router			/v1/credentials/{id} [patch].
func (h *CredentialsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	credID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req vaultsdk.UpdateCredentialRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.VaultService.UpdateCredential(r.Context(), id, credID, domain.CredentialPatch{
		ServiceName: req.ServiceName,
		Login:       req.Login,
		Secret:      req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err, "update credential")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.CredentialResponse{
		ID:          c.ID,
		GroupID:     c.GroupID,
		ServiceName: c.ServiceName,
		Login:       c.Login,
	})
}

// HandleDelete godoc
//
//	@Summary		Delete a credential
//	@Tags			Credentials
//	@Param			id	path	int	true	"Credential id"
//	@Success		204
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"Not found or not yours"
//	@Security		BearerAuth
//	@Router			/v1/credentials/{id} [delete].
func (h *CredentialsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}
	credID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.VaultService.DeleteCredential(ctx, id, credID); err != nil {
		writeServiceError(w, r, err, "delete credential")
		return
	}

	log.Info("credential deleted", "credential_id", credID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleReveal godoc
//
//	@Summary		Reveal a password
//	@Description	Decrypts and returns the stored password. This is the only endpoint that returns plaintext secrets.
//	@Tags			Credentials
//	@Produce		json
//	@Param			id	path		int	true	"Credential id"
//	@Success		200	{object}	vaultsdk.RevealSecretResponse	"id, password"
//	@Failure		401	{object}	vaultsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		404	{object}	vaultsdk.ErrorResponse			"Not found or not yours"
//	@Failure		500	{object}	vaultsdk.ErrorResponse			"Decryption failed"
//	@Header			200	{string}	Cache-Control					"no-store"
//	@Security		BearerAuth
//	@Router			/v1/credentials/{id}/secret [get].
func (h *CredentialsHandler) HandleReveal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}
	credID, ok := pathID(w, r)
	if !ok {
		return
	}

	secret, err := h.VaultService.RevealSecret(ctx, id, credID)
	if err != nil {
		writeServiceError(w, r, err, "reveal secret")
		return
	}

	log.Info("secret revealed", "credential_id", credID)
	httpx.WriteJSON(w, http.StatusOK, vaultsdk.RevealSecretResponse{ID: credID, Password: secret})
}

// HandleSearch godoc
//
//	@Summary		Search credentials
//	@Description	Case-sensitive substring match on login and/or service name across all of the caller's groups. At least one filter is required.
//	@Tags			Credentials
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.SearchRequest	true	"Filters"
//	@Success		200		{object}	vaultsdk.SearchResponse
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"No filter given"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/credentials/search [post].
func (h *CredentialsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req vaultsdk.SearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	matches, err := h.VaultService.Search(r.Context(), id, domain.SearchFilter{
		Login:       req.Login,
		ServiceName: req.ServiceName,
	})
	if err != nil {
		writeServiceError(w, r, err, "search credentials")
		return
	}

	response := vaultsdk.SearchResponse{
		Matches: make([]vaultsdk.SearchMatch, len(matches)),
	}
	for i, m := range matches {
		response.Matches[i] = vaultsdk.SearchMatch{
			GroupName:   m.GroupName,
			ID:          m.CredentialID,
			ServiceName: m.ServiceName,
			Login:       m.Login,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}
