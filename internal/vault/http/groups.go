package http

import (
	"net/http"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
)

type GroupsHandler struct {
	VaultService *service.VaultService
}

func toGroupResponse(g domain.Group) vaultsdk.GroupResponse {
	return vaultsdk.GroupResponse{ID: g.ID, Name: g.Name, Description: g.Description}
}

// HandleCreate godoc
//
//	@Summary		Create a group
//	@Description	Creates a credential group. Name and description are stored lower-cased; names are unique per account.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.CreateGroupRequest	true	"Group"
//	@Success		201		{object}	vaultsdk.CreatedResponse	"id, message"
//	@Failure		400		{object}	vaultsdk.ErrorResponse		"Validation failed"
//	@Failure		401		{object}	vaultsdk.ErrorResponse		"Missing or invalid token"
//	@Failure		409		{object}	vaultsdk.ErrorResponse		"Group name exists"
//	@Security		BearerAuth
//	@Router			/v1/groups [post].
func (h *GroupsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req vaultsdk.CreateGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	g, err := h.VaultService.CreateGroup(ctx, id, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err, "create group")
		return
	}

	log.Info("group created", "group_id", g.ID)
	httpx.WriteJSON(w, http.StatusCreated, vaultsdk.CreatedResponse{
		ID:      g.ID,
		Message: "group " + g.Name + " created",
	})
}

// HandleList godoc
//
//	@Summary		List groups
//	@Tags			Groups
//	@Produce		json
//	@Success		200	{object}	vaultsdk.ListGroupsResponse
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/groups [get].
func (h *GroupsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	groups, err := h.VaultService.ListGroups(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "list groups")
		return
	}

	response := vaultsdk.ListGroupsResponse{
		Groups: make([]vaultsdk.GroupResponse, len(groups)),
	}
	for i, g := range groups {
		response.Groups[i] = toGroupResponse(g)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleListWithCredentials godoc
//
//	@Summary		List groups with their credentials
//	@Description	One row per credential. Groups without credentials are omitted. Secrets are never included.
//	@Tags			Groups
//	@Produce		json
//	@Success		200	{object}	vaultsdk.ListGroupCredentialsResponse
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/groups/credentials [get].
func (h *GroupsHandler) HandleListWithCredentials(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	rows, err := h.VaultService.ListGroupsWithCredentials(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "list group credentials")
		return
	}

	response := vaultsdk.ListGroupCredentialsResponse{
		Items: make([]vaultsdk.GroupCredential, len(rows)),
	}
	for i, row := range rows {
		response.Items[i] = vaultsdk.GroupCredential{
			GroupID:          row.GroupID,
			GroupName:        row.GroupName,
			GroupDescription: row.GroupDescription,
			CredentialID:     row.CredentialID,
			ServiceName:      row.ServiceName,
			Login:            row.Login,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleUpdate godoc
//
//	@Summary		Update a group
//	@Description	Changes name and/or description. At least one field is required.
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Group id"
//	@Param			request	body		vaultsdk.UpdateGroupRequest	true	"Fields to change"
//	@Success		200		{object}	vaultsdk.GroupResponse
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"Not found or not yours"
//	@Failure		409		{object}	vaultsdk.ErrorResponse	"Group name exists"
//	@Security		BearerAuth
//	@Router			/v1/groups/{id} [patch].
func (h *GroupsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	groupID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req vaultsdk.UpdateGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	g, err := h.VaultService.UpdateGroup(r.Context(), id, groupID, domain.GroupPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err, "update group")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toGroupResponse(g))
}

// HandleDelete godoc
//
//	@Summary		Delete a group
//	@Description	Deletes the group and every credential in it.
//	@Tags			Groups
//	@Param			id	path	int	true	"Group id"
//	@Success		204
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404	{object}	vaultsdk.ErrorResponse	"Not found or not yours"
//	@Security		BearerAuth
//	@Router			/v1/groups/{id} [delete].
func (h *GroupsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}
	groupID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.VaultService.DeleteGroup(ctx, id, groupID); err != nil {
		writeServiceError(w, r, err, "delete group")
		return
	}

	log.Info("group deleted", "group_id", groupID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleListCredentials godoc
//
//	@Summary		List credentials in a group
//	@Description	Returns an empty list when the group does not exist or belongs to someone else.
//	@Tags			Groups
//	@Produce		json
//	@Param			id	path		int	true	"Group id"
//	@Success		200	{object}	vaultsdk.ListCredentialsResponse
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/groups/{id}/credentials [get].
func (h *GroupsHandler) HandleListCredentials(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}
	groupID, ok := pathID(w, r)
	if !ok {
		return
	}

	creds, err := h.VaultService.ListCredentialsByGroup(r.Context(), id, groupID)
	if err != nil {
		writeServiceError(w, r, err, "list credentials")
		return
	}

	response := vaultsdk.ListCredentialsResponse{
		Credentials: make([]vaultsdk.CredentialSummary, len(creds)),
	}
	for i, c := range creds {
		response.Credentials[i] = vaultsdk.CredentialSummary{ID: c.ID, ServiceName: c.ServiceName, Login: c.Login}
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}
