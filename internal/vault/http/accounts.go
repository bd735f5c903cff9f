package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/domain"
	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
)

type AccountsHandler struct {
	AccountService *service.AccountService
}

func toAccountResponse(a domain.Account) vaultsdk.AccountResponse {
	return vaultsdk.AccountResponse{
		ID:           a.ID,
		Email:        a.Email,
		Username:     a.Username,
		Phone:        a.Phone,
		Active:       a.Active,
		Verified:     a.Verified,
		RegisteredAt: a.RegisteredAt.UTC().Format(time.RFC3339),
	}
}

// HandleRegister godoc
//
//	@Summary		Register an account
//	@Description	Creates a new account. Email and username are unique case-insensitively.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	vaultsdk.CreatedResponse	"id, message"
//	@Failure		400		{object}	vaultsdk.ErrorResponse		"Validation failed"
//	@Failure		409		{object}	vaultsdk.ErrorResponse		"Email or username taken"
//	@Failure		429		{object}	vaultsdk.ErrorResponse		"Rate limit exceeded"
//	@Router			/v1/accounts [post].
func (h *AccountsHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req vaultsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.AccountService.Register(ctx, service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err, "register")
		return
	}

	log.Info("account registered", "account_id", account.ID)
	httpx.WriteJSON(w, http.StatusCreated, vaultsdk.CreatedResponse{
		ID:      account.ID,
		Message: "account registered",
	})
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges a username and password for a bearer access token.
//	@Tags			Accounts
//	@Accept			application/x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string					true	"Username"
//	@Param			password	formData	string					true	"Password"
//	@Success		200			{object}	vaultsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400			{object}	vaultsdk.ErrorResponse	"Malformed form"
//	@Failure		401			{object}	vaultsdk.ErrorResponse	"Invalid credentials"
//	@Failure		429			{object}	vaultsdk.ErrorResponse	"Rate limit exceeded"
//	@Header			200			{string}	Cache-Control			"no-store"
//	@Router			/v1/auth/token [post].
func (h *AccountsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ct := r.Header.Get("Content-Type"); ct != "" &&
		!strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
		httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest,
			"content type must be application/x-www-form-urlencoded")
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest, "malformed form body")
		return
	}

	tok, err := h.AccountService.Login(ctx, r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		writeServiceError(w, r, err, "login")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.TokenResponse{
		AccessToken: tok.Token,
		TokenType:   tok.TokenType,
		ExpiresIn:   int(time.Until(tok.ExpiresAt).Seconds()),
	})
}

// HandleMe godoc
//
//	@Summary		Current account
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	vaultsdk.AccountResponse
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/accounts/me [get].
func (h *AccountsHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	account, err := h.AccountService.ResolveCurrentAccount(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "get account")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(account))
}

// HandleUpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Changes the username and/or phone. An empty phone clears it.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	vaultsdk.AccountResponse
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		409		{object}	vaultsdk.ErrorResponse	"Username taken"
//	@Security		BearerAuth
//	@Router			/v1/accounts/me [patch].
func (h *AccountsHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req vaultsdk.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.AccountService.UpdateProfile(r.Context(), id, req.Username, req.Phone)
	if err != nil {
		writeServiceError(w, r, err, "update profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(account))
}

// HandleChangePassword godoc
//
//	@Summary		Change password
//	@Tags			Accounts
//	@Accept			json
//	@Param			request	body	vaultsdk.ChangePasswordRequest	true	"Old and new password"
//	@Success		204
//	@Failure		400	{object}	vaultsdk.ErrorResponse	"Validation failed"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Old password wrong or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/accounts/me/password [post].
func (h *AccountsHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req vaultsdk.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.AccountService.ChangePassword(ctx, id, req.OldPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err, "change password")
		return
	}

	log.Info("password changed")
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete godoc
//
//	@Summary		Delete account
//	@Description	Deletes the account and every group and credential it owns. Requires the current password.
//	@Tags			Accounts
//	@Accept			json
//	@Param			request	body	vaultsdk.DeleteAccountRequest	true	"Current password"
//	@Success		204
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Password wrong or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/accounts/me [delete].
func (h *AccountsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := accountID(w, r)
	if !ok {
		return
	}

	var req vaultsdk.DeleteAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.AccountService.DeleteAccount(ctx, id, req.Password); err != nil {
		writeServiceError(w, r, err, "delete account")
		return
	}

	log.Info("account deleted")
	w.WriteHeader(http.StatusNoContent)
}

// HandleLookup godoc
//
//	@Summary		Look up a profile
//	@Description	Returns the public profile of another account by username.
//	@Tags			Accounts
//	@Produce		json
//	@Param			username	path		string	true	"Username"
//	@Success		200			{object}	vaultsdk.ProfileResponse
//	@Failure		401			{object}	vaultsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		404			{object}	vaultsdk.ErrorResponse	"No such account"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{username} [get].
func (h *AccountsHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	account, err := h.AccountService.Lookup(r.Context(), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err, "lookup account")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.ProfileResponse{
		ID:           account.ID,
		Username:     account.Username,
		RegisteredAt: account.RegisteredAt.UTC().Format(time.RFC3339),
	})
}
