package http

import (
	"net/http"

	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
)

type PasswordResetHandler struct {
	AccountService *service.AccountService
}

// HandleRequest godoc
//
//	@Summary		Request a password reset
//	@Description	Sends a single-use reset token to the account's email. The response carries the masked address.
//	@Tags			Password Reset
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.PasswordResetRequest	true	"Email or username"
//	@Success		202		{object}	vaultsdk.PasswordResetResponse	"message, masked email"
//	@Failure		400		{object}	vaultsdk.ErrorResponse			"Missing identifier"
//	@Failure		403		{object}	vaultsdk.ErrorResponse			"Account inactive"
//	@Failure		404		{object}	vaultsdk.ErrorResponse			"No such account"
//	@Failure		429		{object}	vaultsdk.ErrorResponse			"Rate limit exceeded"
//	@Router			/v1/password-resets [post].
func (h *PasswordResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.PasswordResetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	masked, err := h.AccountService.RequestPasswordReset(r.Context(), req.Identifier)
	if err != nil {
		writeServiceError(w, r, err, "request password reset")
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, vaultsdk.PasswordResetResponse{
		Message: "password reset instructions sent",
		Email:   masked,
	})
}

// HandleReset godoc
//
//	@Summary		Reset password
//	@Description	Sets a new password using a token from a reset link. Each token works once.
//	@Tags			Password Reset
//	@Accept			json
//	@Param			token	path	string							true	"Reset token"
//	@Param			request	body	vaultsdk.ResetPasswordRequest	true	"New password"
//	@Success		204
//	@Failure		400	{object}	vaultsdk.ErrorResponse	"Validation failed"
//	@Failure		401	{object}	vaultsdk.ErrorResponse	"Token invalid, expired or used"
//	@Router			/v1/password-resets/{token} [post].
func (h *PasswordResetHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req vaultsdk.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.AccountService.ResetPassword(r.Context(), r.PathValue("token"), req.NewPassword); err != nil {
		writeServiceError(w, r, err, "reset password")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
