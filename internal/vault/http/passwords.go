package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/passkeep/pkg/cryptox"
	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/slogx"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
)

// HandleGeneratePassword godoc
//
//	@Summary		Generate a password
//	@Description	Returns a random password of letters, digits and punctuation. Does not require authentication.
//	@Tags			Passwords
//	@Produce		json
//	@Param			length	query		int									false	"Length between 7 and 30"	default(12)
//	@Success		200		{object}	vaultsdk.GeneratePasswordResponse	"generated_password"
//	@Failure		400		{object}	vaultsdk.ErrorResponse				"Length out of range"
//	@Header			200		{string}	Cache-Control						"no-store"
//	@Router			/v1/passwords/generate [get].
func HandleGeneratePassword(w http.ResponseWriter, r *http.Request) {
	length := cryptox.DefaultPasswordLength
	if raw := r.URL.Query().Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < cryptox.MinPasswordLength || n > cryptox.MaxPasswordLength {
			httpx.WriteError(w, http.StatusBadRequest, vaultsdk.ErrorCodeInvalidRequest,
				fmt.Sprintf("length must be between %d and %d", cryptox.MinPasswordLength, cryptox.MaxPasswordLength))
			return
		}
		length = n
	}

	password, err := cryptox.GeneratePassword(length)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to generate password", "error", err)
		vaultsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, vaultsdk.GeneratePasswordResponse{GeneratedPassword: password})
}
