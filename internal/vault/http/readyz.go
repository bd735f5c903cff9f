package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/service"
	"github.com/aussiebroadwan/passkeep/internal/vault/store"
	"github.com/aussiebroadwan/passkeep/pkg/httpx"
	"github.com/aussiebroadwan/passkeep/pkg/vaultsdk"
)

const cipherProbe = "readyz"

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database connection and that the cipher can seal and open a value.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	vaultsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	vaultsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	cipher service.Cipher,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &vaultsdk.HealthChecks{
			Database: "ok",
			Cipher:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if reason := probeCipher(cipher); reason != "" {
			checks.Cipher = "error: " + reason
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, vaultsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// probeCipher returns a short reason when the cipher cannot round trip.
// Underlying errors are not echoed since they may describe the key.
func probeCipher(c service.Cipher) string {
	if c == nil {
		return "no key loaded"
	}
	sealed, err := c.Encrypt(cipherProbe)
	if err != nil {
		return "encrypt failed"
	}
	opened, err := c.Decrypt(sealed)
	if err != nil || opened != cipherProbe {
		return "decrypt failed"
	}
	return ""
}
