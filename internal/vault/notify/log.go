package notify

import (
	"context"

	"github.com/aussiebroadwan/passkeep/pkg/slogx"
)

// LogNotifier records that a notice was issued and drops it. The token is
// never written to the log.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

func (LogNotifier) PasswordReset(ctx context.Context, n PasswordResetNotice) error {
	slogx.FromContext(ctx).Info("password reset requested",
		"account_id", n.AccountID,
		"email", MaskEmail(n.Email),
		"expires_at", n.ExpiresAt,
	)
	return nil
}
