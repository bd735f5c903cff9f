// Package notify hands out-of-band messages, such as password reset links,
// to whatever delivers them. Delivery itself happens outside this process.
package notify

import (
	"context"
	"strings"
	"time"
)

// PasswordResetNotice is everything a mailer needs to send a reset link.
type PasswordResetNotice struct {
	AccountID int64     `json:"account_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Notifier interface {
	PasswordReset(ctx context.Context, n PasswordResetNotice) error
}

// MaskEmail keeps the first character of the local part and the whole
// domain: "alice@mail.ru" becomes "a***@mail.ru".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "***"
	}
	return local[:1] + "***@" + domain
}
