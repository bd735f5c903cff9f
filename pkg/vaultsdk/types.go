package vaultsdk

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// CreatedResponse is returned by endpoints that create a resource.
type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Accounts
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// AccountResponse is the caller's own account.
type AccountResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Phone        string `json:"phone,omitempty"`
	Active       bool   `json:"is_active"`
	Verified     bool   `json:"is_verified"`
	RegisteredAt string `json:"registered_at"` // RFC 3339
}

// ProfileResponse is what other accounts can see.
type ProfileResponse struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	RegisteredAt string `json:"registered_at"`
}

// UpdateProfileRequest changes the set fields. An empty phone clears it.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// TokenResponse is returned from POST /v1/auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// PasswordResetRequest names the account by email or username.
type PasswordResetRequest struct {
	Identifier string `json:"identifier"`
}

// PasswordResetResponse carries the masked address the link was sent to.
type PasswordResetResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ============================================================================
// Groups
// ============================================================================

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type GroupResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListGroupsResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// GroupCredential is one row of the groups-with-credentials listing.
type GroupCredential struct {
	GroupID          int64  `json:"group_id"`
	GroupName        string `json:"group_name"`
	GroupDescription string `json:"group_description"`
	CredentialID     int64  `json:"credential_id"`
	ServiceName      string `json:"service_name"`
	Login            string `json:"login"`
}

type ListGroupCredentialsResponse struct {
	Items []GroupCredential `json:"items"`
}

// ============================================================================
// Credentials
// ============================================================================

type CreateCredentialRequest struct {
	GroupID     int64  `json:"group_id"`
	ServiceName string `json:"service_name"`
	Login       string `json:"login"`
	Password    string `json:"password"`
}

type UpdateCredentialRequest struct {
	ServiceName *string `json:"service_name,omitempty"`
	Login       *string `json:"login,omitempty"`
	Password    *string `json:"password,omitempty"`
}

// CredentialResponse never carries the secret.
type CredentialResponse struct {
	ID          int64  `json:"id"`
	GroupID     int64  `json:"group_id"`
	ServiceName string `json:"service_name"`
	Login       string `json:"login"`
}

type CredentialSummary struct {
	ID          int64  `json:"id"`
	ServiceName string `json:"service_name"`
	Login       string `json:"login"`
}

type ListCredentialsResponse struct {
	Credentials []CredentialSummary `json:"credentials"`
}

// RevealSecretResponse is the only response that carries a plaintext secret.
type RevealSecretResponse struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// SearchRequest needs at least one of its fields. Matching is a
// case-sensitive substring match.
type SearchRequest struct {
	Login       string `json:"login,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}

type SearchMatch struct {
	GroupName   string `json:"group_name"`
	ID          int64  `json:"id"`
	ServiceName string `json:"service_name"`
	Login       string `json:"login"`
}

type SearchResponse struct {
	Matches []SearchMatch `json:"matches"`
}

type GeneratePasswordResponse struct {
	GeneratedPassword string `json:"generated_password"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz; only /readyz fills Checks.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Cipher   string `json:"cipher"`
}
