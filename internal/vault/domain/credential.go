package domain

// Credential is one stored login. Secret holds ciphertext only; the plaintext
// never reaches the store.
type Credential struct {
	ID          int64
	GroupID     int64
	ServiceName string
	Login       string
	Secret      string
}

// CredentialPatch carries an update where nil means "leave as is". The service
// layer receives Secret as plaintext and hands the store ciphertext.
type CredentialPatch struct {
	ServiceName *string
	Login       *string
	Secret      *string
}

func (p CredentialPatch) IsEmpty() bool {
	return p.ServiceName == nil && p.Login == nil && p.Secret == nil
}

// CredentialSummary is a credential without its secret.
type CredentialSummary struct {
	ID          int64
	ServiceName string
	Login       string
}

// GroupCredential is one row of the group/credential join.
type GroupCredential struct {
	GroupID          int64
	GroupName        string
	GroupDescription string
	CredentialID     int64
	ServiceName      string
	Login            string
}

// SearchFilter selects credentials by substring. Empty fields are not
// applied; at least one must be set.
type SearchFilter struct {
	Login       string
	ServiceName string
}

func (f SearchFilter) IsEmpty() bool { return f.Login == "" && f.ServiceName == "" }

// SearchMatch is one search hit.
type SearchMatch struct {
	CredentialID int64
	GroupName    string
	ServiceName  string
	Login        string
}
