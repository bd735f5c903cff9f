package domain

// Group is a named folder of credentials owned by exactly one account. Name
// and description are stored lower-cased.
type Group struct {
	ID          int64
	AccountID   int64
	Name        string
	Description string
}

// GroupPatch carries an update where nil means "leave as is".
type GroupPatch struct {
	Name        *string
	Description *string
}

func (p GroupPatch) IsEmpty() bool { return p.Name == nil && p.Description == nil }
