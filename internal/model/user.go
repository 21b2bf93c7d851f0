package model

// User is the identity record supplied by the mock identity provider.
// The rest of the system only ever treats ID as an opaque key used to
// namespace persisted data.
type User struct {
	ID          string `json:"id"`
	Provider    string `json:"provider"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}
