package models

// GoogleProfile is the validated shape of a federated identity fetched from
// Google's userinfo endpoint. It is constructed at the adapter boundary so
// that the service layer never deals with untyped provider payloads.
type GoogleProfile struct {
	// ID is the stable Google account identifier.
	ID string `json:"id"`

	// Email is the primary email of the Google account.
	Email string `json:"email"`

	// Name is the display name reported by Google.
	Name string `json:"name"`

	// Avatar is the profile picture URL, optional.
	Avatar string `json:"picture"`
}
