package entity

// Identity is the authenticated principal as confirmed live by the
// identity provider.
type Identity struct {
	ID    string
	Email string
}
