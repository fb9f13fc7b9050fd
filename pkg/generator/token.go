package generator

import "github.com/google/uuid"

// InviteToken returns an opaque token for an invite link. Collision
// probability is negligible; the unique index on the invite table is the
// backstop.
func InviteToken() string {
	return uuid.New().String()
}
