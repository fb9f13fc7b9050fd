package entity

import "time"

// Invite holds an opaque join token. Invites are never mutated or deleted
// here; re-issuing for a club leaves the old row behind as an orphan.
type Invite struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	Token     string `gorm:"not null;uniqueIndex"`
}
