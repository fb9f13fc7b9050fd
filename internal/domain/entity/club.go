package entity

import "time"

// Club is the primary record created by the provisioning flow. Name and
// slug carry unique indexes; the pre-insert probe in the service layer is
// only a fast path and the indexes are the final authority.
type Club struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"not null;uniqueIndex"`
	Slug      string `gorm:"not null;uniqueIndex"`
	LogoURL   *string
	InviteID  *string `gorm:"type:uuid"`
}
