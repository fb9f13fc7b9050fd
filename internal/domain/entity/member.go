package entity

import "time"

// Member links an authenticated profile to a club. The composite unique
// index rejects double joins at the store level.
type Member struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	ClubID    string `gorm:"type:uuid;not null;uniqueIndex:idx_members_club_profile"`
	ProfileID string `gorm:"not null;uniqueIndex:idx_members_club_profile"`
}
