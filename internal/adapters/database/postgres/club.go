package postgres

import (
	"context"

	"github.com/sportsync/club-service/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Create(&club).Error
	return club, err
}

func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	return &club, err
}

func (s *ClubStorage) GetBySlug(ctx context.Context, slug string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&club).Error
	return &club, err
}

// GetByNameOrSlug backs the pre-insert uniqueness probe.
func (s *ClubStorage) GetByNameOrSlug(ctx context.Context, name, slug string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("name = ? OR slug = ?", name, slug).First(&club).Error
	return &club, err
}

func (s *ClubStorage) GetByInviteID(ctx context.Context, inviteID string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("invite_id = ?", inviteID).First(&club).Error
	return &club, err
}

// LinkInvite points the club at a freshly minted invite. Matching zero
// rows is not an error, mirroring the store's update semantics.
func (s *ClubStorage) LinkInvite(ctx context.Context, clubID, inviteID string) error {
	return s.db.WithContext(ctx).
		Model(&entity.Club{}).
		Where("id = ?", clubID).
		Update("invite_id", inviteID).Error
}
