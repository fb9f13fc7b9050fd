package postgres

import (
	"context"

	"github.com/sportsync/club-service/internal/domain/entity"
	"gorm.io/gorm"
)

type MemberStorage struct {
	db *gorm.DB
}

func NewMemberStorage(db *gorm.DB) *MemberStorage {
	return &MemberStorage{
		db: db,
	}
}

func (s *MemberStorage) Create(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	err := s.db.WithContext(ctx).Create(&member).Error
	return member, err
}

func (s *MemberStorage) Get(ctx context.Context, clubID, profileID string) (*entity.Member, error) {
	var member entity.Member
	err := s.db.WithContext(ctx).Where("club_id = ? AND profile_id = ?", clubID, profileID).First(&member).Error
	return &member, err
}

func (s *MemberStorage) GetByClubID(ctx context.Context, clubID string) ([]entity.Member, error) {
	var members []entity.Member
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Find(&members).Error
	return members, err
}
