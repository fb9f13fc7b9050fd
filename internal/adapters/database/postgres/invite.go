package postgres

import (
	"context"

	"github.com/sportsync/club-service/internal/domain/entity"
	"gorm.io/gorm"
)

type InviteStorage struct {
	db *gorm.DB
}

func NewInviteStorage(db *gorm.DB) *InviteStorage {
	return &InviteStorage{
		db: db,
	}
}

func (s *InviteStorage) Create(ctx context.Context, invite *entity.Invite) (*entity.Invite, error) {
	err := s.db.WithContext(ctx).Create(&invite).Error
	return invite, err
}

func (s *InviteStorage) Get(ctx context.Context, id string) (*entity.Invite, error) {
	var invite entity.Invite
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&invite).Error
	return &invite, err
}

func (s *InviteStorage) GetByToken(ctx context.Context, token string) (*entity.Invite, error) {
	var invite entity.Invite
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&invite).Error
	return &invite, err
}
