package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sportsync/club-service/internal/domain/common/errorz"
	"github.com/sportsync/club-service/internal/domain/dto"
	"github.com/sportsync/club-service/internal/domain/entity"
	"github.com/sportsync/club-service/internal/domain/utils/slug"
	"github.com/sportsync/club-service/internal/domain/utils/validator"
	"github.com/sportsync/club-service/pkg/logger/types"
	"gorm.io/gorm"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Club, error)
	GetByNameOrSlug(ctx context.Context, name, slug string) (*entity.Club, error)
	GetByInviteID(ctx context.Context, inviteID string) (*entity.Club, error)
	LinkInvite(ctx context.Context, clubID, inviteID string) error
}

type MemberStorage interface {
	Create(ctx context.Context, member *entity.Member) (*entity.Member, error)
	Get(ctx context.Context, clubID, profileID string) (*entity.Member, error)
}

type AssetStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	PublicURL(path string) string
}

type IdentityProvider interface {
	Confirm(ctx context.Context, accessToken string) (*entity.Identity, error)
}

type ClubService struct {
	clubStorage   ClubStorage
	memberStorage MemberStorage
	assetStorage  AssetStorage
	identity      IdentityProvider
	logger        *types.Logger
}

func NewClubService(
	clubStorage ClubStorage,
	memberStorage MemberStorage,
	assetStorage AssetStorage,
	identity IdentityProvider,
	logger *types.Logger,
) *ClubService {
	return &ClubService{
		clubStorage:   clubStorage,
		memberStorage: memberStorage,
		assetStorage:  assetStorage,
		identity:      identity,
		logger:        logger,
	}
}

// Provision creates a club for the requesting user: uniqueness probe,
// optional logo upload, live identity confirmation, club insert, then a
// best-effort membership bootstrap. The steps run against independent
// backends with no shared transaction; each step's failure policy is
// noted where it applies, and nothing is retried here.
func (s *ClubService) Provision(ctx context.Context, input dto.ProvisionClub) (*entity.Club, error) {
	name := strings.TrimSpace(input.Name)
	if !validator.ClubName(name) {
		return nil, errorz.ErrInvalidClubName
	}

	var ext string
	if input.Logo != nil {
		var ok bool
		if ext, ok = validator.ClubLogo(input.Logo.ContentType, len(input.Logo.Data)); !ok {
			return nil, errorz.ErrInvalidLogo
		}
	}

	clubSlug := slug.Make(name)

	// Fast-path probe. The unique indexes on name and slug are the real
	// guard; a concurrent writer can still slip in between this check and
	// the insert below, which is why the insert maps duplicate keys to the
	// same conflict error.
	_, err := s.clubStorage.GetByNameOrSlug(ctx, name, clubSlug)
	if err == nil {
		return nil, errorz.ErrClubExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: uniqueness probe: %v", errorz.ErrStore, err)
	}

	var logoURL *string
	if input.Logo != nil {
		path := fmt.Sprintf("clubs/%s-%d.%s", clubSlug, time.Now().UnixMilli(), ext)
		uploaded, errUpload := s.assetStorage.Upload(ctx, path, input.Logo.Data, input.Logo.ContentType)
		if errUpload != nil {
			return nil, fmt.Errorf("%w: %v", errorz.ErrUpload, errUpload)
		}
		url := s.assetStorage.PublicURL(uploaded)
		logoURL = &url
	}

	// Confirmed live right before the insert it authorizes. Failing here
	// leaves an already-uploaded logo behind; orphaned assets are accepted
	// and cleaned up out of band.
	who, err := s.identity.Confirm(ctx, input.AccessToken)
	if err != nil {
		if errors.Is(err, errorz.ErrUnauthorized) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errorz.ErrUnauthorized, err)
	}
	if who == nil {
		return nil, errorz.ErrUnauthorized
	}

	club, err := s.clubStorage.Create(ctx, &entity.Club{
		Name:    name,
		Slug:    clubSlug,
		LogoURL: logoURL,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorz.ErrClubExists
		}
		return nil, fmt.Errorf("%w: create club: %v", errorz.ErrStore, err)
	}

	// Best effort: the club is the durable result either way. A missed
	// membership is reconciled by a separate repair path, never retried or
	// rolled back here.
	if _, errMember := s.memberStorage.Create(ctx, &entity.Member{
		ClubID:    club.ID,
		ProfileID: who.ID,
	}); errMember != nil {
		s.logger.Warnf("club %s created but membership bootstrap failed for profile %s: %v", club.ID, who.ID, errMember)
	}

	return club, nil
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	return s.clubStorage.Get(ctx, id)
}

func (s *ClubService) GetBySlug(ctx context.Context, clubSlug string) (*entity.Club, error) {
	return s.clubStorage.GetBySlug(ctx, clubSlug)
}
