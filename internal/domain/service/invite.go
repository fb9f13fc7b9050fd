package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sportsync/club-service/internal/domain/common/errorz"
	"github.com/sportsync/club-service/internal/domain/entity"
	"github.com/sportsync/club-service/pkg/generator"
	"github.com/sportsync/club-service/pkg/logger/types"
	"gorm.io/gorm"
)

type InviteStorage interface {
	Create(ctx context.Context, invite *entity.Invite) (*entity.Invite, error)
	Get(ctx context.Context, id string) (*entity.Invite, error)
	GetByToken(ctx context.Context, token string) (*entity.Invite, error)
}

// InviteCache is the token → club id fast path. Every method is best
// effort; a cache fault degrades to store reads, never to a failed call.
type InviteCache interface {
	Get(ctx context.Context, token string) (string, error)
	Set(ctx context.Context, token, clubID string) error
	Clear(ctx context.Context, token string) error
}

// InviteMailer delivers an invite link. Sends are fire-and-log on the
// mailer side and never fail the calling flow.
type InviteMailer interface {
	SendInviteEmail(to, clubName, link string)
}

type InviteService struct {
	clubStorage   ClubStorage
	inviteStorage InviteStorage
	memberStorage MemberStorage
	cache         InviteCache
	mailer        InviteMailer
	joinBaseURL   string
	logger        *types.Logger
}

func NewInviteService(
	clubStorage ClubStorage,
	inviteStorage InviteStorage,
	memberStorage MemberStorage,
	cache InviteCache,
	mailer InviteMailer,
	joinBaseURL string,
	logger *types.Logger,
) *InviteService {
	return &InviteService{
		clubStorage:   clubStorage,
		inviteStorage: inviteStorage,
		memberStorage: memberStorage,
		cache:         cache,
		mailer:        mailer,
		joinBaseURL:   strings.TrimRight(joinBaseURL, "/"),
		logger:        logger,
	}
}

// GetToken returns the club's current invite token, or the empty string
// when no invite is linked yet. Unknown clubs also answer empty. This is
// the idempotent read half of the flow: it never creates anything, and
// callers wanting get-or-create semantics call it before Issue.
func (s *InviteService) GetToken(ctx context.Context, clubID string) (string, error) {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("%w: get club: %v", errorz.ErrStore, err)
	}
	if club.InviteID == nil {
		return "", nil
	}

	invite, err := s.inviteStorage.Get(ctx, *club.InviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("%w: get invite: %v", errorz.ErrStore, err)
	}
	return invite.Token, nil
}

// Issue mints a fresh invite and points the club at it. Deliberately not
// idempotent: every call creates a new invite, and the previously linked
// one becomes an unreferenced orphan that still resolves by its own id.
// If linking fails after the insert, the orphan row likewise stays put.
func (s *InviteService) Issue(ctx context.Context, clubID string) (string, error) {
	oldToken, err := s.GetToken(ctx, clubID)
	if err != nil {
		// Cache hygiene only; issuance proceeds without it.
		s.logger.Warnf("could not resolve previous invite for club %s: %v", clubID, err)
	}

	invite, err := s.inviteStorage.Create(ctx, &entity.Invite{Token: generator.InviteToken()})
	if err != nil {
		return "", fmt.Errorf("%w: create invite: %v", errorz.ErrStore, err)
	}

	if err := s.clubStorage.LinkInvite(ctx, clubID, invite.ID); err != nil {
		return "", fmt.Errorf("%w: link invite: %v", errorz.ErrStore, err)
	}

	if err := s.cache.Set(ctx, invite.Token, clubID); err != nil {
		s.logger.Warnf("invite cache set failed for club %s: %v", clubID, err)
	}
	if oldToken != "" {
		// The superseded link should stop resolving ahead of its TTL.
		if err := s.cache.Clear(ctx, oldToken); err != nil {
			s.logger.Warnf("invite cache clear failed for club %s: %v", clubID, err)
		}
	}

	return invite.Token, nil
}

// Link builds the public join URL for a token.
func (s *InviteService) Link(token string) string {
	return fmt.Sprintf("%s/join/%s", s.joinBaseURL, token)
}

// EmailInvite mails the club's current invite link. It never issues a
// token on its own; clubs without one get ErrInviteNotFound.
func (s *InviteService) EmailInvite(ctx context.Context, clubID, to string) error {
	club, err := s.clubStorage.Get(ctx, clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrInviteNotFound
		}
		return fmt.Errorf("%w: get club: %v", errorz.ErrStore, err)
	}

	token, err := s.GetToken(ctx, clubID)
	if err != nil {
		return err
	}
	if token == "" {
		return errorz.ErrInviteNotFound
	}

	s.mailer.SendInviteEmail(to, club.Name, s.Link(token))
	return nil
}

// JoinByToken resolves an invite link and enrolls the profile into the
// club behind it. Tokens superseded by a newer issuance no longer resolve
// to a club and are rejected as not found.
func (s *InviteService) JoinByToken(ctx context.Context, token, profileID string) (*entity.Club, error) {
	var club *entity.Club

	clubID, err := s.cache.Get(ctx, token)
	if err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Warnf("invite cache get failed: %v", err)
	}
	if err == nil && clubID != "" {
		cached, errGet := s.clubStorage.Get(ctx, clubID)
		if errGet != nil && !errors.Is(errGet, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: get club: %v", errorz.ErrStore, errGet)
		}
		if errGet == nil {
			club = cached
		}
	}

	if club == nil {
		invite, errInvite := s.inviteStorage.GetByToken(ctx, token)
		if errInvite != nil {
			if errors.Is(errInvite, gorm.ErrRecordNotFound) {
				return nil, errorz.ErrInviteNotFound
			}
			return nil, fmt.Errorf("%w: get invite: %v", errorz.ErrStore, errInvite)
		}

		club, err = s.clubStorage.GetByInviteID(ctx, invite.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorz.ErrInviteNotFound
			}
			return nil, fmt.Errorf("%w: resolve club: %v", errorz.ErrStore, err)
		}

		if errCache := s.cache.Set(ctx, token, club.ID); errCache != nil {
			s.logger.Warnf("invite cache refresh failed: %v", errCache)
		}
	}

	_, err = s.memberStorage.Create(ctx, &entity.Member{
		ClubID:    club.ID,
		ProfileID: profileID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorz.ErrAlreadyMember
		}
		return nil, fmt.Errorf("%w: create member: %v", errorz.ErrStore, err)
	}

	return club, nil
}
