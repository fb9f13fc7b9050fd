package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sportsync/club-service/internal/domain/entity"
	"github.com/sportsync/club-service/pkg/logger/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testLogger() *types.Logger {
	return &types.Logger{SugaredLogger: zap.NewNop().Sugar(), Name: "test"}
}

type fakeClubStorage struct {
	clubs  map[string]*entity.Club
	nextID int

	probeCalls  int
	createCalls int
	createErr   error
	linkErr     error
}

func newFakeClubStorage() *fakeClubStorage {
	return &fakeClubStorage{clubs: map[string]*entity.Club{}}
}

func (f *fakeClubStorage) seed(club *entity.Club) *entity.Club {
	f.nextID++
	if club.ID == "" {
		club.ID = fmt.Sprintf("club-%d", f.nextID)
	}
	f.clubs[club.ID] = club
	return club
}

func (f *fakeClubStorage) Create(_ context.Context, club *entity.Club) (*entity.Club, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.clubs {
		if existing.Name == club.Name || existing.Slug == club.Slug {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	return f.seed(club), nil
}

func (f *fakeClubStorage) Get(_ context.Context, id string) (*entity.Club, error) {
	if club, ok := f.clubs[id]; ok {
		return club, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClubStorage) GetBySlug(_ context.Context, slug string) (*entity.Club, error) {
	for _, club := range f.clubs {
		if club.Slug == slug {
			return club, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClubStorage) GetByNameOrSlug(_ context.Context, name, slug string) (*entity.Club, error) {
	f.probeCalls++
	for _, club := range f.clubs {
		if club.Name == name || club.Slug == slug {
			return club, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClubStorage) GetByInviteID(_ context.Context, inviteID string) (*entity.Club, error) {
	for _, club := range f.clubs {
		if club.InviteID != nil && *club.InviteID == inviteID {
			return club, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeClubStorage) LinkInvite(_ context.Context, clubID, inviteID string) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	// Matching zero rows is not an error, like the real store.
	if club, ok := f.clubs[clubID]; ok {
		id := inviteID
		club.InviteID = &id
	}
	return nil
}

type fakeMemberStorage struct {
	members []entity.Member

	createCalls int
	createErr   error
}

func (f *fakeMemberStorage) Create(_ context.Context, member *entity.Member) (*entity.Member, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, m := range f.members {
		if m.ClubID == member.ClubID && m.ProfileID == member.ProfileID {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	member.ID = uint(len(f.members) + 1)
	f.members = append(f.members, *member)
	return member, nil
}

func (f *fakeMemberStorage) Get(_ context.Context, clubID, profileID string) (*entity.Member, error) {
	for i := range f.members {
		if f.members[i].ClubID == clubID && f.members[i].ProfileID == profileID {
			return &f.members[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeAssetStorage struct {
	uploads map[string][]byte

	uploadCalls int
	uploadErr   error
}

func newFakeAssetStorage() *fakeAssetStorage {
	return &fakeAssetStorage{uploads: map[string][]byte{}}
}

func (f *fakeAssetStorage) Upload(_ context.Context, path string, data []byte, _ string) (string, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads[path] = data
	return path, nil
}

func (f *fakeAssetStorage) PublicURL(path string) string {
	return "https://cdn.test/" + path
}

type fakeIdentity struct {
	identity *entity.Identity
	err      error
	calls    int
}

func (f *fakeIdentity) Confirm(context.Context, string) (*entity.Identity, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

type fakeInviteStorage struct {
	invites map[string]*entity.Invite
	nextID  int

	createCalls int
	createErr   error
}

func newFakeInviteStorage() *fakeInviteStorage {
	return &fakeInviteStorage{invites: map[string]*entity.Invite{}}
}

func (f *fakeInviteStorage) Create(_ context.Context, invite *entity.Invite) (*entity.Invite, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	invite.ID = fmt.Sprintf("invite-%d", f.nextID)
	f.invites[invite.ID] = invite
	return invite, nil
}

func (f *fakeInviteStorage) Get(_ context.Context, id string) (*entity.Invite, error) {
	if invite, ok := f.invites[id]; ok {
		return invite, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeInviteStorage) GetByToken(_ context.Context, token string) (*entity.Invite, error) {
	for _, invite := range f.invites {
		if invite.Token == token {
			return invite, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeMailer struct {
	sent []string // "to|clubName|link"
}

func (f *fakeMailer) SendInviteEmail(to, clubName, link string) {
	f.sent = append(f.sent, fmt.Sprintf("%s|%s|%s", to, clubName, link))
}

type fakeInviteCache struct {
	entries map[string]string

	setCalls int
	setErr   error
}

func newFakeInviteCache() *fakeInviteCache {
	return &fakeInviteCache{entries: map[string]string{}}
}

func (f *fakeInviteCache) Get(_ context.Context, token string) (string, error) {
	if clubID, ok := f.entries[token]; ok {
		return clubID, nil
	}
	return "", redis.Nil
}

func (f *fakeInviteCache) Set(_ context.Context, token, clubID string) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[token] = clubID
	return nil
}

func (f *fakeInviteCache) Clear(_ context.Context, token string) error {
	delete(f.entries, token)
	return nil
}
