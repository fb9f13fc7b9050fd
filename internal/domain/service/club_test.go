package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sportsync/club-service/internal/domain/common/errorz"
	"github.com/sportsync/club-service/internal/domain/dto"
	"github.com/sportsync/club-service/internal/domain/entity"
	"github.com/sportsync/club-service/internal/domain/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type clubFixture struct {
	clubs    *fakeClubStorage
	members  *fakeMemberStorage
	assets   *fakeAssetStorage
	identity *fakeIdentity
	service  *ClubService
}

func newClubFixture() *clubFixture {
	f := &clubFixture{
		clubs:    newFakeClubStorage(),
		members:  &fakeMemberStorage{},
		assets:   newFakeAssetStorage(),
		identity: &fakeIdentity{identity: &entity.Identity{ID: "profile-1", Email: "owner@example.com"}},
	}
	f.service = NewClubService(f.clubs, f.members, f.assets, f.identity, testLogger())
	return f
}

func TestProvisionCreatesClubAndMembership(t *testing.T) {
	f := newClubFixture()

	club, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "  FC Reds  ",
		AccessToken: "token",
	})
	require.NoError(t, err)

	assert.Equal(t, "FC Reds", club.Name)
	assert.Equal(t, "fc-reds", club.Slug)
	assert.Nil(t, club.LogoURL)
	assert.NotEmpty(t, club.ID)

	member, err := f.members.Get(context.Background(), club.ID, "profile-1")
	require.NoError(t, err)
	assert.Equal(t, club.ID, member.ClubID)
}

func TestProvisionWithLogo(t *testing.T) {
	f := newClubFixture()

	club, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "FC Reds",
		AccessToken: "token",
		Logo:        &dto.Logo{Data: []byte("png-bytes"), ContentType: "image/png"},
	})
	require.NoError(t, err)

	require.NotNil(t, club.LogoURL)
	assert.True(t, strings.HasPrefix(*club.LogoURL, "https://cdn.test/clubs/fc-reds-"))
	assert.True(t, strings.HasSuffix(*club.LogoURL, ".png"))
	assert.Equal(t, 1, f.assets.uploadCalls)
}

func TestProvisionEmptyName(t *testing.T) {
	f := newClubFixture()

	_, err := f.service.Provision(context.Background(), dto.ProvisionClub{Name: "   "})
	assert.ErrorIs(t, err, errorz.ErrInvalidClubName)

	// Fails before any I/O.
	assert.Zero(t, f.clubs.probeCalls)
	assert.Zero(t, f.assets.uploadCalls)
	assert.Zero(t, f.identity.calls)
}

func TestProvisionLogoValidation(t *testing.T) {
	tests := []struct {
		name string
		logo dto.Logo
	}{
		{"disallowed type", dto.Logo{Data: []byte("gif"), ContentType: "image/gif"}},
		{"over size ceiling", dto.Logo{Data: make([]byte, validator.MaxLogoSize+1), ContentType: "image/png"}},
		{"empty payload", dto.Logo{ContentType: "image/png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newClubFixture()
			logo := tt.logo
			_, err := f.service.Provision(context.Background(), dto.ProvisionClub{
				Name:        "FC Reds",
				AccessToken: "token",
				Logo:        &logo,
			})
			assert.ErrorIs(t, err, errorz.ErrInvalidLogo)
			assert.Zero(t, f.clubs.probeCalls)
			assert.Zero(t, f.clubs.createCalls)
			assert.Zero(t, f.assets.uploadCalls)
			assert.Zero(t, f.identity.calls)
		})
	}
}

func TestProvisionNameConflict(t *testing.T) {
	f := newClubFixture()
	f.clubs.seed(&entity.Club{Name: "FC Reds", Slug: "fc-reds"})

	_, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "FC Reds",
		AccessToken: "token",
		Logo:        &dto.Logo{Data: []byte("png"), ContentType: "image/png"},
	})
	assert.ErrorIs(t, err, errorz.ErrClubExists)

	// The probe short-circuits everything downstream.
	assert.Zero(t, f.clubs.createCalls)
	assert.Zero(t, f.assets.uploadCalls)
	assert.Zero(t, f.identity.calls)
	assert.Zero(t, f.members.createCalls)
}

func TestProvisionSlugCollision(t *testing.T) {
	f := newClubFixture()
	f.clubs.seed(&entity.Club{Name: "FC Reds", Slug: "fc-reds"})

	// Distinct display name, identical slug.
	_, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "fc reds",
		AccessToken: "token",
	})
	assert.ErrorIs(t, err, errorz.ErrClubExists)
	assert.Zero(t, f.clubs.createCalls)
}

func TestProvisionAuthFailureKeepsUploadedLogo(t *testing.T) {
	f := newClubFixture()
	f.identity.err = errorz.ErrUnauthorized

	_, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "FC Reds",
		AccessToken: "stale",
		Logo:        &dto.Logo{Data: []byte("png"), ContentType: "image/png"},
	})
	assert.ErrorIs(t, err, errorz.ErrUnauthorized)

	// The upload happened and its orphan is accepted; no club was written.
	assert.Equal(t, 1, f.assets.uploadCalls)
	assert.Len(t, f.assets.uploads, 1)
	assert.Zero(t, f.clubs.createCalls)
	assert.Empty(t, f.clubs.clubs)
}

func TestProvisionUploadFailureAborts(t *testing.T) {
	f := newClubFixture()
	f.assets.uploadErr = errors.New("bucket unavailable")

	_, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "FC Reds",
		AccessToken: "token",
		Logo:        &dto.Logo{Data: []byte("png"), ContentType: "image/png"},
	})
	assert.ErrorIs(t, err, errorz.ErrUpload)

	// No silent fallback to a logo-less club.
	assert.Zero(t, f.identity.calls)
	assert.Zero(t, f.clubs.createCalls)
}

func TestProvisionDuplicateKeyOnInsert(t *testing.T) {
	f := newClubFixture()
	// Probe sees nothing, but a concurrent writer got there first.
	f.clubs.createErr = gorm.ErrDuplicatedKey

	_, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "FC Reds",
		AccessToken: "token",
	})
	assert.ErrorIs(t, err, errorz.ErrClubExists)
	assert.Zero(t, f.members.createCalls)
}

func TestProvisionStoreErrorOnInsert(t *testing.T) {
	f := newClubFixture()
	f.clubs.createErr = errors.New("connection reset")

	_, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "FC Reds",
		AccessToken: "token",
	})
	assert.ErrorIs(t, err, errorz.ErrStore)
	assert.NotErrorIs(t, err, errorz.ErrClubExists)
	assert.Zero(t, f.members.createCalls)
}

func TestProvisionMembershipFailureStillSucceeds(t *testing.T) {
	f := newClubFixture()
	f.members.createErr = errors.New("members table locked")

	club, err := f.service.Provision(context.Background(), dto.ProvisionClub{
		Name:        "FC Reds",
		AccessToken: "token",
	})
	require.NoError(t, err)
	require.NotNil(t, club)

	// Exactly one attempt, no retry, no rollback of the club.
	assert.Equal(t, 1, f.members.createCalls)
	assert.Empty(t, f.members.members)
	assert.Len(t, f.clubs.clubs, 1)
}
