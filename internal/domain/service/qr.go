package service

import (
	"context"

	"github.com/sportsync/club-service/internal/domain/common/errorz"
	"github.com/sportsync/club-service/pkg/qrcode"
)

type qrInviteService interface {
	GetToken(ctx context.Context, clubID string) (string, error)
	Link(token string) string
}

// QRService renders a club's invite link as a shareable QR image.
type QRService struct {
	invites qrInviteService
	cfg     qrcode.Config
}

func NewQRService(invites qrInviteService, cfg qrcode.Config) *QRService {
	return &QRService{
		invites: invites,
		cfg:     cfg,
	}
}

// InviteQR returns a PNG of the club's current invite link. Clubs without
// a linked invite get ErrInviteNotFound; rendering never issues one.
func (s *QRService) InviteQR(ctx context.Context, clubID string) ([]byte, error) {
	token, err := s.invites.GetToken(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, errorz.ErrInviteNotFound
	}

	cfg := s.cfg
	cfg.Content = s.invites.Link(token)
	return cfg.Generate()
}
