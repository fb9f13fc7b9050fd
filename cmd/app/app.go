package app

import (
	"github.com/sportsync/club-service/internal/adapters/config"
	"github.com/sportsync/club-service/internal/adapters/database/postgres"
	"github.com/sportsync/club-service/internal/domain/service"
	"github.com/sportsync/club-service/pkg/logger"
	"github.com/sportsync/club-service/pkg/logger/types"
	"github.com/sportsync/club-service/pkg/qrcode"
	"github.com/sportsync/club-service/pkg/smtp"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// App wires storages, clients and services together. The embedding route
// layer consumes the services; nothing here owns a transport.
type App struct {
	DB     *gorm.DB
	Logger *types.Logger

	Clubs   *service.ClubService
	Invites *service.InviteService
	QR      *service.QRService
	Mailer  *smtp.Client
}

func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}
	clubLogger, err := logger.Named("club")
	if err != nil {
		return nil, err
	}
	inviteLogger, err := logger.Named("invite")
	if err != nil {
		return nil, err
	}
	mailLogger, err := logger.Named("mail")
	if err != nil {
		return nil, err
	}

	clubStorage := postgres.NewClubStorage(cfg.Database)
	memberStorage := postgres.NewMemberStorage(cfg.Database)
	inviteStorage := postgres.NewInviteStorage(cfg.Database)

	mailer := smtp.NewClient(
		cfg.SMTPDialer,
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.domain"),
		mailLogger,
	)

	clubs := service.NewClubService(clubStorage, memberStorage, cfg.Storage, cfg.Identity, clubLogger)
	invites := service.NewInviteService(
		clubStorage,
		inviteStorage,
		memberStorage,
		cfg.Redis.Invites,
		mailer,
		viper.GetString("service.invite.base-url"),
		inviteLogger,
	)

	qrConfig := qrcode.Default
	qrConfig.LogoPath = viper.GetString("service.invite.qr-logo")
	qr := service.NewQRService(invites, qrConfig)

	return &App{
		DB:      cfg.Database,
		Logger:  appLogger,
		Clubs:   clubs,
		Invites: invites,
		QR:      qr,
		Mailer:  mailer,
	}, nil
}
