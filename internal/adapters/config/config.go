package config

import (
	"fmt"
	"log"
	"os"
	"time"

	postgresStorage "github.com/sportsync/club-service/internal/adapters/database/postgres"
	redisAdapter "github.com/sportsync/club-service/internal/adapters/database/redis"
	"github.com/sportsync/club-service/internal/adapters/identity"
	"github.com/sportsync/club-service/internal/adapters/storage"
	"github.com/sportsync/club-service/pkg/logger"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type Config struct {
	Database   *gorm.DB
	Redis      *redisAdapter.Client
	Storage    *storage.BucketClient
	Identity   *identity.Client
	SMTPDialer *gomail.Dialer
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	loc, err := time.LoadLocation(viper.GetString("settings.timezone"))
	if err != nil {
		panic(err)
	}

	err = logger.Init(logger.Config{
		Debug:        viper.GetBool("settings.debug"),
		TimeLocation: loc,
		LogToFile:    viper.GetBool("settings.log-to-file"),
		LogsDir:      viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	gormConfig := &gorm.Config{
		// Surfaces unique index violations as gorm.ErrDuplicatedKey so the
		// provisioning flow can tell a conflict from a generic failure.
		TranslateError: true,
	}
	if viper.GetBool("settings.debug") {
		gormConfig.Logger = gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
	)

	database, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		logger.Log.Panicf("Failed to connect to the database: %v", err)
	} else {
		logger.Log.Info("Successfully connected to the database")
	}

	if errMigrate := database.AutoMigrate(postgresStorage.Migrations...); errMigrate != nil {
		logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
	}

	redisClient, err := redisAdapter.New(redisAdapter.Options{
		Host:      viper.GetString("service.redis.host"),
		Port:      viper.GetString("service.redis.port"),
		Password:  viper.GetString("service.redis.password"),
		InviteTTL: viper.GetDuration("service.redis.invite-ttl"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	} else {
		logger.Log.Info("Successfully connected to redis")
	}

	bucketClient := storage.NewBucketClient(
		viper.GetString("service.storage.url"),
		viper.GetString("service.storage.bucket"),
		viper.GetString("service.storage.api-key"),
	)

	identityClient := identity.NewClient(
		viper.GetString("service.identity.url"),
		viper.GetString("service.identity.api-key"),
		viper.GetString("service.identity.jwt-secret"),
	)

	dialer := gomail.NewDialer(
		viper.GetString("service.smtp.host"),
		viper.GetInt("service.smtp.port"),
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.password"),
	)

	return &Config{
		Database:   database,
		Redis:      redisClient,
		Storage:    bucketClient,
		Identity:   identityClient,
		SMTPDialer: dialer,
	}
}
