package postgres

import "github.com/sportsync/club-service/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.Club{},
	&entity.Member{},
	&entity.Invite{},
}
