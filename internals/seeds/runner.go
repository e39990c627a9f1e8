// file: internals/seeds/runner.go
package seeds

import (
	production "pabrikku_backend/internals/seeds/production"
	users "pabrikku_backend/internals/seeds/users"
	workforce "pabrikku_backend/internals/seeds/workforce"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	workforce.SeedWorkersFromJSON(db, "internals/seeds/workforce/data_workers.json")
	production.SeedLinesFromJSON(db, "internals/seeds/production/data_lines.json")
}
