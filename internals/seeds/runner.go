package seeds

import (
	"gorm.io/gorm"

	finance "admissionku_backend/internals/seeds/finance"
	users "admissionku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Finance
	finance.SeedFeeTypesFromJSON(db, "internals/seeds/finance/data_fee_types.json")
}
