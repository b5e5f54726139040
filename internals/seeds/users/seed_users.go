package users

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"admissionku_backend/internals/features/users/auth/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Could not read JSON file: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Could not decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.User
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User with email '%s' already exists, skipped.", data.Email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Could not hash password for '%s': %v", data.Email, err)
			continue
		}

		newUser := model.User{
			UserName:     data.UserName,
			UserEmail:    data.Email,
			UserPassword: string(hashed),
			UserRole:     data.Role,
			UserIsActive: true,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Could not insert user '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Inserted user '%s'", data.Email)
		}
	}
}
