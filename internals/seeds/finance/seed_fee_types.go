package finance

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"admissionku_backend/internals/features/finance/feetypes/model"
)

type FeeTypeSeed struct {
	Name          string `json:"name"`
	DefaultAmount int    `json:"default_amount"`
	Discountable  bool   `json:"discountable"`
}

func SeedFeeTypesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading fee type seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Could not read JSON file: %v", err)
	}

	var inputs []FeeTypeSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Could not decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.FeeType
		if err := db.Where("fee_type_name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Fee type '%s' already exists, skipped.", data.Name)
			continue
		}

		row := model.FeeType{
			FeeTypeName:           data.Name,
			FeeTypeDefaultAmount:  data.DefaultAmount,
			FeeTypeIsDiscountable: data.Discountable,
			FeeTypeIsActive:       true,
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Could not insert fee type '%s': %v", data.Name, err)
		} else {
			log.Printf("✅ Inserted fee type '%s'", data.Name)
		}
	}
}
