// file: internals/seeds/production/seed_lines.go
package production

import (
	"encoding/json"
	"log"
	"os"

	"pabrikku_backend/internals/features/production/lines/model"

	"gorm.io/gorm"
)

type LineSeed struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	IsActive bool   `json:"is_active"`
}

func SeedLinesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file production line:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []LineSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.ProductionLineModel
		if err := db.Where("production_line_name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Line '%s' sudah ada, dilewati.", data.Name)
			continue
		}

		newLine := model.ProductionLineModel{
			ProductionLineName:     data.Name,
			ProductionLineLocation: data.Location,
			ProductionLineCapacity: data.Capacity,
			ProductionLineIsActive: data.IsActive,
		}

		if err := db.Create(&newLine).Error; err != nil {
			log.Printf("❌ Gagal insert line '%s': %v", data.Name, err)
		} else {
			log.Printf("✅ Berhasil insert line '%s'", data.Name)
		}
	}
}
