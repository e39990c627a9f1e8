// file: internals/seeds/workforce/seed_workers.go
package workforce

import (
	"encoding/json"
	"log"
	"os"

	"pabrikku_backend/internals/features/workforce/workers/model"
	helper "pabrikku_backend/internals/helpers"

	"gorm.io/gorm"
)

type WorkerSeed struct {
	Name    string  `json:"name"`
	CIN     string  `json:"cin"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Role    string  `json:"role"`
	HiredAt *string `json:"hired_at"`
}

func SeedWorkersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file worker:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []WorkerSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing model.WorkerModel
		if err := db.Where("worker_cin = ?", data.CIN).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Worker dengan CIN '%s' sudah ada, dilewati.", data.CIN)
			continue
		}

		role := model.WorkerRole(data.Role)
		if !model.ValidWorkerRole(data.Role) {
			role = model.WorkerRoleOperator
		}

		newWorker := model.WorkerModel{
			WorkerName:  data.Name,
			WorkerCIN:   data.CIN,
			WorkerEmail: data.Email,
			WorkerPhone: data.Phone,
			WorkerRole:  role,
		}
		if data.HiredAt != nil {
			if d, err := helper.ParseDateYMD(*data.HiredAt); err == nil {
				newWorker.WorkerHiredAt = &d
			}
		}

		if err := db.Create(&newWorker).Error; err != nil {
			log.Printf("❌ Gagal insert worker '%s': %v", data.CIN, err)
		} else {
			log.Printf("✅ Berhasil insert worker '%s'", data.CIN)
		}
	}
}
