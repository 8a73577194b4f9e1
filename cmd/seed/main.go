package main

import (
	"log"

	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/broker"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/category"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/commission"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/deal"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/developer"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/project"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/unittype"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/utils"
	"github.com/WGhaly/byit-real-estate-platform-sub000/internal/utils/db"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds a small demo dataset: one manager, one broker, a two-level rate
// hierarchy and a booked deal whose commission is snapshotted through the
// same resolution pass the API uses.
func main() {
	_ = godotenv.Load()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := database.AutoMigrate(
		&broker.Broker{},
		&developer.Developer{},
		&project.Project{},
		&category.Category{},
		&category.ProjectCategory{},
		&unittype.UnitType{},
		&unittype.ProjectCategoryUnitType{},
		&deal.Deal{},
		&commission.Commission{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	if err := seed(database); err != nil {
		log.Fatal("seed failed:", err)
	}
	log.Println("seed complete")
}

func seed(database *gorm.DB) error {
	managerHash, err := utils.HashPassword("manager123")
	if err != nil {
		return err
	}
	brokerHash, err := utils.HashPassword("broker123")
	if err != nil {
		return err
	}

	manager := broker.Broker{
		FirstName: "Mona",
		LastName:  "Adel",
		Email:     "manager@byit.example",
		Password:  managerHash,
		IsManager: true,
	}
	agent := broker.Broker{
		FirstName: "Omar",
		LastName:  "Hassan",
		Email:     "broker@byit.example",
		Password:  brokerHash,
	}
	if err := database.Create(&manager).Error; err != nil {
		return err
	}
	if err := database.Create(&agent).Error; err != nil {
		return err
	}

	dev := developer.Developer{
		Name:                   "Palm Hills",
		ContactEmail:           "sales@palmhills.example",
		ActualCommissionRate:   utils.Float64Ptr(5),
		BrokerCommissionRate:   utils.Float64Ptr(2),
		CommunicatedCommission: utils.Float64Ptr(4),
	}
	if err := database.Create(&dev).Error; err != nil {
		return err
	}

	proj := project.Project{
		DeveloperID:          dev.ID,
		Name:                 "Palm Hills New Cairo",
		Location:             "New Cairo",
		ActualCommissionRate: utils.Float64Ptr(5.5),
	}
	if err := database.Create(&proj).Error; err != nil {
		return err
	}

	villas := category.Category{Name: "Villas"}
	apartments := category.Category{Name: "Apartments"}
	if err := database.Create(&villas).Error; err != nil {
		return err
	}
	if err := database.Create(&apartments).Error; err != nil {
		return err
	}

	pcVillas := category.ProjectCategory{
		ProjectID:            proj.ID,
		CategoryID:           villas.ID,
		BrokerCommissionRate: utils.Float64Ptr(2.5),
	}
	pcApartments := category.ProjectCategory{
		ProjectID:  proj.ID,
		CategoryID: apartments.ID,
	}
	if err := database.Create(&pcVillas).Error; err != nil {
		return err
	}
	if err := database.Create(&pcApartments).Error; err != nil {
		return err
	}

	standalone := unittype.UnitType{Name: "Standalone Villa"}
	twoBR := unittype.UnitType{Name: "2BR"}
	if err := database.Create(&standalone).Error; err != nil {
		return err
	}
	if err := database.Create(&twoBR).Error; err != nil {
		return err
	}

	assignment := unittype.ProjectCategoryUnitType{
		ProjectCategoryID:    pcVillas.ID,
		UnitTypeID:           standalone.ID,
		Price:                12_000_000,
		ActualCommissionRate: utils.Float64Ptr(6),
	}
	if err := database.Create(&assignment).Error; err != nil {
		return err
	}
	if err := database.Create(&unittype.ProjectCategoryUnitType{
		ProjectCategoryID: pcApartments.ID,
		UnitTypeID:        twoBR.ID,
		Price:             4_500_000,
	}).Error; err != nil {
		return err
	}

	// Book one deal through the same snapshot path the API uses.
	salePrice := 12_500_000.0
	snapshot, err := deal.BuildSnapshot(salePrice, dev.Rates(), proj.Rates(), pcVillas.Rates(), assignment.Rates())
	if err != nil {
		return err
	}

	tx := database.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	d := deal.Deal{
		Reference:                 uuid.NewString(),
		BrokerID:                  agent.ID,
		DeveloperID:               dev.ID,
		ProjectID:                 proj.ID,
		ProjectCategoryID:         &pcVillas.ID,
		ProjectCategoryUnitTypeID: &assignment.ID,
		ClientName:                "Ahmed Samir",
		UnitNumber:                "V-114",
		SalePrice:                 salePrice,
		Status:                    deal.StatusConfirmed,
	}
	if err := tx.Create(&d).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(&commission.Commission{
		DealID:           d.ID,
		BrokerID:         agent.ID,
		SalePrice:        salePrice,
		Rate:             snapshot.Rates.Actual,
		Amount:           snapshot.Amount,
		BrokerRate:       snapshot.Rates.Broker,
		BrokerAmount:     snapshot.BrokerAmount,
		CommunicatedRate: snapshot.Rates.Communicated,
		Status:           commission.StatusPending,
	}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
