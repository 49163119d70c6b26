package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/config"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/database"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM auditoria_detalles")
	db.Exec("DELETE FROM auditorias")
	db.Exec("DELETE FROM historial_movimientos")
	db.Exec("DELETE FROM mantenimientos")
	db.Exec("DELETE FROM activos")
	db.Exec("DELETE FROM compras")
	db.Exec("DELETE FROM ubicaciones")
	db.Exec("DELETE FROM usuarios")

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := domain.User{
		FullName: "Administrador del Sistema",
		Email:    "admin@empresa.com",
		Role:     domain.RoleAdmin,
	}
	db.Create(&admin)

	technician := domain.User{
		FullName: "Carlos Méndez",
		Email:    "carlos.mendez@empresa.com",
		Role:     domain.RoleTechnician,
	}
	db.Create(&technician)

	auditor := domain.User{
		FullName: "Lucía Herrera",
		Email:    "lucia.herrera@empresa.com",
		Role:     domain.RoleAuditor,
	}
	db.Create(&auditor)

	// ================== LOCATIONS ==================
	log.Println("Creating locations...")

	office := domain.Location{
		Name:        "Oficina Principal",
		Description: "Oficina principal de la empresa",
	}
	db.Create(&office)

	warehouse := domain.Location{
		Name:        "Bodega Central",
		Description: "Bodega de equipos en resguardo",
		ParentID:    &office.ID,
	}
	db.Create(&warehouse)

	// ================== PURCHASES ==================
	purchase := domain.Purchase{
		InvoiceNumber: "FAC-2024-0001",
		Supplier:      "Dell Latinoamérica",
		PurchaseDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		RequestedByID: &admin.ID,
	}
	db.Create(&purchase)

	// ================== ASSETS ==================
	log.Println("Creating assets...")

	serial := "DL123456789"
	laptop := domain.Asset{
		Code:            "LAP-001",
		Name:            "Laptop Dell Inspiron",
		Description:     "Laptop para desarrollo",
		Brand:           "Dell",
		Model:           "Inspiron 15 3000",
		SerialNumber:    &serial,
		Status:          domain.StatusActive,
		AcquisitionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		AcquisitionCost: 1200.00,
		LocationID:      &office.ID,
		AssignedUserID:  &admin.ID,
		PurchaseID:      &purchase.ID,
	}
	laptop.QRURL = fmt.Sprintf("%s/activo/%s", cfg.LabelBaseURL, laptop.Code)
	db.Create(&laptop)

	extras := []domain.Asset{
		{
			Code:            "MON-001",
			Name:            "Monitor LG 27",
			Brand:           "LG",
			Status:          domain.StatusInWarehouse,
			AcquisitionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			AcquisitionCost: 310.50,
			LocationID:      &warehouse.ID,
		},
		{
			Code:            "IMP-001",
			Name:            "Impresora HP LaserJet",
			Brand:           "HP",
			Status:          domain.StatusInRepair,
			AcquisitionDate: time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC),
			AcquisitionCost: 480.00,
			LocationID:      &office.ID,
		},
	}
	for i := range extras {
		extras[i].QRURL = fmt.Sprintf("%s/activo/%s", cfg.LabelBaseURL, extras[i].Code)
		db.Create(&extras[i])
	}

	// ================== MAINTENANCE ==================
	db.Create(&domain.Maintenance{
		AssetID:       extras[1].ID,
		Date:          time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Type:          domain.MaintenanceCorrective,
		Description:   "Cambio de fusor",
		Cost:          75.00,
		PerformedByID: technician.ID,
	})

	// ================== MOVEMENT HISTORY ==================
	// The API never writes these rows itself; the seed plants one so the
	// /historial listing has something to show.
	db.Create(&domain.Movement{
		AssetID:      laptop.ID,
		UserID:       admin.ID,
		FieldChanged: "status",
		OldValue:     string(domain.StatusInWarehouse),
		NewValue:     string(domain.StatusActive),
		Note:         "Entrega inicial al administrador",
	})

	// ================== AUDITS ==================
	log.Println("Creating audits...")

	audit := domain.Audit{
		LocationID: office.ID,
		AuditorID:  auditor.ID,
		Status:     domain.AuditInProgress,
		Summary:    "Inventario trimestral",
	}
	db.Create(&audit)

	db.Create(&domain.AuditDetail{
		AuditID: audit.ID,
		AssetID: laptop.ID,
		Result:  domain.ScanOK,
	})

	log.Println("Seed completed.")
	log.Printf("Assets: LAP-001, MON-001, IMP-001 — labels point at %s/activo/<codigo>", cfg.LabelBaseURL)
}
