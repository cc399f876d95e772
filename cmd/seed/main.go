// seed carga datos de demostración: una farmacia con todos los módulos activos,
// usuarios, catálogo con lotes, un empleado, una promoción y un canal de chat.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (variables de entorno / config.yaml).
// Es idempotente a nivel de farmacia: si el NIT demo ya existe no inserta nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/infrastructure/postgres"
	"github.com/tu-usuario/farmacia-suite/pkg/config"
)

const (
	demoNIT      = "900123456-7"
	demoPassword = "demo1234"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatalf("Cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fatalf("Conectar a PostgreSQL: %v", err)
	}
	defer pool.Close()

	pharmacyRepo := postgres.NewPharmacyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	settingsRepo := postgres.NewAlertSettingsRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	promoRepo := postgres.NewPromotionRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)

	if existing, err := pharmacyRepo.GetByNIT(demoNIT); err == nil && existing != nil {
		fmt.Printf("La farmacia demo (NIT %s) ya existe, nada que hacer.\n", demoNIT)
		return
	}

	pharmacy := &entity.Pharmacy{
		ID:      uuid.NewString(),
		Name:    "Droguería La Esperanza",
		NIT:     demoNIT,
		Address: "Cra 15 # 45-23, Bogotá",
		Phone:   "+57 601 555 0134",
		Email:   "contacto@laesperanza.co",
	}
	if err := pharmacyRepo.Create(pharmacy); err != nil {
		fatalf("Crear farmacia: %v", err)
	}

	for _, module := range []string{
		entity.ModulePOS, entity.ModuleInventory, entity.ModulePayroll,
		entity.ModuleChat, entity.ModuleReports,
	} {
		mod := &entity.PharmacyModule{PharmacyID: pharmacy.ID, Module: module, Active: true}
		if err := pharmacyRepo.EnableModule(ctx, mod); err != nil {
			fatalf("Activar módulo %s: %v", module, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fatalf("Hashear password: %v", err)
	}
	users := []*entity.User{
		{Email: "admin@laesperanza.co", Name: "Ana Gómez", Role: entity.RoleAdmin},
		{Email: "quimico@laesperanza.co", Name: "Luis Prada", Role: entity.RoleFarmaceutico},
		{Email: "caja@laesperanza.co", Name: "Marcela Ruiz", Role: entity.RoleCajero},
	}
	for _, u := range users {
		u.ID = uuid.NewString()
		u.PharmacyID = pharmacy.ID
		u.PasswordHash = string(hash)
		u.Status = "active"
		if err := userRepo.Create(u); err != nil {
			fatalf("Crear usuario %s: %v", u.Email, err)
		}
	}

	critical, low := 3, 8
	if err := settingsRepo.Upsert(&entity.AlertSettings{
		PharmacyID:        pharmacy.ID,
		CriticalThreshold: &critical,
		LowThreshold:      &low,
		EmailEnabled:      false,
	}); err != nil {
		fatalf("Configurar alertas: %v", err)
	}

	now := time.Now()
	products := []struct {
		code, name string
		price      int64
		cost       int64
		taxRate    int64
		stock      int
		expiryDays int
	}{
		{"ACE500", "Acetaminofén 500mg x20", 6500, 3800, 0, 120, 540},
		{"IBU400", "Ibuprofeno 400mg x10", 8900, 5200, 0, 4, 300},
		{"AMX500", "Amoxicilina 500mg x15", 14500, 9100, 0, 0, 420},
		{"LORA10", "Loratadina 10mg x10", 7200, 4100, 0, 45, 600},
		{"SUERO1", "Suero oral 500ml", 5400, 3000, 5, 230, 200},
		{"VITC1G", "Vitamina C 1g efervescente x10", 12800, 7600, 19, 18, 480},
	}
	var promoProductID string
	for _, p := range products {
		product := &entity.Product{
			ID:         uuid.NewString(),
			PharmacyID: pharmacy.ID,
			Code:       p.code,
			Name:       p.name,
			Price:      decimal.NewFromInt(p.price),
			Cost:       decimal.NewFromInt(p.cost),
			TaxRate:    decimal.NewFromInt(p.taxRate),
			Active:     true,
		}
		if err := productRepo.Create(product); err != nil {
			fatalf("Crear producto %s: %v", p.code, err)
		}
		if p.code == "ACE500" {
			promoProductID = product.ID
		}
		if p.stock == 0 {
			continue
		}
		lot := &entity.Lot{
			ID:         uuid.NewString(),
			PharmacyID: pharmacy.ID,
			ProductID:  product.ID,
			LotNumber:  fmt.Sprintf("L-%s-001", p.code),
			Quantity:   p.stock,
			UnitCost:   decimal.NewFromInt(p.cost),
			ExpiryDate: now.AddDate(0, 0, p.expiryDays),
			ReceivedAt: now,
		}
		if err := lotRepo.Create(lot); err != nil {
			fatalf("Crear lote de %s: %v", p.code, err)
		}
	}

	if err := promoRepo.Create(&entity.Promotion{
		ID:          uuid.NewString(),
		PharmacyID:  pharmacy.ID,
		ProductID:   promoProductID,
		Name:        "Acetaminofén 10% dcto",
		DiscountPct: decimal.NewFromInt(10),
		StartsAt:    now,
		EndsAt:      now.AddDate(0, 1, 0),
		Active:      true,
	}); err != nil {
		fatalf("Crear promoción: %v", err)
	}

	if err := employeeRepo.Create(&entity.Employee{
		ID:         uuid.NewString(),
		PharmacyID: pharmacy.ID,
		Document:   "1032456789",
		Name:       "Marcela Ruiz",
		Position:   "Cajera",
		BaseSalary: decimal.NewFromInt(1_400_000),
		HiredAt:    now.AddDate(-1, 0, 0),
		Active:     true,
	}); err != nil {
		fatalf("Crear empleado: %v", err)
	}

	if err := messageRepo.CreateChannel(&entity.Channel{
		ID:         uuid.NewString(),
		PharmacyID: pharmacy.ID,
		Name:       "general",
	}); err != nil {
		fatalf("Crear canal de chat: %v", err)
	}

	fmt.Printf("Farmacia demo creada: %s (pharmacy_id=%s)\n", pharmacy.Name, pharmacy.ID)
	fmt.Printf("Usuarios: admin@laesperanza.co / quimico@... / caja@... (password %q)\n", demoPassword)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
