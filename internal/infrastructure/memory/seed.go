package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/firstfortune/tracking-api/internal/domain/entity"
)

// Cuentas demo. Los hashes se calculan al arrancar: mantener hashes bcrypt
// literales en el código obliga a regenerarlos cada vez que cambia el cost.
const (
	DemoCustomerEmail    = "demo@firstfortune.example"
	DemoCustomerPassword = "demo123"
	DemoAdminEmail       = "admin@firstfortune.example"
	DemoAdminPassword    = "admin123"
)

// SeedDemoData carga en los stores en memoria las cuentas y envíos de
// demostración: un cliente con activos en bóveda, un admin y tres envíos
// (bóveda, entregado y en proceso). Pensado para development; en producción
// se desactiva con SEED_DEMO_DATA=false.
func SeedDemoData(users *UserRepo, shipments *ShipmentRepo) error {
	customerHash, err := bcrypt.GenerateFromPassword([]byte(DemoCustomerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte(DemoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	customer := &entity.User{
		Email:        DemoCustomerEmail,
		PasswordHash: string(customerHash),
		FirstName:    "Mary Miles",
		LastName:     "& Craig Goodman",
		Company:      "FirstFortune Securities",
		Phone:        "+41 22 918 8400",
		Role:         entity.RoleCustomer,
		Verified:     true,
		CreatedAt:    time.Date(2001, 8, 17, 0, 0, 0, 0, time.UTC),
		VaultAssets: entity.VaultAssets{
			"gold": map[string]any{
				"amount": "110 kilograms",
				"type":   "Certified 24K Gold",
				"purity": "99.99%",
			},
			"diamonds": map[string]any{
				"amount":  "60 carats",
				"grade":   "D-Color, VVS",
				"quality": "Excellent-quality cut",
			},
			"depositDate": "2001-08-17",
			"location":    "Geneva, Switzerland",
		},
	}
	if err := users.Create(customer); err != nil {
		return err
	}

	admin := &entity.User{
		Email:        DemoAdminEmail,
		PasswordHash: string(adminHash),
		FirstName:    "Admin",
		LastName:     "User",
		Company:      "FirstFortune Securities",
		Phone:        "+1 (800) 555-ADMIN",
		Role:         entity.RoleAdmin,
		Verified:     true,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(admin); err != nil {
		return err
	}

	demoShipments := []*entity.Shipment{
		{
			TrackingNumber:    "FF2001ASSETS",
			Origin:            "Geneva, Switzerland",
			Destination:       "Secure Vault Storage",
			Status:            "Secured in Vault",
			CurrentLocation:   "Geneva Vault Facility",
			EstimatedDelivery: "Permanent Storage",
			Weight:            "110kg Gold + 60ct Diamonds",
			Service:           "Vault Security Storage",
			UserID:            customer.ID,
			History: []entity.HistoryEntry{
				{Timestamp: "2001-08-17 10:00", Location: "Geneva, Switzerland", Status: "Assets deposited", Description: "Precious metals and diamonds secured in vault"},
				{Timestamp: "2001-08-17 15:30", Location: "Geneva Vault Facility", Status: "Vault secured", Description: "All assets verified and placed in maximum security vault"},
				{Timestamp: "2025-10-18 09:00", Location: "Geneva Vault Facility", Status: "Security verified", Description: "Regular security audit completed - all assets secure"},
			},
		},
		{
			TrackingNumber:    "LZ2025002",
			Origin:            "Singapore",
			Destination:       "London, United Kingdom",
			Status:            "Delivered",
			CurrentLocation:   "London, United Kingdom",
			EstimatedDelivery: "2025-10-16",
			ActualDelivery:    "2025-10-16",
			Weight:            "12.8 kg",
			Service:           "Standard Shipping",
			UserID:            customer.ID,
			History: []entity.HistoryEntry{
				{Timestamp: "2025-10-14 10:00", Location: "Singapore", Status: "Package picked up", Description: "Package collected from origin"},
				{Timestamp: "2025-10-14 16:45", Location: "Dubai, UAE", Status: "In transit", Description: "Package in transit"},
				{Timestamp: "2025-10-15 12:20", Location: "Frankfurt, Germany", Status: "In transit", Description: "Package in transit"},
				{Timestamp: "2025-10-16 09:30", Location: "London, United Kingdom", Status: "Delivered", Description: "Package delivered to recipient"},
			},
		},
		{
			TrackingNumber:    "LZ2025003",
			Origin:            "Dubai, UAE",
			Destination:       "Cape Town, South Africa",
			Status:            "Processing",
			CurrentLocation:   "Dubai, UAE",
			EstimatedDelivery: "2025-10-20",
			Weight:            "78.5 kg",
			Service:           "Freight Service",
			UserID:            admin.ID,
			History: []entity.HistoryEntry{
				{Timestamp: "2025-10-16 07:30", Location: "Dubai, UAE", Status: "Order received", Description: "Shipment order created and processing"},
			},
		},
	}
	for _, s := range demoShipments {
		if err := shipments.Create(s); err != nil {
			return err
		}
	}
	return nil
}
