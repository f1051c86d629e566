package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"homelet/internal/database"
	"homelet/internal/domain"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "homelet.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM reports")
	db.Exec("DELETE FROM house_images")
	db.Exec("DELETE FROM houses")
	db.Exec("DELETE FROM verification_codes")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@homelet.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Platform Admin",
		Status:       domain.UserActive,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@homelet.kz / admin123")

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := domain.User{
		Email:        "marat@homelet.kz",
		PasswordHash: string(ownerHash),
		Role:         domain.RoleOwner,
		Name:         "Marat Ospanov",
		Status:       domain.UserActive,
	}
	db.Create(&owner)

	tenantHash, _ := bcrypt.GenerateFromPassword([]byte("tenant123"), bcrypt.DefaultCost)
	for i, email := range []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"} {
		db.Create(&domain.User{
			Email:        email,
			PasswordHash: string(tenantHash),
			Role:         domain.RoleTenant,
			Name:         fmt.Sprintf("Tenant %d", i+1),
			Status:       domain.UserActive,
		})
	}

	log.Println("Creating houses...")

	windowStart := time.Now().UTC().Truncate(24 * time.Hour)
	windowEnd := windowStart.AddDate(0, 3, 0)

	houses := []domain.House{
		{
			OwnerEmail:       owner.Email,
			Title:            "Panfilov Street Apartment",
			Description:      "Two rooms near the Arbat, fresh renovation",
			Address:          "Panfilov St 92, Almaty",
			PricePerDay:      18000,
			StartDate:        &windowStart,
			EndDate:          &windowEnd,
			ModerationStatus: domain.HouseValid,
			Availability:     domain.HouseAvailable,
		},
		{
			OwnerEmail:       owner.Email,
			Title:            "Koktobe Hillside House",
			Description:      "Garden, parking, mountain view",
			Address:          "Omarova St 14, Almaty",
			PricePerDay:      35000,
			StartDate:        &windowStart,
			EndDate:          &windowEnd,
			ModerationStatus: domain.HouseValid,
			Availability:     domain.HouseAvailable,
		},
		{
			OwnerEmail:       owner.Email,
			Title:            "Left Bank Studio",
			Description:      "Compact studio opposite the river park",
			Address:          "Turan Ave 37, Astana",
			PricePerDay:      12000,
			StartDate:        &windowStart,
			EndDate:          &windowEnd,
			ModerationStatus: domain.HouseValid,
			Availability:     domain.HouseAvailable,
		},
	}
	for i := range houses {
		db.Create(&houses[i])
	}

	log.Printf("Seed complete: %d users, %d houses", 5, len(houses))
}
