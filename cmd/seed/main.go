package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"stayelo/internal/config"
	"stayelo/internal/database"
	"stayelo/internal/domain"
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

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@stayelo.test",
		PasswordHash: string(adminHash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("admin seed failed:", err)
	}

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := domain.User{
		Email:        "guest@stayelo.test",
		PasswordHash: string(customerHash),
		Name:         "Demo Guest",
		Role:         domain.RoleCustomer,
	}
	if err := db.Create(&customer).Error; err != nil {
		log.Fatal("customer seed failed:", err)
	}

	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{Name: "Garden View", Type: domain.RoomStandard, Description: "Cozy room overlooking the garden", Price: 1500, Capacity: 2, IsActive: true},
		{Name: "Sea Breeze", Type: domain.RoomDeluxe, Description: "Deluxe room with a balcony", Price: 2500, Capacity: 3, IsActive: true},
		{Name: "Royal Suite", Type: domain.RoomSuite, Description: "Two-room suite with a lounge", Price: 5000, Capacity: 4, IsActive: true},
		{Name: "Family Nest", Type: domain.RoomFamily, Description: "Spacious family room", Price: 3200, Capacity: 5, IsActive: true},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			log.Fatal("room seed failed:", err)
		}
	}

	log.Printf("Seed complete: %d rooms, admin=admin@stayelo.test guest=guest@stayelo.test", len(rooms))
}
