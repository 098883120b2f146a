package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"jugad/internal/config"
	"jugad/internal/database"
	"jugad/internal/domain/auth"
	"jugad/internal/domain/checkout"
	"jugad/internal/domain/pricing"
	"jugad/internal/domain/wallet"
)

// Seeds the offer catalog and a demo account for local development.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&pricing.Plan{},
		&pricing.CreditPack{},
		&pricing.CreditActionCost{},
		&auth.User{},
		&wallet.CreditWallet{},
		&wallet.CreditTransaction{},
		&checkout.Order{},
	); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if err := pricing.NewRepository(db).Seed(ctx, pricing.DefaultCatalog()); err != nil {
		log.Fatal(err)
	}
	log.Println("catalog seeded")

	const demoEmail = "demo@jugad.app"
	var count int64
	if err := db.Model(&auth.User{}).Where("email = ?", demoEmail).Count(&count).Error; err != nil {
		log.Fatal(err)
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		user := &auth.User{Email: demoEmail, PasswordHash: string(hash), Name: "Demo"}
		if err := db.Create(user).Error; err != nil {
			log.Fatal(err)
		}
		if _, _, err := wallet.NewService(db).Add(ctx, user.ID, 20, "welcome credits"); err != nil {
			log.Fatal(err)
		}
		log.Printf("demo user created: %s / demo-password", demoEmail)
	}

	log.Println("done")
}
