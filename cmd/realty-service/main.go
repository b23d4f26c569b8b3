package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"realty-service/internal/config"
	"realty-service/internal/database"
	"realty-service/internal/handler"
	"realty-service/internal/middleware"
	"realty-service/internal/repository"
	"realty-service/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on the environment")
	}

	rootCmd := &cobra.Command{
		Use:   "realty-service",
		Short: "Property catalog API",
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg)
			if err != nil {
				return err
			}

			listingRepo := repository.NewListingRepository(db)
			jobRepo := repository.NewJobRepository(db)
			inquiryRepo := repository.NewInquiryRepository(db)
			userRepo := repository.NewUserRepository(db)

			listingSvc := service.NewListingService(listingRepo)

			gin.SetMode(cfg.GinMode)
			r := gin.Default()
			r.Use(middleware.RequestID())

			api := r.Group("/api")
			admin := api.Group("/")
			admin.Use(middleware.AdminOnly(cfg.JWTSecret))

			handler.NewListingHandler(listingRepo, listingSvc).RegisterRoutes(api, admin)
			handler.NewJobHandler(jobRepo).RegisterRoutes(api, admin)
			handler.NewInquiryHandler(inquiryRepo, listingRepo).RegisterRoutes(api, admin)
			handler.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(api)

			log.Printf("realty-service listening on :%s", cfg.Port)
			return r.Run(":" + cfg.Port)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Println("schema is up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Ensure the admin account exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
				return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are required for seeding")
			}

			db, err := database.Open(cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash admin password: %w", err)
			}

			users := repository.NewUserRepository(db)
			u, err := users.EnsureAdmin(context.Background(), cfg.AdminName, cfg.AdminEmail, string(hash))
			if err != nil {
				return err
			}
			log.Printf("admin account ready: %s (id=%d)", u.Email, u.ID)
			return nil
		},
	}
}
