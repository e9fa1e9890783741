package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"travel-backoffice-backend/internal/config"
	"travel-backoffice-backend/internal/database"
	"travel-backoffice-backend/internal/database/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"travel-backoffice-backend/internal/service"
)

// Provisions an admin employee: a row in the employees table plus the
// matching auth-provider user. Safe to re-run; an existing row with the
// same email is promoted instead of duplicated.
//
// Usage:
//
//	go run scripts/create_admin_user.go -email admin@travloger.in -name "Admin" -phone "+919876543210"
func main() {
	email := flag.String("email", "", "admin email (required)")
	name := flag.String("name", "", "admin display name (required)")
	phone := flag.String("phone", "", "admin phone in E.164 form (required)")
	flag.Parse()

	if *email == "" || *name == "" || *phone == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	employee, err := upsertAdminEmployee(db, *email, *name, *phone)
	if err != nil {
		log.Fatalf("Failed to upsert admin employee: %v", err)
	}

	// Provision the auth-provider user when a provider is configured.
	// A failure here leaves a valid employee row; re-running the script
	// retries the provisioning.
	if cfg.AuthProviderURL != "" {
		authProvider := service.NewAuthProviderService(cfg)
		authUserID, err := authProvider.CreateUser(employee.Email, employee.Name, string(models.EmployeeRoleAdmin))
		if err != nil {
			log.Printf("Warning: auth provider user creation failed: %v", err)
		} else if authUserID != "" && employee.AuthUserID != authUserID {
			employee.AuthUserID = authUserID
			if err := db.Save(employee).Error; err != nil {
				log.Fatalf("Failed to store auth user id: %v", err)
			}
		}
	}

	fmt.Printf("Admin employee ready: %s (%s)\n", employee.Name, employee.ID)
}

func upsertAdminEmployee(db *gorm.DB, email, name, phone string) (*models.Employee, error) {
	var employee models.Employee
	err := db.Where("email = ?", email).First(&employee).Error
	switch {
	case err == nil:
		employee.Name = name
		employee.Phone = phone
		employee.Role = models.EmployeeRoleAdmin
		employee.Status = models.EmployeeStatusActive
		if err := db.Save(&employee).Error; err != nil {
			return nil, err
		}
		return &employee, nil
	case err == gorm.ErrRecordNotFound:
		employee = models.Employee{
			Name:   name,
			Email:  email,
			Phone:  phone,
			Role:   models.EmployeeRoleAdmin,
			Status: models.EmployeeStatusActive,
		}
		if err := db.Create(&employee).Error; err != nil {
			return nil, err
		}
		return &employee, nil
	default:
		return nil, err
	}
}
