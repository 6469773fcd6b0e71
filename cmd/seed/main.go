package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/config"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/util"
)

// Seeds an admin account and baseline categories, and optionally imports
// stores from an xlsx file:
//
//	go run cmd/seed/main.go [stores.xlsx]
//
// Expected columns: name, category, description, address, province,
// expired_at (YYYY-MM-DD). The first row is treated as a header.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	gormDB, err := db.Open(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(gormDB)

	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := seedAdmin(gormDB); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	if err := seedCategories(gormDB); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}

	if len(os.Args) > 1 {
		count, err := importStoresFromXLSX(gormDB, os.Args[1])
		if err != nil {
			log.Fatal("Failed to import stores:", err)
		}
		fmt.Printf("Imported %d stores\n", count)
	}

	fmt.Println("Seed completed")
}

func seedAdmin(gormDB *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@topawards.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	var existing model.User
	err := gormDB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Printf("Admin user already exists: %s\n", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: &hash,
		Role:         model.RoleAdmin,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return err
	}
	fmt.Printf("Created admin user: %s\n", email)
	return nil
}

func seedCategories(gormDB *gorm.DB) error {
	names := []string{"Restaurants", "Cafes", "Beauty", "Hotels", "Shopping"}
	for _, name := range names {
		var existing model.Category
		err := gormDB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := gormDB.Create(&model.Category{Name: name, IsActive: true}).Error; err != nil {
			return err
		}
	}
	return nil
}

func importStoresFromXLSX(gormDB *gorm.DB, filePath string) (int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return 0, fmt.Errorf("no data rows found in XLSX file")
	}

	imported := 0
	slugsSeen := map[string]int{}

	for i, row := range rows[1:] {
		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		name := cell(0)
		categoryName := cell(1)
		if name == "" || categoryName == "" {
			fmt.Printf("Skipping row %d: missing name or category\n", i+2)
			continue
		}

		var category model.Category
		err := gormDB.Where("name = ?", categoryName).First(&category).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			category = model.Category{Name: categoryName, IsActive: true}
			if err := gormDB.Create(&category).Error; err != nil {
				return imported, err
			}
		} else if err != nil {
			return imported, err
		}

		slug := util.Slugify(name)
		if slug == "" {
			slug = fmt.Sprintf("store-%d", time.Now().UnixMilli())
		}
		if n, dup := slugsSeen[slug]; dup {
			slugsSeen[slug] = n + 1
			slug = fmt.Sprintf("%s-%d", slug, n+1)
		} else {
			slugsSeen[slug] = 1
		}

		var maxOrder int
		gormDB.Model(&model.Store{}).
			Where("category_id = ?", category.ID).
			Select("COALESCE(MAX(order_number), 0)").
			Scan(&maxOrder)

		store := model.Store{
			Name:        name,
			Slug:        slug,
			Description: cell(2),
			Address:     cell(3),
			Province:    cell(4),
			CategoryID:  category.ID,
			OrderNumber: maxOrder + 1,
			IsActive:    true,
		}
		if raw := cell(5); raw != "" {
			if expiredAt, err := time.Parse("2006-01-02", raw); err == nil {
				store.ExpiredAt = &expiredAt
			}
		}

		if err := gormDB.Create(&store).Error; err != nil {
			fmt.Printf("Skipping row %d: %v\n", i+2, err)
			continue
		}
		imported++
	}

	return imported, nil
}
