package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/config"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/model"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/db"
	"github.com/xuri/excelize/v2"
)

// Seeds the cafes table, either from an xlsx directory dump or from the
// built-in samples when no file is given.
//
//	go run cmd/seed/main.go [xlsx_file_path]
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	var cafes []model.Cafe
	if len(os.Args) >= 2 {
		filePath := os.Args[1]
		fmt.Printf("Reading XLSX file: %s\n", filePath)
		cafes, err = readCafesFromXLSX(filePath)
		if err != nil {
			log.Fatal("Failed to read XLSX:", err)
		}
	} else {
		fmt.Println("No file given, seeding built-in samples")
		cafes = sampleCafes()
	}

	fmt.Printf("Total cafes to import: %d\n", len(cafes))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	if err := db.GetDB().CreateInBatches(cafes, 500).Error; err != nil {
		log.Fatal("Failed to bulk create cafes:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total cafes imported: %d\n", len(cafes))
}

// readCafesFromXLSX expects the column layout produced by the directory
// export: Name, Country, State, City, Street, Location, Lat, Lng, Opening,
// Closing, AvgPrice, Wifi, AC, Parking, Socket, Featured
func readCafesFromXLSX(filePath string) ([]model.Cafe, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var cafes []model.Cafe
	seen := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}
		if len(row) < 16 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		city := strings.TrimSpace(row[3])
		if name == "" || city == "" {
			skipped++
			continue
		}

		// Skip duplicates within the file
		dedupeKey := strings.ToLower(name + "|" + city)
		if seen[dedupeKey] {
			skipped++
			continue
		}
		seen[dedupeKey] = true

		cafe := model.Cafe{
			Name:          name,
			Country:       strings.TrimSpace(row[1]),
			State:         strings.TrimSpace(row[2]),
			City:          city,
			AddressStreet: strings.TrimSpace(row[4]),
			Location:      strings.TrimSpace(row[5]),
			OpeningTime:   strings.TrimSpace(row[8]),
			ClosingTime:   strings.TrimSpace(row[9]),
			HasWifi:       parseBool(row[11]),
			HasAC:         parseBool(row[12]),
			HasParking:    parseBool(row[13]),
			HasSocket:     parseBool(row[14]),
			IsFeatured:    parseBool(row[15]),
		}

		if lat, err := strconv.ParseFloat(strings.TrimSpace(row[6]), 64); err == nil {
			if lng, err := strconv.ParseFloat(strings.TrimSpace(row[7]), 64); err == nil {
				cafe.Latitude = &lat
				cafe.Longitude = &lng
			}
		}
		if price, err := strconv.ParseFloat(strings.TrimSpace(row[10]), 64); err == nil {
			cafe.AvgPrice = price
		}

		cafes = append(cafes, cafe)
	}

	fmt.Printf("Skipped rows: %d\n", skipped)
	return cafes, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "y":
		return true
	}
	return false
}

func floatPtr(f float64) *float64 { return &f }

func sampleCafes() []model.Cafe {
	return []model.Cafe{
		{
			Name:        "North End Coffee Roasters",
			Country:     model.CountryBangladesh,
			City:        "Dhaka",
			Location:    "Gulshan 2, Dhaka",
			Latitude:    floatPtr(23.7946),
			Longitude:   floatPtr(90.4145),
			OpeningTime: "08:00",
			ClosingTime: "22:00",
			AvgPrice:    450,
			HasWifi:     true,
			HasAC:       true,
			HasSocket:   true,
			IsFeatured:  true,
		},
		{
			Name:        "Crimson Cup Banani",
			Country:     model.CountryBangladesh,
			City:        "Dhaka",
			Location:    "Banani 11, Dhaka",
			Latitude:    floatPtr(23.7937),
			Longitude:   floatPtr(90.4066),
			OpeningTime: "09:00",
			ClosingTime: "23:00",
			AvgPrice:    380,
			HasWifi:     true,
			HasAC:       true,
			Amenities:   model.AmenityInfo{Generator: true},
		},
		{
			Name:          "Counter Culture Coffee",
			Country:       model.CountryUSA,
			State:         "NC",
			City:          "Durham",
			AddressStreet: "4911 S Alston Ave",
			Latitude:      floatPtr(35.9208),
			Longitude:     floatPtr(-78.8784),
			OpeningTime:   "07:00",
			ClosingTime:   "18:00",
			AvgPrice:      650,
			HasWifi:       true,
			HasParking:    true,
			HasSocket:     true,
		},
		{
			Name:          "Night Owl Workspace",
			Country:       model.CountryUSA,
			State:         "NC",
			City:          "Cary",
			AddressStreet: "210 E Chatham St",
			OpeningTime:   "22:00",
			ClosingTime:   "02:00",
			AvgPrice:      250,
			HasWifi:       true,
			HasSocket:     true,
		},
	}
}
