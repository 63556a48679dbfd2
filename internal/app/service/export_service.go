package service

import (
	"fmt"
	"time"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	ExportCafes() (*excelize.File, string, error)
}

type exportService struct {
	cafeRepo repository.CafeRepository
}

func NewExportService(cafeRepo repository.CafeRepository) ExportService {
	return &exportService{cafeRepo: cafeRepo}
}

var exportHeaders = []string{
	"ID", "Name", "Slug", "Country", "State", "City", "Street Address",
	"Avg Price", "Rating", "Wifi", "AC", "Parking", "Socket",
	"Opening Time", "Closing Time", "Featured", "Created At",
}

// ExportCafes builds the full directory as an xlsx workbook and returns it
// with a timestamped filename
func (s *exportService) ExportCafes() (*excelize.File, string, error) {
	cafes, err := s.cafeRepo.ListAll()
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	const sheet = "Cafes"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", err
		}
	}

	yesNo := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}

	for i, cafe := range cafes {
		amenities := cafe.AmenitySet()
		row := []interface{}{
			cafe.ID, cafe.Name, cafe.Slug, cafe.Country, cafe.State, cafe.City,
			cafe.AddressStreet, cafe.AvgPrice, cafe.Rating,
			yesNo(amenities.Wifi), yesNo(amenities.AC), yesNo(amenities.Parking), yesNo(amenities.Socket),
			cafe.OpeningTime, cafe.ClosingTime, yesNo(cafe.IsFeatured),
			cafe.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	filename := fmt.Sprintf("workspot_cafes_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}
