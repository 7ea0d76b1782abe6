package services

import (
	"encoding/csv"
	"strings"

	"envportal/internal/logger"
)

// ExportService renders filtered admin rows as CSV. encoding/csv handles
// quoting, so embedded commas and quotes in any field survive a round trip.
type ExportService struct {
	log logger.Logger
}

func NewExportService() *ExportService {
	return &ExportService{log: logger.New("ExportService")}
}

func (s *ExportService) BuildCSV(headers []string, rows [][]string) (string, error) {
	log := s.log.Function("BuildCSV")

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(headers); err != nil {
		return "", log.Err("failed to write CSV header", err)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", log.Err("failed to write CSV row", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", log.Err("failed to flush CSV", err)
	}

	return sb.String(), nil
}
