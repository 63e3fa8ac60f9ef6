package seed

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pharmapos/m/domain"
	"pharmapos/m/internal/ids"
)

// LoadCatalog ingests a medicine catalog CSV, skipping malformed rows.
// Columns: name, scientific_name, manufacturer, category, expiry_date
// (YYYY-MM-DD), quantity, price. Rows without an id column get a fresh one.
func LoadCatalog(csvPath string, src ids.Source, log *zap.Logger) []domain.Medicine {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Warn("unable to load medicine catalog", zap.String("path", csvPath), zap.Error(err))
		return nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Warn("unable to read catalog header", zap.Error(err))
		return nil
	}

	var medicines []domain.Medicine
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn("unable to read catalog row", zap.Error(err))
			continue
		}
		if len(record) < 7 {
			continue
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}

		expiry, err := domain.ParseDate(record[4])
		if err != nil {
			log.Warn("skipping catalog row with bad expiry", zap.String("name", name), zap.Error(err))
			continue
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(record[5]))
		if err != nil {
			log.Warn("skipping catalog row with bad quantity", zap.String("name", name), zap.Error(err))
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[6]), 64)
		if err != nil {
			log.Warn("skipping catalog row with bad price", zap.String("name", name), zap.Error(err))
			continue
		}

		med, err := domain.NewMedicine(
			src.Next(ids.PrefixMedicine),
			name,
			strings.TrimSpace(record[1]),
			strings.TrimSpace(record[2]),
			strings.TrimSpace(record[3]),
			expiry,
			quantity,
			price,
		)
		if err != nil {
			log.Warn("skipping invalid catalog row", zap.String("name", name), zap.Error(err))
			continue
		}
		medicines = append(medicines, med)
	}

	log.Info("loaded medicine catalog", zap.String("path", csvPath), zap.Int("rows", len(medicines)))
	return medicines
}
