package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"guess-that-official/internal/config"
	"guess-that-official/internal/db"
)

type officialRecord struct {
	Slug      string
	Name      string
	Position  string
	State     string
	PhotoPath string
	FunFact   string
	Category  string
	IsFake    bool
}

// seed-officials loads a roster CSV into the officials table. Columns:
// slug,name,position,state,photo_path,fun_fact,category,is_fake
func main() {
	filePath := flag.String("file", "officials.csv", "path to officials csv")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	records, err := readOfficials(*filePath)
	if err != nil {
		log.Fatalf("failed to read officials: %v", err)
	}

	inserted := 0
	for _, record := range records {
		entry := db.Official{
			Slug:      record.Slug,
			Name:      record.Name,
			Position:  record.Position,
			State:     record.State,
			PhotoPath: record.PhotoPath,
			FunFact:   record.FunFact,
			Category:  record.Category,
			IsFake:    record.IsFake,
		}
		if err := conn.FirstOrCreate(&entry, db.Official{Slug: entry.Slug}).Error; err != nil {
			log.Fatalf("failed to upsert official: %v", err)
		}
		inserted++
	}

	log.Printf("loaded %d officials", inserted)
}

func readOfficials(path string) ([]officialRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []officialRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 5 {
			continue
		}
		record := officialRecord{
			Slug:      strings.TrimSpace(row[0]),
			Name:      strings.TrimSpace(row[1]),
			Position:  strings.TrimSpace(row[2]),
			State:     strings.TrimSpace(row[3]),
			PhotoPath: strings.TrimSpace(row[4]),
		}
		if record.Slug == "" || record.Name == "" {
			continue
		}
		if len(row) > 5 {
			record.FunFact = strings.TrimSpace(row[5])
		}
		if len(row) > 6 {
			record.Category = strings.TrimSpace(row[6])
		}
		if record.Category == "" {
			record.Category = "general"
		}
		if len(row) > 7 {
			record.IsFake = strings.EqualFold(strings.TrimSpace(row[7]), "true")
		}
		records = append(records, record)
	}
	return records, nil
}
