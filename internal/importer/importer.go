// Package importer bulk-loads custom terminology from Excel or CSV files.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/nchub/internal/store"
	"github.com/example/nchub/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	TermColumn       string // Column with the term
	DefinitionColumn string // Column with the definition
	FrameworkColumn  string // Column with the related framework
	DifficultyColumn string // Column with the difficulty
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		TermColumn:       "A",
		DefinitionColumn: "B",
		FrameworkColumn:  "C",
		DifficultyColumn: "D",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportTerms imports custom terms from an Excel or CSV file into the store.
func ImportTerms(ctx context.Context, st *store.Store, config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	if ext == ".csv" {
		return importFromCSV(ctx, st, config)
	}
	return importFromExcel(ctx, st, config)
}

func importFromExcel(ctx context.Context, st *store.Store, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	existing := existingTermSet(st)

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		if err := processRow(ctx, st, row, config, existing, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}

	return result, nil
}

func importFromCSV(ctx context.Context, st *store.Store, config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	existing := existingTermSet(st)

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++

		if err := processRow(ctx, st, row, config, existing, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}

	return result, nil
}

func processRow(ctx context.Context, st *store.Store, row []string, config ImportConfig, existing map[string]bool, result *ImportResult) error {
	var term, definition, framework, difficulty string

	if colIdx := columnToIndex(config.TermColumn); colIdx < len(row) {
		term = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.DefinitionColumn); colIdx < len(row) {
		definition = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.FrameworkColumn); colIdx < len(row) {
		framework = strings.TrimSpace(row[colIdx])
	}
	if colIdx := columnToIndex(config.DifficultyColumn); colIdx < len(row) {
		difficulty = strings.TrimSpace(row[colIdx])
	}

	if term == "" {
		result.Skipped++
		return nil
	}
	if definition == "" {
		result.Skipped++
		return fmt.Errorf("term %q has no definition", term)
	}
	if existing[strings.ToLower(term)] {
		result.Skipped++
		return nil
	}

	saved := st.AddCustomTerm(ctx, models.CustomTerm{
		Term:       term,
		Definition: definition,
		Framework:  framework,
		Difficulty: difficulty,
	})
	if saved == nil {
		return fmt.Errorf("term %q was not saved", term)
	}

	existing[strings.ToLower(term)] = true
	result.Created++
	return nil
}

func existingTermSet(st *store.Store) map[string]bool {
	set := make(map[string]bool)
	for _, t := range st.CustomTerms() {
		set[strings.ToLower(t.Term)] = true
	}
	return set
}

// columnToIndex converts an Excel column letter to a zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for _, c := range column {
		index = index*26 + int(c-'A') + 1
	}
	return index - 1
}
