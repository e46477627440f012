package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ledgerly/internal/categorizer"
	"ledgerly/internal/config"
	"ledgerly/internal/database"
	"ledgerly/internal/ingest"
	"ledgerly/internal/logger"
	"ledgerly/internal/models"
	"ledgerly/internal/services"
	"ledgerly/internal/store"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func main() {
	file := flag.String("file", "", "CSV or XLSX export to import (required)")
	replace := flag.Bool("replace", false, "Replace the whole ledger instead of appending")
	sheet := flag.String("sheet", "", "Worksheet to read from an XLSX file (default: Ledger, else the first sheet)")
	flag.Parse()

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()

	if *file == "" {
		logger.Get().Fatal("Error: --file is required")
	}

	// Create context with timeout so the CLI doesn't hang on a stuck store
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, appConfig, *file, *sheet, *replace); err != nil {
		logger.Get().Fatalf("Import failed: %v", err)
	}
}

func run(ctx context.Context, appConfig *config.Config, path, sheet string, replace bool) error {
	log := logger.Get()

	txs, rowErrors, err := readFile(path, sheet)
	if err != nil {
		return err
	}
	for _, rowErr := range rowErrors {
		log.Warnw("Skipped row", "file", path, "row", rowErr.Row, "reason", rowErr.Reason)
	}
	log.Infow("Parsed import file", "file", path, "rows", len(txs), "skipped", len(rowErrors))

	var db *gorm.DB
	if appConfig.StoreBackend == store.BackendSQL || appConfig.StoreBackend == "" {
		dbConfig, err := database.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load database configuration: %w", err)
		}
		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		defer dbManager.Close()
		if err := dbManager.Migrate(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		db = dbManager.DB()
	}

	ledgerStore, err := store.New(store.Options{
		Backend:      appConfig.StoreBackend,
		WorkbookPath: appConfig.WorkbookPath,
	}, db)
	if err != nil {
		return fmt.Errorf("failed to open ledger store: %w", err)
	}

	rules := categorizer.Default()
	if appConfig.CategoriesFile != "" {
		if rules, err = categorizer.LoadFile(appConfig.CategoriesFile); err != nil {
			return fmt.Errorf("failed to load category rules: %w", err)
		}
	}

	result, err := services.NewLedgerService(ledgerStore, rules).ImportTransactions(ctx, txs, replace)
	if err != nil {
		return err
	}

	services.NewAuditService(db).Log(services.ActionImportLedger, 0, "cli", map[string]interface{}{
		"file":     filepath.Base(path),
		"imported": result.Imported,
		"replaced": result.Replaced,
		"first_id": result.FirstID,
		"last_id":  result.LastID,
	})

	fmt.Printf("Imported %d transaction(s) (ids %d-%d), skipped %d row(s).\n",
		result.Imported, result.FirstID, result.LastID, len(rowErrors))
	return nil
}

func readFile(path, sheet string) ([]models.Transaction, []ingest.RowError, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return ingest.ParseCSV(f)

	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()

		if sheet == "" {
			sheet = store.LedgerSheet
			if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
				sheet = f.GetSheetName(0)
			}
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		return ingest.ParseRows(rows)

	default:
		return nil, nil, fmt.Errorf("unsupported file type %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}
