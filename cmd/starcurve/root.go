package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/astrolab/starcurve/internal/archive"
	"github.com/astrolab/starcurve/internal/config"
	"github.com/astrolab/starcurve/internal/database"
)

var (
	cfgFile string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "starcurve",
	Short: "Query an astronomical archive and work with light curves",
	Long: `Starcurve is a CLI tool to query a MAST-style astronomical archive by
target name, list and download time-series data products, and read, plot
and summarize the resulting light curves. Downloads are tracked in a
local SQLite manifest.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default is ./starcurve.db)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// getDBPath returns the database file path (local directory)
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return "starcurve.db"
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// openDB opens the database connection
func openDB() (*database.DB, error) {
	path := getDBPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	return database.New(path)
}

// newArchiveClient builds the archive client from config
func newArchiveClient(cfg *config.Config) *archive.Client {
	return archive.New(cfg.GetBaseURL(), cfg.GetTimeout())
}
