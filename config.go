package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shibukawa/configdir"
	log "github.com/sirupsen/logrus"
)

// The reference public vendor database used when no datasource is configured.
const (
	defaultDataSourceURL  = "https://maclookup.app/downloads/json-database/get-db"
	defaultDataSourceName = sourceMacLookupApp
	datasourceFileName    = "datasource.json"
	databaseFileName      = "database.json"
)

type LogConfig struct {
	Level string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	Type  string `help:"Log format" enum:"json,console" default:"console"`
}

func (l *LogConfig) Apply() {
	switch l.Level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	default:
		log.SetLevel(log.ErrorLevel)
	}
	switch l.Type {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{})
	}
}

// AppDir finds the per-user data directory, creating it if needed.
func AppDir() (string, error) {
	configDirs := configdir.New("", serviceName)
	folders := configDirs.QueryFolders(configdir.Global)
	if len(folders) == 0 {
		return "", errors.New("unable to find data path")
	}

	dir := folders[0].Path
	if _, err := os.Stat(dir); err != nil {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to make data directory: %w", err)
		}
	}
	return dir, nil
}

// DatasourcePath resolves the datasource config path, honoring the cli override.
func DatasourcePath() (string, error) {
	if flags.Datasource != "" {
		return flags.Datasource, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, datasourceFileName), nil
}

// DatabasePath resolves the vendor database path, honoring the cli override.
func DatabasePath() (string, error) {
	if flags.Database != "" {
		return flags.Database, nil
	}
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, databaseFileName), nil
}

// TryLoadDataSource reads the persisted datasource config. A missing file is
// not an error, the caller decides whether to initialize a default.
func TryLoadDataSource(path string) (*DataSource, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read datasource %s: %w", path, err)
	}

	ds := new(DataSource)
	if err = json.Unmarshal(data, ds); err != nil {
		return nil, fmt.Errorf("malformed datasource %s: %w", path, err)
	}
	return ds, nil
}

// InitializeDefaultDataSource persists the default datasource config and
// returns it.
func InitializeDefaultDataSource(path string) (*DataSource, error) {
	ds := &DataSource{
		URL:  defaultDataSourceURL,
		Name: defaultDataSourceName,
	}

	data, err := json.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err = WriteFileAtomic(path, data, 0644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return ds, nil
}

// SetupDataSource loads the datasource config, initializing the default when
// none is persisted yet.
func SetupDataSource(path string) (*DataSource, error) {
	ds, err := TryLoadDataSource(path)
	if err != nil {
		return nil, err
	}
	if ds != nil {
		return ds, nil
	}

	log.Debugf("No datasource at %s, writing default.", path)
	return InitializeDefaultDataSource(path)
}
