// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "HARDMODE_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	boltFileName   string
	sqliteFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	boltFilePath   string
	sqliteFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup.
func Initialize() error {
	once.Do(func() {
		paths = newPaths(os.Getenv(envName))
		initErr = paths.computePaths()
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		configDir:      "hardmode",
		configFileName: "config.yml",
		boltFileName:   "hardmode.db",
		sqliteFileName: "hardmode.sqlite",
		logFileName:    "hardmode.log",
	}

	env = strings.TrimSpace(env)
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("hardmode_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("hardmode_%s.sqlite", env)
		p.logFileName = fmt.Sprintf("hardmode_%s.log", env)
	}

	return p
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func BoltFilePath() string {
	return Must().boltFilePath
}

func SQLiteFilePath() string {
	return Must().sqliteFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.boltFilePath = filepath.Join(dataDir, p.boltFileName)
	p.sqliteFilePath = filepath.Join(dataDir, p.sqliteFileName)
	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
