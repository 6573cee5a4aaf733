package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	// ErrNoHome indicates that the user's home directory could not be determined
	ErrNoHome = errors.New("unable to determine home directory")

	// ErrPathManagerInit indicates that the PathManager failed to initialize
	ErrPathManagerInit = errors.New("failed to initialize path manager")
)

const (
	appDirName = "tagq"

	// projectDirName is the project-local config directory, relative to the working directory
	projectDirName = ".tagq"

	// DefaultFilterFilename is the default name for a named filter file
	DefaultFilterFilename = "filters.yaml"
)

// PathManager manages all file system paths for tagq
type PathManager struct {
	configDir   string // User config directory
	projectRoot string // Current working directory
}

// newPathManager creates and initializes a new PathManager
func newPathManager() (*PathManager, error) {
	configDir, err := getUserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get config directory: %w", err)
	}

	projectRoot, err := getProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("get project root: %w", err)
	}

	return &PathManager{
		configDir:   configDir,
		projectRoot: projectRoot,
	}, nil
}

// getUserConfigDir returns the platform-appropriate user config directory
func getUserConfigDir() (string, error) {
	// Check XDG_CONFIG_HOME first (works on all platforms)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNoHome
	}

	switch runtime.GOOS {
	case "darwin":
		// prefer XDG-style ~/.config when it exists
		dotConfigDir := filepath.Join(homeDir, ".config")
		if info, err := os.Stat(dotConfigDir); err == nil && info.IsDir() {
			return filepath.Join(dotConfigDir, appDirName), nil
		}
		return filepath.Join(homeDir, "Library", "Application Support", appDirName), nil

	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName), nil
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appDirName), nil

	default:
		return filepath.Join(homeDir, ".config", appDirName), nil
	}
}

// getProjectRoot returns the current working directory
func getProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get current directory: %w", err)
	}
	return cwd, nil
}

// ConfigDir returns the user config directory
func (pm *PathManager) ConfigDir() string {
	return pm.configDir
}

// ProjectConfigDir returns the project-level config directory (.tagq/)
func (pm *PathManager) ProjectConfigDir() string {
	return filepath.Join(pm.projectRoot, projectDirName)
}

// ProjectConfigFile returns the path to the project-local config file
func (pm *PathManager) ProjectConfigFile() string {
	return filepath.Join(pm.ProjectConfigDir(), "config.yaml")
}

// FilterSearchPaths returns directories to search for filter files
// Search order: project config dir → user config dir
func (pm *PathManager) FilterSearchPaths() []string {
	return []string{
		pm.ProjectConfigDir(),
		pm.configDir,
	}
}

// Package-level singleton with lazy initialization
var (
	pathManager     *PathManager
	pathManagerOnce sync.Once
	pathManagerErr  error
	pathManagerMu   sync.RWMutex // Protects pathManager for reset operations
)

// getPathManager returns the global PathManager, initializing it on first call
func getPathManager() (*PathManager, error) {
	pathManagerMu.RLock()
	if pathManager != nil {
		defer pathManagerMu.RUnlock()
		return pathManager, pathManagerErr
	}
	pathManagerMu.RUnlock()

	pathManagerMu.Lock()
	defer pathManagerMu.Unlock()

	// Double-check after acquiring write lock
	if pathManager != nil {
		return pathManager, pathManagerErr
	}

	pathManagerOnce.Do(func() {
		pathManager, pathManagerErr = newPathManager()
	})
	return pathManager, pathManagerErr
}

// InitPaths initializes the path manager. Must be called early in application startup.
func InitPaths() error {
	_, err := getPathManager()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPathManagerInit, err)
	}
	return nil
}

// ResetPathManager resets the path manager singleton for testing purposes.
func ResetPathManager() {
	pathManagerMu.Lock()
	defer pathManagerMu.Unlock()
	pathManager = nil
	pathManagerErr = nil
	pathManagerOnce = sync.Once{}
}

// mustGetPathManager returns the global PathManager or panics if not initialized.
func mustGetPathManager() *PathManager {
	pm, err := getPathManager()
	if err != nil {
		panic(fmt.Sprintf("path manager not initialized: %v (call InitPaths() first)", err))
	}
	return pm
}

// Exported accessor functions
// Note: These functions panic if InitPaths() has not been called successfully.

// GetConfigDir returns the user config directory
func GetConfigDir() string {
	return mustGetPathManager().ConfigDir()
}

// GetProjectConfigFile returns the path to the project-local config file
func GetProjectConfigFile() string {
	return mustGetPathManager().ProjectConfigFile()
}

// GetFilterSearchPaths returns directories to search for filter files
func GetFilterSearchPaths() []string {
	return mustGetPathManager().FilterSearchPaths()
}

// FindFilterFile returns the first existing filters.yaml.
// Ordering: project config dir, user config dir, then cwd. Empty if none exists.
func FindFilterFile() string {
	pm := mustGetPathManager()

	candidates := make([]string, 0, 3)
	for _, dir := range pm.FilterSearchPaths() {
		candidates = append(candidates, filepath.Join(dir, DefaultFilterFilename))
	}
	candidates = append(candidates, DefaultFilterFilename)

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
