package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetUserConfigDir(t *testing.T) {
	tests := []struct {
		name      string
		xdgConfig string
		expectXDG bool
	}{
		{
			name:      "XDG_CONFIG_HOME set",
			xdgConfig: "/custom/config",
			expectXDG: true,
		},
		{
			name:      "without XDG",
			xdgConfig: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			dir, err := getUserConfigDir()
			if err != nil {
				t.Fatalf("getUserConfigDir() error = %v", err)
			}

			if tt.expectXDG {
				expected := filepath.Join(tt.xdgConfig, "tagq")
				if dir != expected {
					t.Errorf("getUserConfigDir() = %q, want %q", dir, expected)
				}
				return
			}

			if !filepath.IsAbs(dir) {
				t.Errorf("getUserConfigDir() returned non-absolute path: %q", dir)
			}
			if filepath.Base(dir) != "tagq" {
				t.Errorf("getUserConfigDir() = %q, want basename 'tagq'", dir)
			}
			if runtime.GOOS == "linux" && filepath.Base(filepath.Dir(dir)) != ".config" {
				t.Errorf("getUserConfigDir() = %q, want it under ~/.config", dir)
			}
		})
	}
}

func TestGetProjectRoot(t *testing.T) {
	root, err := getProjectRoot()
	if err != nil {
		t.Fatalf("getProjectRoot() error = %v", err)
	}

	if !filepath.IsAbs(root) {
		t.Errorf("getProjectRoot() = %q, want absolute path", root)
	}

	if _, err := os.Stat(root); err != nil {
		t.Errorf("getProjectRoot() returned path that doesn't exist: %v", err)
	}
}

func TestPathManagerPaths(t *testing.T) {
	pm, err := newPathManager()
	if err != nil {
		t.Fatalf("newPathManager() error = %v", err)
	}

	tests := []struct {
		name   string
		getter func() string
	}{
		{name: "ConfigDir", getter: pm.ConfigDir},
		{name: "ProjectConfigDir", getter: pm.ProjectConfigDir},
		{name: "ProjectConfigFile", getter: pm.ProjectConfigFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.getter()
			if result == "" {
				t.Errorf("%s() returned empty string", tt.name)
			}
			if !filepath.IsAbs(result) {
				t.Errorf("%s() = %q, want absolute path", tt.name, result)
			}
		})
	}
}

func TestPathManagerFilterSearchPaths(t *testing.T) {
	pm, err := newPathManager()
	if err != nil {
		t.Fatalf("newPathManager() error = %v", err)
	}

	paths := pm.FilterSearchPaths()
	if len(paths) != 2 {
		t.Fatalf("FilterSearchPaths() returned %d paths, want 2", len(paths))
	}

	if paths[0] != pm.ProjectConfigDir() {
		t.Errorf("FilterSearchPaths()[0] = %q, want %q", paths[0], pm.ProjectConfigDir())
	}

	if paths[1] != pm.ConfigDir() {
		t.Errorf("FilterSearchPaths()[1] = %q, want %q", paths[1], pm.ConfigDir())
	}
}

func TestFindFilterFile(t *testing.T) {
	projectDir := t.TempDir()
	chdir(t, projectDir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	ResetPathManager()
	t.Cleanup(ResetPathManager)

	if err := InitPaths(); err != nil {
		t.Fatalf("InitPaths() error = %v", err)
	}

	if got := FindFilterFile(); got != "" {
		t.Fatalf("FindFilterFile() = %q, want empty with no files", got)
	}

	userFile := filepath.Join(GetConfigDir(), DefaultFilterFilename)
	writeFile(t, userFile, "filters: []\n")
	if got := FindFilterFile(); got != userFile {
		t.Errorf("FindFilterFile() = %q, want user file %q", got, userFile)
	}

	projectFile := filepath.Join(filepath.Dir(GetProjectConfigFile()), DefaultFilterFilename)
	writeFile(t, projectFile, "filters: []\n")
	if got := FindFilterFile(); got != projectFile {
		t.Errorf("FindFilterFile() = %q, want project file %q", got, projectFile)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
