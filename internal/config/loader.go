// internal/config/loader.go

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LocateSettings searches from the start directory upward for a vsenv.toml
// file. Returns the absolute path of the first match, or "" when no file
// exists anywhere up the tree (not an error; the file is optional).
func LocateSettings(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}
	start, _ = filepath.Abs(start)

	dir := start
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return "", nil
}

// Load resolves settings from (lowest to highest precedence) built-in
// defaults, vsenv.toml, and VSENV_* environment variables. Returns the
// settings and the config path that was read, if any.
func Load(startDir string) (Settings, string, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("arch", DefaultArch)
	v.SetDefault("sdk", "")
	v.SetDefault("spectre", false)
	v.SetDefault("toolset", "")
	v.SetDefault("uwp", false)
	v.SetDefault("vsversion", "")
	v.SetEnvPrefix("VSENV")
	v.AutomaticEnv()

	path, err := LocateSettings(startDir)
	if err != nil {
		return Settings{}, "", err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, "", fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, "", fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, path, nil
}
