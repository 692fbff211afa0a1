package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game configuration.
type validator interface {
	Validate() error
}

// LoadArena loads the arena configuration.
// Search order: customPath -> ~/.tilegrid/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
func LoadArena(customPath string) (ArenaConfig, error) {
	return load("arena.yaml", customPath, defaultArenaYAML, DefaultArenaConfig)
}

// LoadCrawl loads the crawl configuration.
// Search order: customPath -> ~/.tilegrid/configs/crawl.yaml -> ./configs/crawl.yaml -> embedded default
func LoadCrawl(customPath string) (CrawlConfig, error) {
	return load("crawl.yaml", customPath, defaultCrawlYAML, DefaultCrawlConfig)
}

// load walks the search order for filename. Files are decoded on top of the
// hardcoded defaults, so they only need the keys they change. An explicit
// customPath must read, parse and validate; the implicit locations are
// skipped when they fail.
func load[T validator](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := loadFile(path, defaults); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile[T validator](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, cfg.Validate() == nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilegrid", "configs", filename)
}
