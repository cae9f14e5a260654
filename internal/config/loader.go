package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Sources reported by Load when no file was used.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load reads the configuration.
// Search order: customPath -> ~/.chroma/configs/chroma.yaml ->
// ./configs/chroma.yaml -> embedded default -> DefaultChromaConfig.
//
// An explicit customPath must be readable and parse; files found by the
// search are skipped with a warning when they do not parse. Invalid values
// are repaired with a warning each. The second result names the source.
func Load(customPath string) (ChromaConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChromaConfig{}, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ChromaConfig{}, "", fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return sanitized(cfg, customPath), customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			log.Warn("config: skipping unparsable file", "path", path, "err", err)
			continue
		}
		return sanitized(cfg, path), path, nil
	}

	cfg, err := Parse(defaultChromaYAML)
	if err != nil {
		log.Warn("config: embedded defaults unusable, using built-in values", "err", err)
		return DefaultChromaConfig(), SourceBuiltin, nil
	}
	return sanitized(cfg, SourceEmbedded), SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults, so omitted keys keep their
// default values.
func Parse(data []byte) (ChromaConfig, error) {
	cfg := DefaultChromaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChromaConfig{}, err
	}
	if cfg.Palette == nil {
		cfg.Palette = DefaultPalette()
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg ChromaConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Save writes a configuration file, creating parent directories.
func Save(path string, cfg ChromaConfig) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns ~/.chroma/configs/chroma.yaml, or "" without a home.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chroma", "configs", "chroma.yaml")
}

func searchPaths() []string {
	var paths []string
	if p := UserConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "chroma.yaml"))
}

func sanitized(cfg ChromaConfig, source string) ChromaConfig {
	for _, w := range cfg.Sanitize() {
		log.Warn("config: "+w, "source", source)
	}
	return cfg
}
