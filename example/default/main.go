package main

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash"
	eduformat "github.com/studycraft/go-eduformat"
	"gopkg.in/yaml.v2"
)

type config struct {
	DocPath     string `yaml:"doc_path"`
	BlocksPath  string `yaml:"blocks_path"`
	OptionsPath string `yaml:"options_path"`
	OutPath     string `yaml:"out_path"`

	LogLevel string `yaml:"log_level"`
}

const configPath = "config.yaml"

func main() {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	// Set log level based on configuration
	logLevel := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	opts := eduformat.Options{}
	if cfg.OptionsPath != "" {
		opts, err = eduformat.LoadOptionsFile(cfg.OptionsPath)
		if err != nil {
			fmt.Printf("Error loading formatting options: %v\n", err)
			return
		}
	}

	fileData, err := os.ReadFile(cfg.DocPath)
	if err != nil {
		fmt.Printf("Error reading document: %v\n", err)
		return
	}
	docContent := string(fileData)

	// When the upstream analysis step produced a block payload, render from
	// that instead of running the heuristic pipeline.
	if cfg.BlocksPath != "" {
		payload, err := os.ReadFile(cfg.BlocksPath)
		if err != nil {
			fmt.Printf("Error reading block payload: %v\n", err)
			return
		}
		blocks, err := eduformat.ParseContentBlocks(string(payload))
		if err != nil {
			fmt.Printf("Error parsing block payload: %v\n", err)
			return
		}
		opts.ContentBlocks = blocks
	}

	// Compare the input hash with the previous run to skip an unchanged
	// document.
	unchanged, err := checkDocHash(cfg.OutPath, docContent)
	if err != nil {
		fmt.Printf("Error checking document hash: %v\n", err)
		return
	}
	if unchanged {
		fmt.Println("Document unchanged since last run, nothing to do.")
		return
	}

	now := time.Now()
	markup := eduformat.Format(docContent, opts, logger)
	logger.Info("Formatted document",
		"duration in milliseconds", time.Since(now).Milliseconds(),
		"output bytes", len(markup))

	if err := os.WriteFile(cfg.OutPath, []byte(markup), 0o644); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		return
	}
	if err := saveDocHash(cfg.OutPath, docContent); err != nil {
		fmt.Printf("Error saving document hash: %v\n", err)
		return
	}

	fmt.Printf("Wrote %s\n", cfg.OutPath)
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if cfg.DocPath == "" {
		cfg.DocPath = "lesson.txt"
	}
	if cfg.OutPath == "" {
		cfg.OutPath = "lesson.html"
	}

	return &cfg, nil
}

// checkDocHash reports whether the document content matches the hash recorded
// by the previous run, stored in a sidecar file next to the output.
func checkDocHash(outPath, docContent string) (bool, error) {
	hashBs, err := os.ReadFile(outPath + ".hash")
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("error reading hash file: %w", err)
	}
	if len(hashBs) != 8 {
		return false, nil
	}

	return binary.BigEndian.Uint64(hashBs) == xxhash.Sum64String(docContent), nil
}

func saveDocHash(outPath, docContent string) error {
	hashBs := binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(docContent))
	return os.WriteFile(outPath+".hash", hashBs, 0o644)
}
