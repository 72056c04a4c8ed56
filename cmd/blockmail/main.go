package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Blockmail/blockmail/config"
	"github.com/Blockmail/blockmail/internal/domain"
	"github.com/Blockmail/blockmail/internal/repository"
	"github.com/Blockmail/blockmail/internal/service"
	"github.com/Blockmail/blockmail/pkg/logger"
)

// RenderRequest is the CLI input: a block list plus optional settings and
// preview text. Absent settings fall back to the configured defaults.
type RenderRequest struct {
	Settings    *domain.GlobalEmailSettings `json:"settings,omitempty"`
	PreviewText string                      `json:"previewText,omitempty"`
	Blocks      []domain.SemanticBlock      `json:"blocks"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blockmail: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	input := flag.String("input", "-", "render request JSON file, - for stdin")
	output := flag.String("output", "-", "output HTML file, - for stdout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.NewLoggerWithLevel(cfg.LogLevel)

	raw, err := readInput(*input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var req RenderRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("invalid render request: %w", err)
	}
	if len(req.Blocks) == 0 {
		return fmt.Errorf("render request contains no blocks")
	}

	settings := cfg.Defaults
	if req.Settings != nil {
		settings = *req.Settings
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	for i := range req.Blocks {
		if err := req.Blocks[i].Validate(); err != nil {
			return fmt.Errorf("blocks[%d]: %w", i, err)
		}
	}

	repo := repository.NewTemplateRepository(cfg.TemplateDir, log)
	renderer := service.NewRenderService(repo, log, cfg.Minify)
	doc := renderer.RenderBlocksToHTML(req.Blocks, settings, req.PreviewText)

	return writeOutput(*output, doc)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path, doc string) error {
	if path == "-" {
		_, err := os.Stdout.WriteString(doc)
		return err
	}
	return os.WriteFile(path, []byte(doc), 0o644)
}
