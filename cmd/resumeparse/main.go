package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BerylCAtieno/resume-autofill-api/internal/config"
	"github.com/BerylCAtieno/resume-autofill-api/internal/extractor"
	"github.com/BerylCAtieno/resume-autofill-api/internal/models"
	"github.com/BerylCAtieno/resume-autofill-api/internal/services"
	"github.com/BerylCAtieno/resume-autofill-api/internal/utils"
)

func main() {
	timeout := flag.Duration("timeout", 20*time.Second, "upper bound on text extraction")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: resumeparse [-timeout 20s] <file.pdf|file.docx>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Logs go to stderr so stdout stays machine-readable.
	logger := utils.NewLoggerWithWriter(*logLevel, os.Stderr)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := &config.Config{ExtractTimeout: *timeout}
	svc := services.NewResumeService(extractor.New(logger.Logger), cfg, logger)

	start := time.Now()
	resp, err := svc.Prefill(context.Background(), &models.PrefillRequest{
		File:     data,
		Filename: filepath.Base(path),
	})
	if err != nil {
		logger.Error("resume parse failed",
			"path", path,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}

	logger.Info("resume parsed",
		"path", path,
		"matched", resp.Fields.Matched(),
		"duration_ms", time.Since(start).Milliseconds())
}
