package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/vikwalker/precheck/internal/common"
	"github.com/vikwalker/precheck/internal/extract"
	"github.com/vikwalker/precheck/internal/ingest"
	"github.com/vikwalker/precheck/internal/manifest"
	"github.com/vikwalker/precheck/internal/ocr"
	"github.com/vikwalker/precheck/internal/pack"
)

func main() {
	inDir := flag.String("in", "./in", "Input directory to search for PDF files")
	outDir := flag.String("out", "./out", "Output directory for the generated text artifact")
	withManifest := flag.Bool("manifest", false, "Also write an XLSX manifest of the run")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err == nil {
		logger.Debug(".env file loaded")
	}
	cfg := common.LoadConfig()

	files, err := ingest.ScanDir(*inDir)
	if err != nil {
		logger.Error("scan input directory", "dir", *inDir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Error("no PDF files found", "dir", *inDir)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Error("create output directory", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	ocrx := ocr.NewExtractor(ocr.Config{
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)
	svc := pack.NewService(extract.NewExtractor(ocrx, logger), logger)

	start := time.Now()
	run := svc.Build(context.Background(), files)

	for _, d := range run.Documents {
		logger.Info("document", "header", pack.PreviewHeader(d), "chars", len(d.Text))
	}
	for _, w := range run.Warnings {
		logger.Warn("run warning", "warning", w)
	}

	outPath := filepath.Join(*outDir, run.OutputName)
	if err := os.WriteFile(outPath, []byte(run.Text), 0o644); err != nil {
		logger.Error("write artifact", "path", outPath, "error", err)
		os.Exit(1)
	}

	if *withManifest {
		xlsx, err := manifest.NewService(logger).BuildXLSX(run)
		if err != nil {
			logger.Error("build manifest", "error", err)
			os.Exit(1)
		}
		mPath := filepath.Join(*outDir, run.ClientID+"_precheck_manifest.xlsx")
		if err := os.WriteFile(mPath, xlsx, 0o644); err != nil {
			logger.Error("write manifest", "path", mPath, "error", err)
			os.Exit(1)
		}
		logger.Info("manifest written", "path", mPath)
	}

	logger.Info("pack written",
		"path", outPath,
		"client_id", run.ClientID,
		"documents", len(run.Documents),
		"bytes", len(run.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
