package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/osse101/BossRush_Go/internal/bootstrap"
	"github.com/osse101/BossRush_Go/internal/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Logs go to stderr so the report can be piped
	cfg, err := bootstrap.SetupWithWriter(bootstrap.ServiceReport, os.Stderr)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		return 1
	}

	logPath := flag.String("log", cfg.BattleLogPath, "battle log to read")
	format := flag.String("format", report.FormatText, "output format: text or json")
	players := flag.Bool("players", false, "include per-player totals")
	lang := flag.String("lang", "en", "BCP 47 language tag for number formatting")
	flag.Parse()

	tag, err := language.Parse(*lang)
	if err != nil {
		slog.Error("Invalid language", "lang", *lang, "error", err)
		return 2
	}

	f, err := os.Open(*logPath)
	if err != nil {
		slog.Error(report.ErrMsgFailedToOpenLog, "path", *logPath, "error", err)
		return 1
	}
	defer f.Close()

	tally, err := report.Parse(f)
	if err != nil {
		slog.Error("Failed to parse battle log", "path", *logPath, "error", err)
		return 1
	}

	if err := report.Write(os.Stdout, tally, report.Options{Format: *format, Players: *players, Language: tag}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
