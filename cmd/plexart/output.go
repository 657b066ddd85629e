package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type markerKind int

const (
	markerInfo markerKind = iota
	markerOK
	markerWarn
	markerError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[91m"
	ansiGreen  = "\x1b[92m"
	ansiYellow = "\x1b[93m"
	ansiBlue   = "\x1b[94m"
)

// printer writes "LABEL: message" lines, coloring the label on a terminal.
type printer struct {
	out      io.Writer
	colorize bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: w, colorize: shouldColorize(w)}
}

func (p *printer) marker(kind markerKind, label, message string) {
	_, _ = fmt.Fprintln(p.out, renderMarker(kind, label, message, p.colorize))
}

func (p *printer) blank() {
	_, _ = fmt.Fprintln(p.out)
}

func renderMarker(kind markerKind, label, message string, colorize bool) string {
	tag := label + ":"
	if colorize {
		tag = markerColor(kind) + tag + ansiReset
	}
	if message == "" {
		return tag
	}
	return tag + " " + message
}

func markerColor(kind markerKind) string {
	switch kind {
	case markerOK:
		return ansiGreen
	case markerWarn:
		return ansiYellow
	case markerError:
		return ansiRed
	default:
		return ansiBlue
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// interactive reports whether stdin is attached to a terminal.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newLogger builds the diagnostic logger. --verbose forces debug.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl := parseLogLevel(level)
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
