package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/jswierad/htmlgrid"
	"github.com/jswierad/htmlgrid/convert"
	"github.com/jswierad/htmlgrid/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	DB          *sqlite.DB
	Conversions htmlgrid.ConversionService
	Converter   *convert.Converter
	Inspector   htmlgrid.Inspector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert ConvertCmd `cmd:"" help:"Convert HTML documents to spreadsheet workbooks"`
	History HistoryCmd `cmd:"" help:"List past conversions"`
	Show    ShowCmd    `cmd:"" help:"Show one conversion report in full"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a conversion report from history"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Inputs      []string `arg:"" optional:"" help:"HTML files to convert"`
	Dir         string   `short:"d" help:"Convert every HTML file in a directory"`
	Out         string   `short:"o" help:"Output directory (default: next to each input)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent conversion limit"`
	Preview     bool     `short:"p" help:"Show document statistics without converting"`
	Verbose     bool     `short:"v" help:"Log each workbook write"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Input  string `help:"Filter by input path"`
	Status string `help:"Filter by status" enum:"success,failed," default:""`
	Limit  int    `default:"20" help:"Maximum number of reports to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Conversion report ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Conversion report ID"`
	Force bool   `help:"Confirm deletion"`
}
