package main

import (
	"fmt"

	"github.com/jswierad/htmlgrid"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	report, err := deps.Conversions.FindConversionByID(deps.Ctx, c.ID)
	if err != nil {
		if htmlgrid.ErrorCode(err) == htmlgrid.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: conversion %q not found. Use 'htmlgrid history' to see recent conversions.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:         %s\n", report.ID)
	fmt.Fprintf(deps.Stdout, "Input:      %s\n", report.Input)
	fmt.Fprintf(deps.Stdout, "Status:     %s\n", report.Status)
	fmt.Fprintf(deps.Stdout, "Converted:  %s\n", report.ConvertedAt.Format("2006-01-02 15:04:05"))
	if report.OutputPath != "" {
		fmt.Fprintf(deps.Stdout, "Output:     %s\n", report.OutputPath)
	}
	if report.Status == htmlgrid.StatusSuccess {
		fmt.Fprintf(deps.Stdout, "Tables:     %d\n", report.TableCount)
		fmt.Fprintf(deps.Stdout, "Records:    %d\n", report.ContentRecordCount)
	}
	if report.ContentHash != "" {
		fmt.Fprintf(deps.Stdout, "Hash:       %s\n", report.ContentHash)
	}
	if report.ErrorCode != "" {
		fmt.Fprintf(deps.Stdout, "Error:      [%s] %s\n", report.ErrorCode, report.Error)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(deps.Stdout, "Warning:    %s\n", w)
	}

	return nil
}
