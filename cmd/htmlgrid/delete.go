package main

import (
	"fmt"

	"github.com/jswierad/htmlgrid"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return htmlgrid.Errorf(htmlgrid.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Conversions.DeleteConversion(deps.Ctx, c.ID); err != nil {
		if htmlgrid.ErrorCode(err) == htmlgrid.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: conversion %q not found. Use 'htmlgrid history' to see recent conversions.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted conversion %q\n", c.ID)
	return nil
}
