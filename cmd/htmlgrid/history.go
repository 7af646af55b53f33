package main

import (
	"fmt"

	"github.com/jswierad/htmlgrid"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := htmlgrid.ConversionFilter{Limit: c.Limit}
	if c.Input != "" {
		filter.Input = &c.Input
	}
	if c.Status != "" {
		status := htmlgrid.Status(c.Status)
		filter.Status = &status
	}

	reports, err := deps.Conversions.FindConversions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrid.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No conversions found. Use 'htmlgrid convert' to create one.")
		return nil
	}

	for _, r := range reports {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-7s  %s\n",
			r.ID, r.ConvertedAt.Format("2006-01-02 15:04"), r.Status, r.Input)
	}

	return nil
}
