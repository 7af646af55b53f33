package main

import (
	"fmt"

	"github.com/jswierad/htmlgrid"
	"github.com/jswierad/htmlgrid/convert"
	"github.com/jswierad/htmlgrid/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	sources, err := c.sources()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrid.ErrorMessage(err))
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no inputs. Pass HTML files or use --dir.\n")
		return htmlgrid.Errorf(htmlgrid.EINVALID, "no inputs")
	}

	if c.Preview {
		return c.preview(deps, sources)
	}

	progress := func(event convert.ProgressEvent) {
		switch event.Type {
		case convert.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Converting %d files\n", event.Total)
		case convert.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Input, event.Error)
		case convert.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	summary, err := deps.Converter.Run(deps.Ctx, sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrid.ErrorMessage(err))
		return err
	}

	for _, r := range summary.Reports {
		if r.Status != htmlgrid.StatusSuccess {
			continue
		}
		fmt.Fprintf(deps.Stdout, "  %s -> %s (%d tables, %d records)\n",
			r.Input, r.OutputPath, r.TableCount, r.ContentRecordCount)
		for _, w := range r.Warnings {
			fmt.Fprintf(deps.Stdout, "    warning: %s\n", w)
		}
	}

	fmt.Fprintf(deps.Stdout, "Done: %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)

	if summary.Failed > 0 {
		return htmlgrid.Errorf(htmlgrid.EINVALID, "%d of %d conversions failed", summary.Failed, len(summary.Reports))
	}
	return nil
}

// sources resolves the input list from positional arguments and --dir.
func (c *ConvertCmd) sources() ([]htmlgrid.Source, error) {
	var sources []htmlgrid.Source
	for _, input := range c.Inputs {
		sources = append(sources, fs.NewFile(input))
	}
	if c.Dir != "" {
		discovered, err := fs.DiscoverInputs(c.Dir)
		if err != nil {
			return nil, err
		}
		sources = append(sources, discovered...)
	}
	return sources, nil
}

// preview prints document statistics without converting.
func (c *ConvertCmd) preview(deps *Dependencies, sources []htmlgrid.Source) error {
	for _, src := range sources {
		text, err := src.Read(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", htmlgrid.ErrorMessage(err))
			return err
		}

		stats, err := deps.Inspector.Inspect(text)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", src.Name(), htmlgrid.ErrorMessage(err))
			return err
		}

		title := stats.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", src.Name(), title)
		fmt.Fprintf(deps.Stdout, "  tables=%d headings=%d paragraphs=%d list items=%d\n",
			stats.Tables, stats.Headings, stats.Paragraphs, stats.ListItems)
	}
	return nil
}
