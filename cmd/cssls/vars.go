package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/rlch/cssls"
	"github.com/rlch/cssls/completion"
)

var ErrNoCustomProperties = errors.New("no custom properties found")

func varsCommand() *cli.Command {
	return &cli.Command{
		Name:      "vars",
		Usage:     "List the custom properties declared in CSS files",
		ArgsUsage: "[files or directories...]",
		Action:    runVars,
	}
}

func runVars(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := collectCSSFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return ErrNoCSSFiles
	}

	nameStyle := lipgloss.NewStyle()
	if isatty.IsTerminal(os.Stdout.Fd()) {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}

	var total int

	for _, file := range files {
		data, err := os.ReadFile(file) //nolint:gosec // G304: file path from user input is expected
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		doc := &cssls.Document{URI: absOrSelf(file), Text: string(data)}
		tree, _ := cssls.Parse(doc.Text)
		table := completion.Collect(doc, tree)

		if table.Len() == 0 {
			continue
		}

		rel := file
		if r, err := filepath.Rel(".", file); err == nil {
			rel = r
		}

		fmt.Printf("%s:\n", rel)

		for _, name := range table.Names() {
			value, _ := table.Get(name)
			fmt.Printf("  %s: %s\n", nameStyle.Render(name), value)
			total++
		}
	}

	if total == 0 {
		return ErrNoCustomProperties
	}

	return nil
}
