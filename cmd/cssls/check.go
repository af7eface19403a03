package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/boyter/gocodewalker"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/rlch/cssls"
	"github.com/rlch/cssls/lsp"
)

// Check command errors.
var (
	ErrNoCSSFiles       = errors.New("no .css files found")
	ErrDiagnosticErrors = errors.New("css files contain errors")
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Parse CSS files and report syntax problems",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress per-file output, only set exit status",
			},
		},
		Action: runCheck,
	}
}

// checkStyles holds the output styling. Plain styles are used when
// stdout is not a terminal.
type checkStyles struct {
	path lipgloss.Style
	err  lipgloss.Style
	warn lipgloss.Style
	ok   lipgloss.Style
}

func newCheckStyles() checkStyles {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		plain := lipgloss.NewStyle()
		return checkStyles{path: plain, err: plain, warn: plain, ok: plain}
	}

	return checkStyles{
		path: lipgloss.NewStyle().Bold(true),
		err:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		warn: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		ok:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func runCheck(_ context.Context, cmd *cli.Command) error {
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

	styles := newCheckStyles()
	quiet := cmd.Bool("quiet")

	var hasErrors bool

	for _, file := range files {
		data, err := os.ReadFile(file) //nolint:gosec // G304: file path from user input is expected
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		content := string(data)
		_, diags := cssls.Parse(content)

		for _, d := range diags {
			if d.Severity == cssls.SeverityError {
				hasErrors = true
			}

			if quiet {
				continue
			}

			pos := lsp.PositionAt(content, d.Start)
			label := styles.err.Render("error")
			if d.Severity != cssls.SeverityError {
				label = styles.warn.Render("warning")
			}

			fmt.Printf("%s:%d:%d: %s: %s\n",
				styles.path.Render(file),
				pos.Line+1, pos.Character+1,
				label, d.Message)
		}

		if !quiet && len(diags) == 0 {
			fmt.Printf("%s: %s\n", styles.path.Render(file), styles.ok.Render("ok"))
		}
	}

	if hasErrors {
		return ErrDiagnosticErrors
	}

	return nil
}

// collectCSSFiles expands the given paths into a list of .css files,
// respecting .gitignore when walking directories.
func collectCSSFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			if err := walkDir(arg, func(path string) {
				files = append(files, path)
			}); err != nil {
				return nil, err
			}
		} else if strings.HasSuffix(arg, ".css") {
			files = append(files, arg)
		}
	}

	return files, nil
}

// walkDir walks a directory for .css files, respecting .gitignore.
func walkDir(root string, callback func(path string)) error {
	fileListQueue := make(chan *gocodewalker.File, 100)

	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	fileWalker.AllowListExtensions = []string{"css"}

	var walkErr error
	fileWalker.SetErrorHandler(func(e error) bool {
		walkErr = e
		return true
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for f := range fileListQueue {
			callback(f.Location)
		}
	}()

	if err := fileWalker.Start(); err != nil {
		return err
	}

	wg.Wait()
	return walkErr
}

// absOrSelf returns the absolute form of path, or path unchanged when
// resolution fails.
func absOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	return abs
}
