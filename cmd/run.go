package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docfmt/docfmt/internal/format"
	"github.com/docfmt/docfmt/internal/ignore"
	"github.com/docfmt/docfmt/internal/markdown"
	"github.com/docfmt/docfmt/internal/ui"
	"github.com/docfmt/docfmt/internal/yamlfmt"
)

// formatSource dispatches a document to the right printer based on its
// file extension.
func formatSource(path, source string, opts format.Options) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return markdown.Format(source, opts), nil
	case ".yaml", ".yml":
		return yamlfmt.Format(source, opts), nil
	}
	return "", fmt.Errorf("%s: unsupported file type", path)
}

func isFormattable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".yaml", ".yml":
		return true
	}
	return false
}

// collectFiles expands the argument list: files are taken as given,
// directories are walked for formattable files with ignore rules
// applied relative to each directory root.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		matcher, err := ignore.Load(arg)
		if err != nil {
			return nil, err
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(arg, path)
			if relErr != nil {
				return relErr
			}
			if rel == "." {
				return nil
			}
			if matcher.Ignored(rel) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && isFormattable(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func runPaths(cmd *cobra.Command, args []string, opts format.Options, styles *ui.Styles) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Muted.Render("no formattable files found"))
		return nil
	}

	unformatted := 0
	failed := 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", styles.Error.Render("error"), path, err)
			failed++
			continue
		}
		src := string(data)
		out, err := formatSource(path, src, opts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", styles.Error.Render("error"), err)
			failed++
			continue
		}

		changed := out != src
		switch {
		case flagCheck:
			if changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.Warning.Render("unformatted"), path)
				unformatted++
			}
		case flagDiff:
			ui.PrintUnifiedDiff(cmd.OutOrStdout(), styles, path, src, out)
		case flagWrite:
			if changed {
				if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s: %v\n", styles.Error.Render("error"), path, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styles.Success.Render("formatted"), path)
			}
		default:
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	if flagCheck && unformatted > 0 {
		return fmt.Errorf("%d file(s) not formatted", unformatted)
	}
	return nil
}

// runStdin formats standard input to standard output. The parser is
// chosen by --parser, defaulting to markdown.
func runStdin(cmd *cobra.Command, opts format.Options) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}

	switch flagParser {
	case "", "markdown", "md":
		fmt.Fprint(cmd.OutOrStdout(), markdown.Format(string(data), opts))
	case "yaml", "yml":
		fmt.Fprint(cmd.OutOrStdout(), yamlfmt.Format(string(data), opts))
	default:
		return fmt.Errorf("unknown parser %q (want markdown or yaml)", flagParser)
	}
	return nil
}
