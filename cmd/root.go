package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docfmt/docfmt/internal/config"
	"github.com/docfmt/docfmt/internal/format"
	"github.com/docfmt/docfmt/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "docfmt [paths...]",
	Short: "Format Markdown and YAML files",
	Long: `docfmt rewrites Markdown and YAML documents in a canonical style,
preserving front matter, comments and author intent.

Examples:
  docfmt README.md                 # print formatted output
  docfmt -w docs/                  # rewrite a tree in place
  docfmt --check .                 # fail if anything is unformatted
  docfmt --diff config.yaml        # show what would change
  cat notes.md | docfmt --parser markdown`,
	RunE:              runRoot,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var (
	flagWrite      bool
	flagCheck      bool
	flagDiff       bool
	flagNoColor    bool
	flagParser     string
	flagPrintWidth int
	flagTabWidth   int
	flagProseWrap  string
	flagBullet     string
)

func init() {
	rootCmd.Flags().BoolVarP(&flagWrite, "write", "w", false, "Rewrite files in place")
	rootCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "Report unformatted files; exit 1 if any")
	rootCmd.Flags().BoolVar(&flagDiff, "diff", false, "Print a unified diff instead of the output")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&flagParser, "parser", "", "Parser for stdin input (markdown|yaml)")
	rootCmd.Flags().IntVar(&flagPrintWidth, "print-width", 0, "Maximum line width (default from config, 80)")
	rootCmd.Flags().IntVar(&flagTabWidth, "tab-width", 0, "Indentation width (default from config, 2)")
	rootCmd.Flags().StringVar(&flagProseWrap, "prose-wrap", "", "Paragraph wrapping: always, never or preserve")
	rootCmd.Flags().StringVar(&flagBullet, "bullet", "", "Unordered list bullets: dash, asterisk or plus")
}

// Execute runs the CLI and exits non-zero on error or failed check.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	styles := ui.DefaultStyles()
	if flagNoColor {
		styles = ui.PlainStyles()
	}

	if len(args) == 0 {
		return runStdin(cmd, opts)
	}

	if flagWrite && flagCheck {
		return fmt.Errorf("--write cannot be combined with --check")
	}
	return runPaths(cmd, args, opts, styles)
}

// loadOptions merges config-file settings with any explicitly set
// flags; flags win.
func loadOptions(cmd *cobra.Command) (format.Options, error) {
	cfg, err := config.Load()
	if err != nil {
		return format.Options{}, err
	}
	if cmd.Flags().Changed("print-width") {
		cfg.PrintWidth = flagPrintWidth
	}
	if cmd.Flags().Changed("tab-width") {
		cfg.TabWidth = flagTabWidth
	}
	if cmd.Flags().Changed("prose-wrap") {
		cfg.ProseWrap = flagProseWrap
	}
	if cmd.Flags().Changed("bullet") {
		cfg.UnorderedListBulletStyle = flagBullet
	}
	return cfg.Options()
}
