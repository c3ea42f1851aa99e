package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/irops/internal/aggregate"
	"github.com/danieljhkim/irops/internal/config"
	"github.com/danieljhkim/irops/internal/engine"
)

var (
	version = "dev"

	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// options holds the parsed command-line flags.
type options struct {
	count     bool
	outputDir string
	clipboard bool
	format    string
	verbose   bool
}

// newRootCmd builds the irops command.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "irops <xml_file>",
		Version: version,
		Short:   "List the operator types used by a model IR",
		Long: `irops reads a model description XML (such as an OpenVINO IR .xml) and reports
the operator types of its <layer> elements.

By default the sorted distinct types are printed. Use --count for per-type
occurrence counts. Results go to stdout, to a file in --output-dir, or to the
clipboard with --clipboard.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetHelpFunc(customHelpFunc)

	cmd.Flags().BoolVarP(&opts.count, "count", "c", false, "Show the number of occurrences of each operator type")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Write the result to <dir>/<name>.txt (or <name>_counts.txt with --count)")
	cmd.Flags().BoolVarP(&opts.clipboard, "clipboard", "b", false, "Copy the result to the clipboard (takes precedence over --output-dir)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: "+engine.FormatNames()+" (default text)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log pipeline details to stderr")

	return cmd
}

// run applies environment defaults to opts and executes the pipeline.
func run(cmd *cobra.Command, xmlPath string, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("output-dir") && cfg.OutputDir != "" {
		opts.outputDir = cfg.OutputDir
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		opts.format = cfg.Format
	}

	format, err := engine.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if opts.clipboard && opts.outputDir != "" {
		PrintWarning(errOut, fmt.Sprintf("--output-dir %s ignored: --clipboard takes precedence", opts.outputDir))
	}

	mode := aggregate.ModeUnique
	if opts.count {
		mode = aggregate.ModeCount
	}

	eng := newEngine(out, errOut, opts.verbose)
	result, err := eng.Run(context.Background(), &engine.RunRequest{
		XMLPath:   xmlPath,
		Mode:      mode,
		Format:    format,
		OutputDir: opts.outputDir,
		Clipboard: opts.clipboard,
	})
	if err != nil {
		return err
	}

	switch {
	case result.Empty:
		PrintEmptyState(out, fmt.Sprintf("No operators found in %s", xmlPath))
	case result.Destination == engine.DestClipboard:
		PrintSuccess(out, fmt.Sprintf("Copied %s to clipboard", PrintCount(result.Distinct, "operator type", "operator types")))
	case result.Destination == engine.DestFile:
		PrintSuccess(out, fmt.Sprintf("Wrote %s", result.OutputPath))
	}

	return nil
}

// customHelpFunc prints help with colored section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableLocalFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString("\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Environment:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %-18s default for --output-dir\n", config.EnvOutputDir)
	fmt.Fprintf(&help, "  %-18s default for --format\n", config.EnvFormat)

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Execute runs the irops command with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}
