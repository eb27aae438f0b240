package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boynton/ana"
	"github.com/boynton/ana/config"
	"github.com/boynton/ana/util"
)

var (
	cfgFile string
	format  string
	output  string
	verbose bool

	opts *config.Options
)

var rootCmd = &cobra.Command{
	Use:   "ana [flags] FILE",
	Short: "Compile .ana schema files into atproto Lexicon documents",
	Long: `ana compiles an .ana schema file into a Lexicon document.

The document is printed as JSON unless another format is chosen:
  ana image.ana
  ana -f yaml image.ana
  ana -f graphql -o image.graphql image.ana

Lexicon JSON or YAML documents and GraphQL schemas can be converted back:
  ana import -f ana image.json
  ana import --id app.example.image image.graphql`,
	Args:              cobra.ExactArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadOptions,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		doc, err := ana.String(string(src))
		if err != nil {
			return &compileError{path: path, src: string(src), err: err}
		}
		return writeDocument(doc, opts)
	},
}

// compileError is a failure in the input rather than in how ana was invoked.
type compileError struct {
	path string
	src  string
	err  error
}

func (e *compileError) Error() string {
	return formatError(e.path, e.src, e.err)
}

func (e *compileError) Unwrap() error {
	return e.err
}

func loadOptions(cmd *cobra.Command, args []string) error {
	var err error
	opts, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Format = format
	}
	if flags.Changed("output") {
		opts.Output = output
	}
	if flags.Changed("verbose") {
		opts.Verbose = verbose
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	util.SetVerbose(opts.Verbose)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ce *compileError
		if errors.As(err, &ce) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", config.FormatJSON, "output format: json, yaml, graphql or ana")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
