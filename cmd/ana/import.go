package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/boynton/ana/graphql"
	"github.com/boynton/ana/lexicon"
)

var importID string

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Read a GraphQL schema or a Lexicon JSON/YAML document and write it in the chosen format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := importFile(args[0], importID, opts.CustomScalars)
		if err != nil {
			return &compileError{path: args[0], err: err}
		}
		return writeDocument(doc, opts)
	},
}

func importFile(path, id string, customScalars map[string]string) (*lexicon.Lexicon, error) {
	switch filepath.Ext(path) {
	case ".graphql", ".gql":
		if id == "" {
			return nil, fmt.Errorf("importing GraphQL needs a lexicon id (--id)")
		}
		return graphql.ImportFile(path, id, customScalars)
	case ".json", ".yaml", ".yml":
		return lexicon.Load(path)
	}
	return nil, fmt.Errorf("Unsupported import file type: %s", filepath.Ext(path))
}

func init() {
	importCmd.Flags().StringVar(&importID, "id", "", "NSID of the imported document (GraphQL only)")
	rootCmd.AddCommand(importCmd)
}
