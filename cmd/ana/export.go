package main

import (
	"fmt"
	"io"
	"os"

	"github.com/boynton/ana"
	"github.com/boynton/ana/config"
	"github.com/boynton/ana/graphql"
	"github.com/boynton/ana/lexicon"
	"github.com/boynton/ana/util"
)

func ExportDocument(w io.Writer, doc *lexicon.Lexicon, opts *config.Options) error {
	switch opts.Format {
	case config.FormatJSON:
		_, err := io.WriteString(w, util.PrettyIndent(doc, opts.Indent))
		return err
	case config.FormatYAML:
		data, err := lexicon.ToYAML(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case config.FormatGraphQL:
		sdl, err := graphql.Export(doc, opts.CustomScalars)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, sdl)
		return err
	case config.FormatAna:
		src, err := ana.Decompile(doc)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, src)
		return err
	default:
		return fmt.Errorf("Unsupported format: %s", opts.Format)
	}
}

func writeDocument(doc *lexicon.Lexicon, opts *config.Options) error {
	if opts.Output == "" {
		return ExportDocument(os.Stdout, doc, opts)
	}
	f, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	if err := ExportDocument(f, doc, opts); err != nil {
		f.Close()
		return err
	}
	util.Log.Debug().Str("file", opts.Output).Str("format", opts.Format).Msg("wrote document")
	return f.Close()
}
