package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/spanedit/markup"
	"github.com/iw2rmb/spanedit/span"
)

var renderOutput string

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "auto", "output format (auto|tui|text|html|page)")
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render an annotated document from HTML markup or JSON",
	Long: `render loads tokens and spans from an .html file produced by the editor
markup, or a .json file of the form {"tokens": [...], "annotations": [{"type", "id", "begin", "end"}]}.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

// documentFile is the JSON input of the render command.
type documentFile struct {
	Tokens      []string         `json:"tokens"`
	Annotations []annotationJSON `json:"annotations"`
}

type annotationJSON struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Begin int    `json:"begin"`
	End   int    `json:"end"`
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := readOutputFormat(renderOutput)
	if err != nil {
		return err
	}
	format = format.resolve()

	cfg, log, closeLog, err := setup(cmd, format == outputTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	tokens, anns, err := loadDocument(f, filepath.Ext(args[0]))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	doc, err := span.New(tokens, span.Options{HistoryLimit: cfg.Editor.HistoryLimit}, anns...)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	log.WithFields(logrus.Fields{
		"file":   args[0],
		"tokens": doc.TokenCount(),
		"spans":  doc.Len(),
	}).Debug("document loaded")

	if format == outputTUI {
		return runTUI(doc, cfg, log)
	}
	return writeDocument(cmd.OutOrStdout(), doc, format, cfg, filepath.Base(args[0]))
}

func loadDocument(r io.Reader, ext string) ([]string, []span.Annotation, error) {
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		return markup.Parse(r)
	case ".json":
		var df documentFile
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&df); err != nil {
			return nil, nil, fmt.Errorf("decode json: %w", err)
		}
		anns := make([]span.Annotation, 0, len(df.Annotations))
		for _, a := range df.Annotations {
			anns = append(anns, span.NewAnnotation(a.Type, a.ID, a.Begin, a.End))
		}
		return df.Tokens, anns, nil
	default:
		return nil, nil, fmt.Errorf("unsupported input %q (expected .html or .json)", ext)
	}
}
