package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iw2rmb/spanedit/editor"
	"github.com/iw2rmb/spanedit/internal/config"
	"github.com/iw2rmb/spanedit/markup"
	"github.com/iw2rmb/spanedit/span"
)

type outputFormat string

const (
	outputAuto outputFormat = "auto"
	outputTUI  outputFormat = "tui"
	outputText outputFormat = "text"
	outputHTML outputFormat = "html"
	outputPage outputFormat = "page"
)

func readOutputFormat(value string) (outputFormat, error) {
	switch f := outputFormat(strings.TrimSpace(strings.ToLower(value))); f {
	case "":
		return outputAuto, nil
	case outputAuto, outputTUI, outputText, outputHTML, outputPage:
		return f, nil
	default:
		return "", fmt.Errorf("invalid --output value %q (expected auto|tui|text|html|page)", value)
	}
}

// resolve picks the terminal editor for auto output only when both ends are
// a terminal.
func (f outputFormat) resolve() outputFormat {
	if f != outputAuto {
		return f
	}
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return outputTUI
	}
	return outputText
}

// writeDocument prints doc in a non-interactive format.
func writeDocument(w io.Writer, doc *span.Document, format outputFormat, cfg config.Config, title string) error {
	switch format {
	case outputText:
		m, err := editor.New(editor.Config{Document: doc, ShowBrackets: true})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, m.Blur().Content())
		return err
	case outputHTML:
		if err := markup.WriteHTML(w, markup.Render(doc)); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	case outputPage:
		page := markup.Page(title, markup.Render(doc), pageStyles(cfg.Styles))
		if err := markup.WriteHTML(w, page); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	default:
		return fmt.Errorf("output %q cannot be written to a stream", format)
	}
}
