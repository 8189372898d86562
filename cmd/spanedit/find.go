package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/spanedit/internal/config"
	"github.com/iw2rmb/spanedit/namefinder"
	"github.com/iw2rmb/spanedit/span"
)

var (
	findOutput string
	findType   string
	findURL    string
)

func init() {
	findCmd.Flags().StringVarP(&findOutput, "output", "o", "auto", "output format (auto|tui|text|html|page)")
	findCmd.Flags().StringVar(&findType, "type", "", "annotation type for untyped names (default from config)")
	findCmd.Flags().StringVar(&findURL, "url", "", "name-finder base URL (default from config)")
}

var findCmd = &cobra.Command{
	Use:   "find [file]",
	Short: "Send text to the name-finder service and show the names it found",
	Long:  `find reads raw text from a file, or stdin when no file or "-" is given, and annotates the names returned by the service.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	format, err := readOutputFormat(findOutput)
	if err != nil {
		return err
	}
	format = findFormat(format.resolve(), args)

	cfg, log, closeLog, err := setup(cmd, format == outputTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	text, err := readInput(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	doc, err := findNames(ctx, cfg, log, text)
	if err != nil {
		return err
	}

	if format == outputTUI {
		return runTUI(doc, cfg, log)
	}
	if err := writeDocument(cmd.OutOrStdout(), doc, format, cfg, "spanedit"); err != nil {
		return err
	}
	if isTerminal(os.Stderr) {
		_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "%d names in %d tokens\n", doc.Len(), doc.TokenCount())
	}
	return nil
}

func findNames(ctx context.Context, cfg config.Config, log logrus.FieldLogger, text string) (*span.Document, error) {
	baseURL := cfg.Service.URL
	if findURL != "" {
		baseURL = findURL
	}
	typ := cfg.Editor.DefaultType
	if findType != "" {
		typ = findType
	}

	opts := []namefinder.Option{namefinder.WithLogger(log)}
	if cfg.Service.Path != "" {
		opts = append(opts, namefinder.WithPath(cfg.Service.Path))
	}
	client := namefinder.NewClient(&http.Client{Timeout: cfg.Service.Timeout}, baseURL, opts...)
	res, err := client.FindRawText(ctx, text)
	if err != nil {
		return nil, err
	}
	doc, err := res.Document(typ, span.Options{HistoryLimit: cfg.Editor.HistoryLimit})
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}
	log.WithFields(logrus.Fields{
		"tokens": doc.TokenCount(),
		"names":  doc.Len(),
	}).Info("names found")
	return doc, nil
}

// findFormat falls back to text when stdin carries the input, since the
// editor would get no keys.
func findFormat(format outputFormat, args []string) outputFormat {
	if format == outputTUI && readsStdin(args) {
		return outputText
	}
	return format
}

func readsStdin(args []string) bool {
	return len(args) == 0 || args[0] == "-"
}

func readInput(args []string) (string, error) {
	if readsStdin(args) {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}
