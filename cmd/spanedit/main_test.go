package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/spanedit/editor"
	"github.com/iw2rmb/spanedit/internal/config"
	"github.com/iw2rmb/spanedit/span"
)

func TestReadOutputFormat(t *testing.T) {
	for in, want := range map[string]outputFormat{
		"":      outputAuto,
		"AUTO":  outputAuto,
		" tui ": outputTUI,
		"text":  outputText,
		"html":  outputHTML,
		"page":  outputPage,
	} {
		got, err := readOutputFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := readOutputFormat("pdf")
	assert.Error(t, err)
}

func TestLoadDocument_JSON(t *testing.T) {
	in := `{"tokens":["Barack","Obama","was","here"],"annotations":[{"type":"person","id":"0","begin":0,"end":2}]}`
	tokens, anns, err := loadDocument(strings.NewReader(in), ".JSON")
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"Barack", "Obama", "was", "here"}, tokens); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]span.Annotation{span.NewAnnotation("person", "0", 0, 2)}, anns); diff != "" {
		t.Fatalf("annotations mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDocument_RejectsUnknownInput(t *testing.T) {
	_, _, err := loadDocument(strings.NewReader(`{"tokens":[],"spans":[]}`), ".json")
	assert.Error(t, err)

	_, _, err = loadDocument(strings.NewReader("x"), ".txt")
	assert.Error(t, err)
}

func TestWriteDocument_TextAndHTMLRoundTrip(t *testing.T) {
	doc, err := span.New([]string{"a", "b", "c"}, span.Options{},
		span.NewAnnotation("org", "0", 0, 3),
		span.NewAnnotation("person", "0", 0, 2),
	)
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, writeDocument(&text, doc, outputText, config.Default(), "t"))
	assert.Equal(t, "[org [person a b] c]\n", text.String())

	var html bytes.Buffer
	require.NoError(t, writeDocument(&html, doc, outputHTML, config.Default(), "t"))
	tokens, anns, err := loadDocument(&html, ".html")
	require.NoError(t, err)
	assert.Equal(t, doc.Tokens(), tokens)
	assert.ElementsMatch(t, doc.Annotations(), anns)

	var page bytes.Buffer
	require.NoError(t, writeDocument(&page, doc, outputPage, config.Default(), "demo"))
	assert.Contains(t, page.String(), "<title>demo</title>")
	assert.Contains(t, page.String(), ".person {")

	assert.Error(t, writeDocument(&text, doc, outputTUI, config.Default(), "t"))
}

func TestCSSColor(t *testing.T) {
	assert.Equal(t, "#ff0000", cssColor("196"))
	assert.Equal(t, "#0af", cssColor("#0af"))
	assert.Equal(t, "red", cssColor("red"))
	assert.Equal(t, "300", cssColor("300"))
}

func TestNavigationFromConfig(t *testing.T) {
	nav, err := navigation(config.Default().Navigation)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"shift+tab", "tab"}, nav.Keys())

	_, err = navigation([]config.NavigationConfig{
		{Prev: []string{"["}, Next: []string{"]"}, Types: []string{"person"}},
		{Prev: []string{"{"}, Next: []string{"]"}, Types: []string{"org"}},
	})
	assert.True(t, errors.Is(err, editor.ErrKeyConflict), "got %v", err)
}

func TestSetup_LoadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spanedit.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\ndefault_type = \"org\"\n"), 0o644))

	cmd := &cobra.Command{}
	cmd.Flags().String("config", path, "")
	cmd.Flags().String("env", "prod", "")
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().String("log-file", filepath.Join(dir, "spanedit.log"), "")

	cfg, log, closeLog, err := setup(cmd, true)
	require.NoError(t, err)
	defer closeLog()
	assert.Equal(t, "org", cfg.Editor.DefaultType)

	log.Info("hello")
	b, err := os.ReadFile(filepath.Join(dir, "spanedit.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"find", "render", "version"})
}
