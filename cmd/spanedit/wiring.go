package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/spanedit/editor"
	"github.com/iw2rmb/spanedit/internal/config"
	"github.com/iw2rmb/spanedit/internal/logging"
	"github.com/iw2rmb/spanedit/markup"
)

// setup loads the config named by --config and builds the logger. The
// returned closer releases the log file, if any.
func setup(cmd *cobra.Command, interactive bool) (config.Config, *logrus.Entry, func(), error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	env, _ := flags.GetString("env")
	verbose, _ := flags.GetBool("verbose")
	logFile, _ := flags.GetString("log-file")

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return config.Config{}, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { _ = f.Close() }
	case interactive:
		// Anything on stderr would tear the alternate screen.
		out = io.Discard
	}
	return cfg, logging.New(env, out, verbose), closer, nil
}

func lipglossStyle(sc config.StyleConfig) lipgloss.Style {
	st := lipgloss.NewStyle()
	if sc.Foreground != "" {
		st = st.Foreground(lipgloss.Color(sc.Foreground))
	}
	if sc.Background != "" {
		st = st.Background(lipgloss.Color(sc.Background))
	}
	if sc.Bold {
		st = st.Bold(true)
	}
	if sc.Underline {
		st = st.Underline(true)
	}
	return st
}

func editorStyles(styles map[string]config.StyleConfig) map[string]lipgloss.Style {
	out := make(map[string]lipgloss.Style, len(styles))
	for typ, sc := range styles {
		out[typ] = lipglossStyle(sc)
	}
	return out
}

// cssColor turns an ANSI 256 palette index into a hex color. Anything else
// is passed through as a CSS color.
func cssColor(c string) string {
	n, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil || n < 0 || n > 255 {
		return c
	}
	return termenv.ConvertToRGB(termenv.ANSI256Color(n)).Hex()
}

func pageStyles(styles map[string]config.StyleConfig) map[string]markup.TypeStyle {
	out := make(map[string]markup.TypeStyle, len(styles))
	for typ, sc := range styles {
		ts := markup.TypeStyle{Bold: sc.Bold, Underline: sc.Underline}
		if sc.Foreground != "" {
			ts.Foreground = cssColor(sc.Foreground)
		}
		if sc.Background != "" {
			ts.Background = cssColor(sc.Background)
		}
		out[typ] = ts
	}
	return out
}

func navigation(entries []config.NavigationConfig) (*editor.Navigation, error) {
	nav := editor.NewNavigation()
	for i, e := range entries {
		prev := key.NewBinding(key.WithKeys(e.Prev...), key.WithHelp(strings.Join(e.Prev, "/"), "previous "+strings.Join(e.Types, "/")))
		next := key.NewBinding(key.WithKeys(e.Next...), key.WithHelp(strings.Join(e.Next, "/"), "next "+strings.Join(e.Types, "/")))
		if err := nav.BySpanType(prev, next, e.Types...); err != nil {
			return nil, fmt.Errorf("navigation[%d]: %w", i, err)
		}
	}
	return nav, nil
}
