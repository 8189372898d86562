package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iw2rmb/spanedit"
)

var rootCmd = &cobra.Command{
	Use:           "spanedit",
	Short:         "Annotate token spans in the terminal or as HTML",
	Long:          `spanedit shows named-entity spans found by a name-finder service and lets you review them in a terminal editor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var errorColor = color.New(color.FgRed, color.Bold)

func init() {
	rootCmd.Version = spanedit.Version()

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().String("env", "dev", "logging environment (dev|prod)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = errorColor.Fprint(os.Stderr, "error: ")
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
