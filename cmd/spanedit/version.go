package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/spanedit"
	"github.com/iw2rmb/spanedit/namefinder"
)

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	UserAgent string `json:"user_agent"`
	Endpoint  string `json:"endpoint"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the spanedit version",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := versionPayload{
			Tool:      "spanedit",
			Version:   spanedit.Version(),
			UserAgent: spanedit.UserAgent(),
			Endpoint:  namefinder.DefaultPath,
		}
		out := cmd.OutOrStdout()
		switch strings.ToLower(versionFormat) {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		case "pretty", "":
			_, err := fmt.Fprintf(out, "%s %s\n", p.Tool, color.New(color.FgYellow, color.Bold).Sprint(p.Version))
			return err
		default:
			return fmt.Errorf("invalid --format value %q (expected pretty|json)", versionFormat)
		}
	},
}
