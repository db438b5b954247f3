package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"finengine/internal/engine"
)

type routeOutput struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func newRoutesCommand(eng *engine.Engine) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the endpoints served by " + eng.Name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]routeOutput, 0, len(eng.Routes))
			for _, r := range eng.Routes {
				out = append(out, routeOutput{Method: r.Method, Path: r.Path, Name: r.Name, Summary: r.Summary})
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tSUMMARY")
			for _, r := range out {
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Method, r.Path, r.Summary)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output routes in JSON format")
	return cmd
}
