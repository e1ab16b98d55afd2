// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simgraph/algorithms"
	"github.com/katalvlaran/simgraph/internal/export"
)

// strategyInfo is the JSON form of one registry entry.
type strategyInfo struct {
	Key         string             `json:"key"`
	DisplayName string             `json:"display_name"`
	Defaults    map[string]float64 `json:"defaults"`
}

// newAlgorithmsCmd lists the registry.
func newAlgorithmsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List the available strategies and their default parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := algorithms.All()
			if asJSON {
				infos := make([]strategyInfo, len(all))
				for i, a := range all {
					infos[i] = strategyInfo{Key: a.Key, DisplayName: a.DisplayName, Defaults: a.Defaults}
				}
				return export.Write(cmd.OutOrStdout(), infos, true)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tDEFAULTS")
			for _, a := range all {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Key, a.DisplayName, formatDefaults(a.Defaults))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

// formatDefaults renders params as sorted name=value pairs, or "-".
func formatDefaults(p algorithms.Params) string {
	if len(p) == 0 {
		return "-"
	}
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%g", name, p[name])
	}

	return strings.Join(parts, " ")
}
