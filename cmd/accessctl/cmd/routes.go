package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"admin-console/internal/authz"
)

type routeRow struct {
	Pattern        string   `json:"pattern"`
	Classification string   `json:"classification"`
	Permissions    []string `json:"permissions"`
}

func newRoutesCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "routes",
		Short: "Показать таблицу прав",
		Example: `  accessctl routes
  accessctl routes --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := routeRows(authz.DefaultTable)

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			case "table":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "PATTERN\tCLASS\tPERMISSIONS")
				for _, r := range rows {
					fmt.Fprintf(w, "%s\t%s\t%s\n", r.Pattern, r.Classification, strings.Join(r.Permissions, ","))
				}
				return w.Flush()
			default:
				return fmt.Errorf("неизвестный формат %q: table или json", format)
			}
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "table", "Формат вывода (table, json)")
	return c
}

func routeRows(table *authz.Table) []routeRow {
	entries := table.Entries()
	rows := make([]routeRow, 0, len(entries))
	for _, e := range entries {
		perms := e.Requirement.Permissions
		if perms == nil {
			perms = []string{}
		}
		rows = append(rows, routeRow{
			Pattern:        e.Pattern,
			Classification: string(table.Resolve(e.Pattern).Classification),
			Permissions:    perms,
		})
	}
	return rows
}
