package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sflc/amendments/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the amendment catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return printCatalog(cmd.OutOrStdout(), catalog.All(), asJSON)
	},
}

func init() {
	catalogCmd.Flags().Bool("json", false, "Print as JSON")
}

func printCatalog(w io.Writer, records []catalog.Amendment, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tYEAR\tTITLE\tDEFINITION")
	for _, a := range records {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", a.ID, a.Year, a.Title, a.Definition)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
