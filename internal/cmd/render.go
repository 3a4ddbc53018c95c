package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/benchlink/benchlink-cli/internal/api"
)

// printJSON renders a single resource as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table writes aligned rows and reports the page footer.
func table(w io.Writer, header []any, rows [][]any, page int, count int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	printRow(tw, header)
	for _, row := range rows {
		printRow(tw, row)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if count > len(rows) {
		fmt.Fprintf(w, "\nPage %d, showing %d of %d\n", page, len(rows), count)
	}
	return nil
}

func printRow(w io.Writer, cells []any) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

// addListFlags registers the shared pagination and filter flags.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 0, "page number")
	cmd.Flags().Int("page-size", 0, "results per page")
	cmd.Flags().String("search", "", "filter by name")
	cmd.Flags().Int("project", 0, "filter by project ID")
}

// listParams reads the shared list flags into query parameters.
func listParams(cmd *cobra.Command) api.ListParams {
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	search, _ := cmd.Flags().GetString("search")
	project, _ := cmd.Flags().GetInt("project")
	return api.ListParams{Page: page, PageSize: pageSize, Search: search, Project: project}
}

// parseID converts a positional resource ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q: expected a positive integer", arg)
	}
	return id, nil
}

// boolIcon marks active/inactive rows.
func boolIcon(b bool) string {
	if b {
		return "✓"
	}
	return "-"
}
