package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/blackwell-systems/discordstats/internal/output"
	"github.com/blackwell-systems/discordstats/internal/report"
	"github.com/spf13/cobra"
)

var authorsCmd = &cobra.Command{
	Use:   "authors [archive]",
	Short: "Show each author's share of the conversation",
	Long: `List every author in the archive with their message count and their
share of all attributed messages, most active first.

Examples:
  discordstats authors
  discordstats authors chat_logs/ariel_logs.json --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuthors,
}

func init() {
	rootCmd.AddCommand(authorsCmd)
}

func runAuthors(cmd *cobra.Command, args []string) error {
	cfg, stats, err := loadArchive(args)
	if err != nil {
		return err
	}

	shares := report.AuthorShares(stats)
	w := cmd.OutOrStdout()

	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(shares)
	}

	if len(shares) == 0 {
		_, err := fmt.Fprintln(w, "No authored messages found in archive.")
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n\n", output.Section("Authors")); err != nil {
		return err
	}

	tbl := output.NewTable("Author", "Messages", "Share")
	for _, s := range shares {
		tbl.AddRow(s.Author, strconv.Itoa(s.Messages), output.ShareBar(s.Percent, cfg.Output.BarWidth))
	}
	if err := tbl.Fprint(w); err != nil {
		return err
	}

	if c, ok := report.Compare(stats.MessagesPerAuthor); ok {
		if _, err := fmt.Fprintf(w, "\n %s\n", output.StyleAccent.Render(c.String())); err != nil {
			return err
		}
	}
	return nil
}
