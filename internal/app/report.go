package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/blackwell-systems/discordstats/internal/archive"
	"github.com/blackwell-systems/discordstats/internal/config"
	"github.com/blackwell-systems/discordstats/internal/output"
	"github.com/blackwell-systems/discordstats/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runReport(cmd *cobra.Command, args []string) error {
	_, stats, err := loadArchive(args)
	if err != nil {
		return err
	}

	r := report.Build(stats)
	w := cmd.OutOrStdout()

	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	return renderReport(w, r)
}

// loadArchive resolves the archive path from args or config and parses it.
func loadArchive(args []string) (*config.Config, archive.Stats, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, archive.Stats{}, fmt.Errorf("loading config: %w", err)
	}

	output.AutoColor(os.Stdout, cfg.Output.Color && !flagNoColor)

	path := cfg.Archive
	if len(args) > 0 {
		path = args[0]
	}
	log.Debug().Str("archive", path).Msg("loading archive")

	stats, err := archive.ParseFile(path)
	if err != nil {
		return nil, archive.Stats{}, err
	}
	return cfg, stats, nil
}

// renderReport writes the report entries, styling values when color is on.
func renderReport(w io.Writer, r report.Report) error {
	for _, e := range r.Entries() {
		line := output.StyleAccent.Render(e.Value)
		if e.Label != "" {
			line = output.Field(e.Label, e.Value)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
