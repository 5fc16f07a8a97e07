package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tp-labs/pulsedash/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdGenerate() *cli.Command {
	var datasetCfg config.Dataset

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate the sample dataset and write it as JSON to stdout",
		Flags: datasetCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			gen, err := datasetCfg.Configure()
			if err != nil {
				return err
			}
			info, records := gen.Dataset()

			logger.Info("Sample dataset generated",
				slog.String("datasetID", info.ID.String()),
				slog.Int("records", info.RecordCount),
			)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(map[string]any{
				"dataset": info,
				"records": records,
			}); err != nil {
				return goerr.Wrap(err, "failed to encode dataset")
			}

			return nil
		},
	}
}
