package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zonops/zonops/internal/logging"
	"github.com/zonops/zonops/usecase/zone"
)

func newCmdZoneExport() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:                "export [resource-group] <zone> <file>",
		Short:              "Export a DNS zone to a zone file",
		Long:               "Export a DNS zone to a zone file. Use - as the file to write to stdout.\nThe resource group argument may be omitted when defaults.resource_group\nis set in the config file.",
		Args:               cobra.RangeArgs(2, 3),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneUC, cfg, err := buildZoneUseCase(cmd)
			if err != nil {
				return err
			}
			resourceGroup, zoneName, path, err := resolveZoneFileArgs(cfg, args)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Minute)
			defer cancel()
			logger := logging.FromContext(ctx)
			if !quiet {
				if _, err := os.Stat(path); err == nil {
					ok, err := confirm(cmd, fmt.Sprintf("File %s exists, overwrite?", path))
					if err != nil {
						return err
					}
					if !ok {
						logger.Info(ctx, "zone export cancelled", "file", path)
						return nil
					}
				}
			}

			out, err := zoneUC.Export(ctx, &zone.ExportInput{ResourceGroup: resourceGroup, ZoneName: zoneName})
			if err != nil {
				return fmt.Errorf("failed to export zone: %w", err)
			}

			if path == "-" {
				fmt.Fprint(cmd.OutOrStdout(), out.ZoneFileText)
				return nil
			}
			if err := os.WriteFile(path, []byte(out.ZoneFileText), 0o644); err != nil {
				return fmt.Errorf("failed to write zone file %s: %w", path, err)
			}

			logger.Info(ctx, "zone export complete", "zone", zoneName, "file", path, "record_sets", out.RecordSets)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Overwrite the output file without asking")

	return cmd
}
