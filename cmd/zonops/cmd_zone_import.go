package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zonops/zonops/config/zonopscfg"
	"github.com/zonops/zonops/internal/logging"
	"github.com/zonops/zonops/usecase/zone"
)

func newCmdZoneImport() *cobra.Command {
	var force bool
	var parseOnly bool

	cmd := &cobra.Command{
		Use:                "import [resource-group] <zone> <file>",
		Short:              "Import a zone file into a DNS zone",
		Long:               "Import a zone file into a DNS zone, creating the zone when absent.\nThe resource group argument may be omitted when defaults.resource_group\nis set in the config file.",
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

			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read zone file %s: %w", path, err)
			}

			logger.Info(ctx, "zone import start", "zone", zoneName, "file", path, "force", force, "parse_only", parseOnly)

			out, err := zoneUC.Import(ctx, &zone.ImportInput{
				ResourceGroup: resourceGroup,
				ZoneName:      zoneName,
				ZoneFileText:  string(text),
				Force:         force,
				ParseOnly:     parseOnly,
				DefaultTTL:    cfg.Defaults.TTL,
			})
			if err != nil {
				return fmt.Errorf("failed to import zone: %w", err)
			}

			for _, r := range out.Results {
				switch r.Action {
				case zone.ActionPlanned:
					logger.Info(ctx, "would import record set", "name", r.Name, "type", r.Type, "message", r.Message)
				case zone.ActionCreated, zone.ActionMerged, zone.ActionReplaced:
					logger.Info(ctx, "imported record set", "name", r.Name, "type", r.Type, "action", r.Action)
				case zone.ActionFailed:
					logger.Error(ctx, "failed to import record set", "name", r.Name, "type", r.Type, "error", r.Message)
				}
			}

			if parseOnly {
				fmt.Fprintf(cmd.OutOrStdout(), "parsed %d record sets\n", out.Total)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d record sets\n", out.Imported, out.Total)
			if out.Imported < out.Total {
				return fmt.Errorf("%d record sets failed to import", out.Total-out.Imported)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace conflicting record sets instead of merging")
	cmd.Flags().BoolVar(&parseOnly, "parse-only", false, "Parse the zone file and report without writing")

	return cmd
}

// resolveZoneFileArgs splits [resource-group] <zone> <file>, taking the
// resource group from config defaults when only two arguments are given.
func resolveZoneFileArgs(cfg *zonopscfg.Root, args []string) (resourceGroup, zoneName, path string, err error) {
	if len(args) == 3 {
		return args[0], args[1], args[2], nil
	}
	if cfg.Defaults.ResourceGroup == "" {
		return "", "", "", fmt.Errorf("no resource group given and defaults.resource_group is not set")
	}
	return cfg.Defaults.ResourceGroup, args[0], args[1], nil
}
