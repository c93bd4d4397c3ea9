package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/spf13/cobra"

	"github.com/zonops/zonops/internal/logging"
	"github.com/zonops/zonops/usecase/zone"
)

func newCmdZone() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "zone",
		Short:              "Manage DNS zones",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE:               func(cmd *cobra.Command, args []string) error { return fmt.Errorf("invalid command") },
	}
	cmd.AddCommand(newCmdZoneCreate(), newCmdZoneShow(), newCmdZoneList(), newCmdZoneDelete(), newCmdZoneImport(), newCmdZoneExport())
	return cmd
}

func newCmdZoneCreate() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:                "create <resource-group> <zone>",
		Short:              "Create a DNS zone",
		Args:               cobra.ExactArgs(2),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneUC, _, err := buildZoneUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			logger := logging.FromContext(ctx)

			tagMap, err := parseTags(tags)
			if err != nil {
				return err
			}

			out, err := zoneUC.Create(ctx, &zone.CreateInput{
				ResourceGroup: args[0],
				ZoneName:      args[1],
				Tags:          tagMap,
			})
			if err != nil {
				return fmt.Errorf("failed to create zone: %w", err)
			}

			logger.Info(ctx, "zone created", "zone", out.Zone.Name)
			for _, ns := range out.Zone.NameServers {
				fmt.Fprintln(cmd.OutOrStdout(), ns)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Zone tag as key=value (repeatable)")

	return cmd
}

func newCmdZoneShow() *cobra.Command {
	var ids string

	cmd := &cobra.Command{
		Use:                "show <resource-group> <zone>",
		Short:              "Show a DNS zone",
		Args:               cobra.MaximumNArgs(2),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resourceGroup, zoneName, err := zoneTarget(args, ids)
			if err != nil {
				return err
			}

			zoneUC, _, err := buildZoneUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			out, err := zoneUC.Get(ctx, &zone.GetInput{ResourceGroup: resourceGroup, ZoneName: zoneName})
			if err != nil {
				return fmt.Errorf("failed to get zone: %w", err)
			}

			z := out.Zone
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Name:        %s\n", z.Name)
			fmt.Fprintf(w, "RecordSets:  %d\n", z.NumberOfRecordSets)
			fmt.Fprintf(w, "MaxSets:     %d\n", z.MaxNumberOfRecordSets)
			fmt.Fprintf(w, "NameServers: %s\n", strings.Join(z.NameServers, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&ids, "ids", "", "Full Azure resource ID of the zone instead of positional arguments")

	return cmd
}

// zoneTarget resolves the resource group and zone name from either the two
// positional arguments or an --ids resource ID.
func zoneTarget(args []string, ids string) (string, string, error) {
	if ids != "" {
		if len(args) > 0 {
			return "", "", fmt.Errorf("--ids cannot be combined with positional arguments")
		}
		rid, err := arm.ParseResourceID(ids)
		if err != nil {
			return "", "", fmt.Errorf("invalid resource ID %s: %w", ids, err)
		}
		if !strings.EqualFold(rid.ResourceType.String(), "Microsoft.Network/dnszones") {
			return "", "", fmt.Errorf("resource ID %s is not a DNS zone", ids)
		}
		return rid.ResourceGroupName, rid.Name, nil
	}
	if len(args) != 2 {
		return "", "", fmt.Errorf("expected <resource-group> <zone> arguments")
	}
	return args[0], args[1], nil
}

func newCmdZoneList() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "list <resource-group>",
		Short:              "List DNS zones in a resource group",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneUC, _, err := buildZoneUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			out, err := zoneUC.List(ctx, &zone.ListInput{ResourceGroup: args[0]})
			if err != nil {
				return fmt.Errorf("failed to list zones: %w", err)
			}

			for _, z := range out.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d record sets\n", z.Name, z.NumberOfRecordSets)
			}
			return nil
		},
	}
	return cmd
}

func newCmdZoneDelete() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:                "delete <resource-group> <zone>",
		Short:              "Delete a DNS zone and all of its record sets",
		Args:               cobra.ExactArgs(2),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneUC, _, err := buildZoneUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			logger := logging.FromContext(ctx)

			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete zone %s and all of its record sets?", args[1]))
				if err != nil {
					return err
				}
				if !ok {
					logger.Info(ctx, "zone delete cancelled", "zone", args[1])
					return nil
				}
			}

			if _, err := zoneUC.Delete(ctx, &zone.DeleteInput{ResourceGroup: args[0], ZoneName: args[1]}); err != nil {
				return fmt.Errorf("failed to delete zone: %w", err)
			}

			logger.Info(ctx, "zone deleted", "zone", args[1])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// parseTags converts repeated key=value flags into a map.
func parseTags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid tag %q: expected key=value", p)
		}
		m[k] = v
	}
	return m, nil
}
