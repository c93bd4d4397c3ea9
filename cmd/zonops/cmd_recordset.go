package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zonops/zonops/domain/model"
	"github.com/zonops/zonops/internal/logging"
	"github.com/zonops/zonops/internal/zonefile"
	"github.com/zonops/zonops/usecase/recordset"
)

func newCmdRecordSet() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "record-set",
		Short:              "Manage DNS record sets",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE:               func(cmd *cobra.Command, args []string) error { return fmt.Errorf("invalid command") },
	}
	cmd.AddCommand(newCmdRecordSetList(), newCmdRecordSetShow(), newCmdRecordSetDelete(), newCmdRecordSetAddRecord(), newCmdRecordSetRemoveRecord())
	return cmd
}

func newCmdRecordSetList() *cobra.Command {
	var rtype model.RecordType

	cmd := &cobra.Command{
		Use:                "list <resource-group> <zone>",
		Short:              "List record sets in a DNS zone",
		Args:               cobra.ExactArgs(2),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rsUC, _, err := buildRecordSetUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			out, err := rsUC.List(ctx, &recordset.ListInput{
				ResourceGroup: args[0],
				ZoneName:      args[1],
				Type:          rtype,
			})
			if err != nil {
				return fmt.Errorf("failed to list record sets: %w", err)
			}

			for _, rs := range out.Items {
				printRecordSet(cmd, rs)
			}
			return nil
		},
	}

	cmd.Flags().Var(newRecordTypeValue(&rtype), "type", "Restrict the listing to one record type")

	return cmd
}

func newCmdRecordSetShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "show <resource-group> <zone> <name> <type>",
		Short:              "Show one record set",
		Args:               cobra.ExactArgs(4),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rsUC, _, err := buildRecordSetUseCase(cmd)
			if err != nil {
				return err
			}

			rtype, err := model.ParseRecordType(strings.ToUpper(args[3]))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			out, err := rsUC.Get(ctx, &recordset.GetInput{
				ResourceGroup: args[0],
				ZoneName:      args[1],
				Name:          args[2],
				Type:          rtype,
			})
			if err != nil {
				return fmt.Errorf("failed to get record set: %w", err)
			}

			printRecordSet(cmd, out.RecordSet)
			return nil
		},
	}
	return cmd
}

func newCmdRecordSetDelete() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:                "delete <resource-group> <zone> <name> <type>",
		Short:              "Delete one record set",
		Args:               cobra.ExactArgs(4),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rsUC, _, err := buildRecordSetUseCase(cmd)
			if err != nil {
				return err
			}

			rtype, err := model.ParseRecordType(strings.ToUpper(args[3]))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			logger := logging.FromContext(ctx)

			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete record set %s/%s?", args[2], rtype))
				if err != nil {
					return err
				}
				if !ok {
					logger.Info(ctx, "record set delete cancelled", "name", args[2], "type", rtype)
					return nil
				}
			}

			if _, err := rsUC.Delete(ctx, &recordset.DeleteInput{
				ResourceGroup: args[0],
				ZoneName:      args[1],
				Name:          args[2],
				Type:          rtype,
			}); err != nil {
				return fmt.Errorf("failed to delete record set: %w", err)
			}

			logger.Info(ctx, "record set deleted", "name", args[2], "type", rtype)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newCmdRecordSetAddRecord() *cobra.Command {
	var ttl int64

	cmd := &cobra.Command{
		Use:                "add-record <resource-group> <zone> <name> <type> <rdata>...",
		Short:              "Add one record value to a record set",
		Long:               "Add one record value to a record set, creating the set when absent.\nThe rdata arguments follow zone file syntax for the record type,\ne.g. add-record rg1 example.com www A 10.0.0.1",
		Args:               cobra.MinimumNArgs(5),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rsUC, _, err := buildRecordSetUseCase(cmd)
			if err != nil {
				return err
			}

			rtype, err := model.ParseRecordType(strings.ToUpper(args[3]))
			if err != nil {
				return err
			}
			value, err := zonefile.ParseValue(rtype, args[4:], args[1]+".")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			out, err := rsUC.AddRecord(ctx, &recordset.AddRecordInput{
				ResourceGroup: args[0],
				ZoneName:      args[1],
				Name:          args[2],
				Type:          rtype,
				Value:         value,
				TTL:           ttl,
			})
			if err != nil {
				return fmt.Errorf("failed to add record: %w", err)
			}

			printRecordSet(cmd, out.RecordSet)
			return nil
		},
	}

	cmd.Flags().Int64Var(&ttl, "ttl", 0, "TTL in seconds when creating a new record set")

	return cmd
}

func newCmdRecordSetRemoveRecord() *cobra.Command {
	var keepEmpty bool

	cmd := &cobra.Command{
		Use:                "remove-record <resource-group> <zone> <name> <type> <rdata>...",
		Short:              "Remove one record value from a record set",
		Long:               "Remove one record value from a record set. Removing the last value\ndeletes the record set unless --keep-empty-record-set is given.",
		Args:               cobra.MinimumNArgs(5),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rsUC, _, err := buildRecordSetUseCase(cmd)
			if err != nil {
				return err
			}

			rtype, err := model.ParseRecordType(strings.ToUpper(args[3]))
			if err != nil {
				return err
			}
			value, err := zonefile.ParseValue(rtype, args[4:], args[1]+".")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			logger := logging.FromContext(ctx)

			out, err := rsUC.RemoveRecord(ctx, &recordset.RemoveRecordInput{
				ResourceGroup: args[0],
				ZoneName:      args[1],
				Name:          args[2],
				Type:          rtype,
				Value:         value,
				KeepEmpty:     keepEmpty,
			})
			if err != nil {
				return fmt.Errorf("failed to remove record: %w", err)
			}

			if out.Deleted {
				logger.Info(ctx, "record set deleted", "name", args[2], "type", rtype)
				return nil
			}
			printRecordSet(cmd, out.RecordSet)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepEmpty, "keep-empty-record-set", false, "Keep the record set when its last value is removed")

	return cmd
}

// printRecordSet writes one record set in zone file line format.
func printRecordSet(cmd *cobra.Command, rs *model.RecordSet) {
	w := cmd.OutOrStdout()
	for _, v := range rs.Values {
		fmt.Fprintf(w, "%s %d IN %s %s\n", rs.Name, rs.TTL, rs.Type, v)
	}
	if len(rs.Values) == 0 {
		fmt.Fprintf(w, "%s %d IN %s\n", rs.Name, rs.TTL, rs.Type)
	}
}
