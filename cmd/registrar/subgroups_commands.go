package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newSubGroupsCommand(ctx *commandContext) *cobra.Command {
	subGroupsCmd := &cobra.Command{
		Use:   "subgroups",
		Short: "Manage subgroups and their unavailable hours",
	}

	subGroupsCmd.AddCommand(newSubGroupsListCommand(ctx))
	subGroupsCmd.AddCommand(newSubGroupsAddCommand(ctx))
	subGroupsCmd.AddCommand(newSubGroupsUnavailabilityCommand(ctx))

	return subGroupsCmd
}

func formatUnavailableHours(hours map[string]ipc.TimeRange) string {
	if len(hours) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(hours))
	for k := range hours {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		tr := hours[k]
		parts = append(parts, fmt.Sprintf("%s %s-%s", tr.Day, tr.From, tr.To))
	}
	return strings.Join(parts, "; ")
}

func newSubGroupsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all subgroups",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadSubGroups()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp.SubGroups)
				}
				if len(resp.SubGroups) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No subgroups recorded")
					return nil
				}
				rows := make([][]string, 0, len(resp.SubGroups))
				for _, g := range resp.SubGroups {
					rows = append(rows, []string{
						g.SubGroupID,
						formatUnavailableHours(g.UnavailableHours),
						g.ID,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Code", "Unavailable", "ID"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit subgroups as JSON")
	return cmd
}

func newSubGroupsAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <code>",
		Short: "Register a subgroup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddSubGroup(ipc.AddSubGroupRequest{SubGroupID: args[0]})
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("subgroup %s added", args[0]))
			})
		},
	}
}

// parseBlock decodes a "Day HH:MM-HH:MM" argument.
func parseBlock(raw string) (ipc.TimeRange, error) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) != 2 {
		return ipc.TimeRange{}, fmt.Errorf("invalid block %q, expected \"Day HH:MM-HH:MM\"", raw)
	}
	span := strings.SplitN(fields[1], "-", 2)
	if len(span) != 2 || span[0] == "" || span[1] == "" {
		return ipc.TimeRange{}, fmt.Errorf("invalid time span in block %q", raw)
	}
	return ipc.TimeRange{Day: fields[0], From: span[0], To: span[1]}, nil
}

func newSubGroupsUnavailabilityCommand(ctx *commandContext) *cobra.Command {
	var blocks []string
	var clear bool

	cmd := &cobra.Command{
		Use:   "unavailability <id>",
		Short: "Replace a subgroup's unavailable hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clear && len(blocks) == 0 {
				return fmt.Errorf("provide at least one --block or use --clear")
			}
			var hours map[string]ipc.TimeRange
			if !clear {
				hours = make(map[string]ipc.TimeRange, len(blocks))
				for i, raw := range blocks {
					tr, err := parseBlock(raw)
					if err != nil {
						return err
					}
					hours[itoa(i)] = tr
				}
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SetSubGroupUnavailability(ipc.SetSubGroupUnavailabilityRequest{
					ID:               args[0],
					UnavailableHours: hours,
				})
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("subgroup %s unavailability updated", args[0]))
			})
		},
	}

	cmd.Flags().StringArrayVar(&blocks, "block", nil, "Unavailable block, e.g. \"Monday 08:30-10:30\" (repeatable)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear all recorded unavailable hours")
	return cmd
}
