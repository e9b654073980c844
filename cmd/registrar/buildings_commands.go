package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newBuildingsCommand(ctx *commandContext) *cobra.Command {
	buildingsCmd := &cobra.Command{
		Use:   "buildings",
		Short: "Manage campus buildings",
	}

	buildingsCmd.AddCommand(newBuildingsListCommand(ctx))
	buildingsCmd.AddCommand(newBuildingsAddCommand(ctx))

	return buildingsCmd
}

func newBuildingsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all buildings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadBuildings()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp.Buildings)
				}
				if len(resp.Buildings) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No buildings recorded")
					return nil
				}
				rows := make([][]string, 0, len(resp.Buildings))
				for _, b := range resp.Buildings {
					rows = append(rows, []string{b.BID, b.ID})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Code", "ID"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit buildings as JSON")
	return cmd
}

func newBuildingsAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <code>",
		Short: "Register a new building",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddBuilding(ipc.AddBuildingRequest{BID: args[0]})
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("building %s added", args[0]))
			})
		},
	}
}
