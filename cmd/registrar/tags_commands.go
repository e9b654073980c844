package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage session tags",
	}

	tagsCmd.AddCommand(newTagsListCommand(ctx))
	tagsCmd.AddCommand(newTagsAddCommand(ctx))
	tagsCmd.AddCommand(newTagsDeleteCommand(ctx))

	return tagsCmd
}

func newTagsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all session tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadTags()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp.Tags)
				}
				if len(resp.Tags) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No tags recorded")
					return nil
				}
				rows := make([][]string, 0, len(resp.Tags))
				for _, tag := range resp.Tags {
					rows = append(rows, []string{tag.Name, tag.ID})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Name", "ID"},
					rows,
					[]columnAlignment{alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit tags as JSON")
	return cmd
}

func newTagsAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a session tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddTag(args[0])
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("tag %s added", args[0]))
			})
		},
	}
}

func newTagsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session tag by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.DeleteTag(args[0])
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("tag %s deleted", args[0]))
			})
		},
	}
}
