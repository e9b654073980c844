package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show daemon log output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LogTail(ipc.LogTailRequest{Offset: -1, Limit: lines})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, line := range resp.Lines {
					fmt.Fprintln(out, line)
				}
				if !follow {
					return nil
				}
				offset := resp.Offset
				for {
					select {
					case <-cmd.Context().Done():
						return cmd.Context().Err()
					case <-time.After(time.Second):
					}
					next, err := client.LogTail(ipc.LogTailRequest{Offset: offset})
					if err != nil {
						return err
					}
					for _, line := range next.Lines {
						fmt.Fprintln(out, line)
					}
					offset = next.Offset
				}
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Poll for new lines until interrupted")
	return cmd
}
