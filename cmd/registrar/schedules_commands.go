package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newSchedulesCommand(ctx *commandContext) *cobra.Command {
	schedulesCmd := &cobra.Command{
		Use:   "schedules",
		Short: "Manage working-week templates",
	}

	schedulesCmd.AddCommand(newSchedulesListCommand(ctx))
	schedulesCmd.AddCommand(newSchedulesAddCommand(ctx))
	schedulesCmd.AddCommand(newSchedulesSearchCommand(ctx))
	schedulesCmd.AddCommand(newSchedulesEditCommand(ctx))
	schedulesCmd.AddCommand(newSchedulesDeleteCommand(ctx))

	return schedulesCmd
}

func scheduleRows(schedules []ipc.Schedule) [][]string {
	rows := make([][]string, 0, len(schedules))
	for _, s := range schedules {
		rows = append(rows, []string{
			itoa(s.DayCount),
			strings.Join(s.WorkingDays, ", "),
			s.STime, s.Duration, s.WTime,
			s.ID,
		})
	}
	return rows
}

func printSchedules(cmd *cobra.Command, schedules []ipc.Schedule, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, schedules)
	}
	if len(schedules) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No schedules matched")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Days", "Working Days", "Start", "Duration", "Working Time", "ID"},
		scheduleRows(schedules),
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func newSchedulesListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all working-week templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadSchedules()
				if err != nil {
					return err
				}
				return printSchedules(cmd, resp.Schedules, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit schedules as JSON")
	return cmd
}

func scheduleFlags(cmd *cobra.Command, req *ipc.AddScheduleRequest) {
	cmd.Flags().IntVar(&req.DayCount, "days", 0, "Number of working days")
	cmd.Flags().StringSliceVar(&req.WorkingDays, "working-days", nil, "Working day names in order")
	cmd.Flags().StringVar(&req.STime, "start", "", "Daily starting time, e.g. 08:30")
	cmd.Flags().StringVar(&req.Duration, "duration", "", "Slot duration, e.g. 1h")
	cmd.Flags().StringVar(&req.WTime, "working-time", "", "Total working time per day")
}

func newSchedulesAddCommand(ctx *commandContext) *cobra.Command {
	var req ipc.AddScheduleRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a working-week template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddSchedule(req)
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, "schedule added")
			})
		},
	}

	scheduleFlags(cmd, &req)
	return cmd
}

func newSchedulesSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search templates by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SearchSchedules(args[0])
				if err != nil {
					return err
				}
				return printSchedules(cmd, resp.Schedules, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit schedules as JSON")
	return cmd
}

func newSchedulesEditCommand(ctx *commandContext) *cobra.Command {
	var req ipc.AddScheduleRequest

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a template by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.EditSchedule(ipc.EditScheduleRequest{
					ID:          args[0],
					DayCount:    req.DayCount,
					WorkingDays: req.WorkingDays,
					STime:       req.STime,
					Duration:    req.Duration,
					WTime:       req.WTime,
				})
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("schedule %s updated", args[0]))
			})
		},
	}

	scheduleFlags(cmd, &req)
	return cmd
}

func newSchedulesDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a template by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.DeleteSchedule(args[0])
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("schedule %s deleted", args[0]))
			})
		},
	}
}
