package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newLecturersCommand(ctx *commandContext) *cobra.Command {
	lecturersCmd := &cobra.Command{
		Use:   "lecturers",
		Short: "Manage lecturers",
	}

	lecturersCmd.AddCommand(newLecturersListCommand(ctx))
	lecturersCmd.AddCommand(newLecturersAddCommand(ctx))
	lecturersCmd.AddCommand(newLecturersEditCommand(ctx))
	lecturersCmd.AddCommand(newLecturersDeleteCommand(ctx))

	return lecturersCmd
}

func newLecturersListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all lecturers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadLecturers()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp.Lecturers)
				}
				if len(resp.Lecturers) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No lecturers recorded")
					return nil
				}
				rows := make([][]string, 0, len(resp.Lecturers))
				for _, l := range resp.Lecturers {
					rows = append(rows, []string{
						l.EID, l.Name, l.Faculty, l.Dep, displayLabel(l.Rank), l.ID,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Employee ID", "Name", "Faculty", "Department", "Rank", "ID"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit lecturers as JSON")
	return cmd
}

func lecturerFlags(cmd *cobra.Command, req *ipc.AddLecturerRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Lecturer name")
	cmd.Flags().StringVar(&req.Faculty, "faculty", "", "Faculty")
	cmd.Flags().StringVar(&req.Dep, "department", "", "Department")
	cmd.Flags().StringVar(&req.Center, "center", "", "Center")
	cmd.Flags().StringVar(&req.Building, "building", "", "Home building")
	cmd.Flags().StringVar(&req.Level, "level", "", "Employment level")
	cmd.Flags().StringVar(&req.Rank, "rank", "", "Academic rank")
}

func newLecturersAddCommand(ctx *commandContext) *cobra.Command {
	var req ipc.AddLecturerRequest

	cmd := &cobra.Command{
		Use:   "add <employee-id>",
		Short: "Register a new lecturer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.EID = args[0]
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddLecturer(req)
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("lecturer %s added", args[0]))
			})
		},
	}

	lecturerFlags(cmd, &req)
	return cmd
}

func newLecturersEditCommand(ctx *commandContext) *cobra.Command {
	var req ipc.AddLecturerRequest
	var employeeID string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a lecturer by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.EditLecturer(ipc.EditLecturerRequest{
					ID:       args[0],
					EID:      employeeID,
					Name:     req.Name,
					Faculty:  req.Faculty,
					Dep:      req.Dep,
					Center:   req.Center,
					Building: req.Building,
					Level:    req.Level,
					Rank:     req.Rank,
				})
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("lecturer %s updated", args[0]))
			})
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee-id", "", "New employee id")
	lecturerFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("employee-id")
	return cmd
}

func newLecturersDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lecturer by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.DeleteLecturer(args[0])
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("lecturer %s deleted", args[0]))
			})
		},
	}
}
