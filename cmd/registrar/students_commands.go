package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newStudentsCommand(ctx *commandContext) *cobra.Command {
	studentsCmd := &cobra.Command{
		Use:   "students",
		Short: "Manage student group records",
	}

	studentsCmd.AddCommand(newStudentsListCommand(ctx))
	studentsCmd.AddCommand(newStudentsAddCommand(ctx))

	return studentsCmd
}

func newStudentsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all student group records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadStudents()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp.Students)
				}
				if len(resp.Students) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No student records")
					return nil
				}
				rows := make([][]string, 0, len(resp.Students))
				for _, s := range resp.Students {
					rows = append(rows, []string{
						itoa(s.Year), itoa(s.Sem), s.Programme,
						s.GroupIDLabel, s.SubGroupIDLabel,
						s.ID,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Year", "Sem", "Programme", "Group", "Subgroup", "ID"},
					rows,
					[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit students as JSON")
	return cmd
}

func newStudentsAddCommand(ctx *commandContext) *cobra.Command {
	var req ipc.AddStudentRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a student group record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddStudent(req)
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, "student record added")
			})
		},
	}

	cmd.Flags().IntVar(&req.Year, "year", 0, "Curriculum year")
	cmd.Flags().IntVar(&req.Sem, "semester", 0, "Semester within the year")
	cmd.Flags().StringVar(&req.Programme, "programme", "", "Programme of study")
	cmd.Flags().StringVar(&req.Group, "group", "", "Group number")
	cmd.Flags().StringVar(&req.SubGroup, "subgroup", "", "Subgroup number")
	cmd.Flags().StringVar(&req.GroupIDLabel, "group-label", "", "Composed group label")
	cmd.Flags().StringVar(&req.SubGroupIDLabel, "subgroup-label", "", "Composed subgroup label")
	return cmd
}
