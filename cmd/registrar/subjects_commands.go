package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newSubjectsCommand(ctx *commandContext) *cobra.Command {
	subjectsCmd := &cobra.Command{
		Use:   "subjects",
		Short: "Manage taught subjects",
	}

	subjectsCmd.AddCommand(newSubjectsListCommand(ctx))
	subjectsCmd.AddCommand(newSubjectsAddCommand(ctx))
	subjectsCmd.AddCommand(newSubjectsEditCommand(ctx))
	subjectsCmd.AddCommand(newSubjectsDeleteCommand(ctx))

	return subjectsCmd
}

func newSubjectsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadSubjects()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp.Subjects)
				}
				if len(resp.Subjects) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No subjects recorded")
					return nil
				}
				rows := make([][]string, 0, len(resp.Subjects))
				for _, s := range resp.Subjects {
					rows = append(rows, []string{
						s.SubCode, s.Name,
						itoa(s.Year), itoa(s.Sem),
						itoa(s.LecHrs), itoa(s.TuteHrs), itoa(s.LabHrs), itoa(s.EvalHrs),
						s.ID,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Code", "Name", "Year", "Sem", "Lec", "Tute", "Lab", "Eval", "ID"},
					rows,
					[]columnAlignment{
						alignLeft, alignLeft,
						alignRight, alignRight,
						alignRight, alignRight, alignRight, alignRight,
						alignLeft,
					},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit subjects as JSON")
	return cmd
}

func subjectFlags(cmd *cobra.Command, req *ipc.AddSubjectRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Subject name")
	cmd.Flags().IntVar(&req.Year, "year", 0, "Curriculum year")
	cmd.Flags().IntVar(&req.Sem, "semester", 0, "Semester within the year")
	cmd.Flags().IntVar(&req.LecHrs, "lecture-hours", 0, "Weekly lecture hours")
	cmd.Flags().IntVar(&req.TuteHrs, "tutorial-hours", 0, "Weekly tutorial hours")
	cmd.Flags().IntVar(&req.LabHrs, "lab-hours", 0, "Weekly lab hours")
	cmd.Flags().IntVar(&req.EvalHrs, "evaluation-hours", 0, "Weekly evaluation hours")
}

func newSubjectsAddCommand(ctx *commandContext) *cobra.Command {
	var req ipc.AddSubjectRequest

	cmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Register a new subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.SubCode = args[0]
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddSubject(req)
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("subject %s added", args[0]))
			})
		},
	}

	subjectFlags(cmd, &req)
	return cmd
}

func newSubjectsEditCommand(ctx *commandContext) *cobra.Command {
	var req ipc.AddSubjectRequest
	var code string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a subject by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.EditSubject(ipc.EditSubjectRequest{
					ID:      args[0],
					SubCode: code,
					Year:    req.Year,
					Sem:     req.Sem,
					Name:    req.Name,
					LecHrs:  req.LecHrs,
					TuteHrs: req.TuteHrs,
					LabHrs:  req.LabHrs,
					EvalHrs: req.EvalHrs,
				})
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("subject %s updated", args[0]))
			})
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "New subject code")
	subjectFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func newSubjectsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subject by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.DeleteSubject(args[0])
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("subject %s deleted", args[0]))
			})
		},
	}
}
