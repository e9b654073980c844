package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newSessionsCommand(ctx *commandContext) *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage teaching sessions",
	}

	sessionsCmd.AddCommand(newSessionsListCommand(ctx))
	sessionsCmd.AddCommand(newSessionsAddCommand(ctx))
	sessionsCmd.AddCommand(newSessionsSearchCommand(ctx))
	sessionsCmd.AddCommand(newSessionsDeleteCommand(ctx))

	return sessionsCmd
}

func sessionRows(sessions []ipc.Session) [][]string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			strings.Join(s.LecNames, ", "),
			s.Tag, s.SubCode, s.SubName, s.GroupIDSub,
			itoa(s.StudentCount), itoa(s.Duration),
			s.ID,
		})
	}
	return rows
}

func printSessions(cmd *cobra.Command, sessions []ipc.Session, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, sessions)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sessions matched")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Lecturers", "Tag", "Subject", "Name", "Group", "Students", "Hours", "ID"},
		sessionRows(sessions),
		[]columnAlignment{
			alignLeft, alignLeft, alignLeft, alignLeft, alignLeft,
			alignRight, alignRight, alignLeft,
		},
	))
	return nil
}

func newSessionsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadSessions()
				if err != nil {
					return err
				}
				return printSessions(cmd, resp.Sessions, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit sessions as JSON")
	return cmd
}

func newSessionsAddCommand(ctx *commandContext) *cobra.Command {
	var req ipc.AddSessionRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a teaching session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddSession(req)
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, "session added")
			})
		},
	}

	cmd.Flags().StringSliceVar(&req.LecNames, "lecturers", nil, "Lecturer names in presentation order")
	cmd.Flags().StringVar(&req.Tag, "tag", "", "Session tag, e.g. Lecture or Tutorial")
	cmd.Flags().StringVar(&req.SubName, "subject-name", "", "Subject name")
	cmd.Flags().StringVar(&req.SubCode, "subject-code", "", "Subject code")
	cmd.Flags().StringVar(&req.GroupIDSub, "group", "", "Student group identifier")
	cmd.Flags().IntVar(&req.StudentCount, "students", 0, "Number of students attending")
	cmd.Flags().IntVar(&req.Duration, "hours", 0, "Session duration in hours")
	return cmd
}

func newSessionsSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search sessions by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SearchSessions(args[0])
				if err != nil {
					return err
				}
				return printSessions(cmd, resp.Sessions, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit sessions as JSON")
	return cmd
}

func newSessionsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.DeleteSession(args[0])
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("session %s deleted", args[0]))
			})
		},
	}
}
