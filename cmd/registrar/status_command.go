package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon and catalog store status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}
				health, err := client.StoreHealth()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, map[string]any{
						"status": status,
						"store":  health,
					})
				}
				renderStatus(cmd.OutOrStdout(), status, health)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit status as JSON")
	return cmd
}

func renderStatus(out io.Writer, status *ipc.StatusResponse, health *ipc.StoreHealthResponse) {
	colorize := shouldColorize(out)

	fmt.Fprintf(out, "%s %s (pid %d)\n", status.AppName, status.AppVersion, status.PID)

	connectedKind := statusOK
	if !status.Connected {
		connectedKind = statusError
	}
	fmt.Fprintln(out, renderStatusLine("Store connected", connectedKind, yesNo(status.Connected), colorize))
	fmt.Fprintln(out, renderStatusLine("Database", statusInfo, status.DBPath, colorize))

	integrityKind := statusOK
	if !health.IntegrityCheck {
		integrityKind = statusError
	}
	fmt.Fprintln(out, renderStatusLine("Integrity check", integrityKind, yesNo(health.IntegrityCheck), colorize))
	if len(health.MissingTables) > 0 {
		fmt.Fprintln(out, renderStatusLine("Missing tables", statusWarn, strings.Join(health.MissingTables, ", "), colorize))
	}
	if health.Error != "" {
		fmt.Fprintln(out, renderStatusLine("Store error", statusError, health.Error, colorize))
	}
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
