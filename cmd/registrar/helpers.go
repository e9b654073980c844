package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"registrar/internal/catalog"
	"registrar/internal/ipc"
)

var titleCaser = cases.Title(language.Und)

// displayLabel renders a stored lowercase-ish value as a friendly column
// value, e.g. "lecture hall" becomes "Lecture Hall".
func displayLabel(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "-"
	}
	return titleCaser.String(trimmed)
}

// reportMutation prints the outcome of an add/edit/delete call. Rejections
// become CLI errors so scripts get a nonzero exit code.
func reportMutation(cmd *cobra.Command, resp *ipc.MutationResponse, action string) error {
	if resp.Success {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", action)
		return nil
	}
	return fmt.Errorf("%s rejected: %s", action, describeReason(resp.Reason))
}

func describeReason(reason string) string {
	switch reason {
	case catalog.ReasonDuplicate:
		return "a record with that identifier already exists"
	case catalog.ReasonNotFound:
		return "no record with that id exists"
	case catalog.ReasonMissingReference:
		return "a referenced record does not exist"
	case catalog.ReasonInvalid:
		return "invalid field values"
	case catalog.ReasonStore:
		return "the catalog store reported a fault; check the daemon log"
	default:
		return reason
	}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// writeJSON encodes v as indented JSON on the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
