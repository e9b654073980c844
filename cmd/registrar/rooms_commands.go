package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"registrar/internal/ipc"
)

func newRoomsCommand(ctx *commandContext) *cobra.Command {
	roomsCmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage rooms and halls",
	}

	roomsCmd.AddCommand(newRoomsListCommand(ctx))
	roomsCmd.AddCommand(newRoomsAddCommand(ctx))
	roomsCmd.AddCommand(newRoomsSearchCommand(ctx))
	roomsCmd.AddCommand(newRoomsEditCommand(ctx))
	roomsCmd.AddCommand(newRoomsDeleteCommand(ctx))

	return roomsCmd
}

func roomRows(rooms []ipc.Room) [][]string {
	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []string{r.RID, displayLabel(r.RType), r.BID, itoa(r.Capacity), r.ID})
	}
	return rows
}

func printRooms(cmd *cobra.Command, rooms []ipc.Room, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, rooms)
	}
	if len(rooms) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No rooms matched")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Code", "Type", "Building", "Capacity", "ID"},
		roomRows(rooms),
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
	return nil
}

func newRoomsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.LoadRooms()
				if err != nil {
					return err
				}
				return printRooms(cmd, resp.Rooms, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit rooms as JSON")
	return cmd
}

func newRoomsAddCommand(ctx *commandContext) *cobra.Command {
	var roomType string
	var building string
	var capacity int

	cmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Register a new room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.AddRoom(ipc.AddRoomRequest{
					RID:      args[0],
					RType:    roomType,
					BID:      building,
					Capacity: capacity,
				})
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("room %s added", args[0]))
			})
		},
	}

	cmd.Flags().StringVar(&roomType, "type", "", "Room type, e.g. lab or lecture hall")
	cmd.Flags().StringVar(&building, "building", "", "Building code the room belongs to")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Seating capacity")
	_ = cmd.MarkFlagRequired("building")
	return cmd
}

func newRoomsSearchCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search rooms by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.SearchRooms(args[0])
				if err != nil {
					return err
				}
				return printRooms(cmd, resp.Rooms, asJSON)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit rooms as JSON")
	return cmd
}

func newRoomsEditCommand(ctx *commandContext) *cobra.Command {
	var code string
	var roomType string
	var building string
	var capacity int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a room by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.EditRoom(ipc.EditRoomRequest{
					ID:       args[0],
					RID:      code,
					RType:    roomType,
					BID:      building,
					Capacity: capacity,
				})
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("room %s updated", args[0]))
			})
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "New room code")
	cmd.Flags().StringVar(&roomType, "type", "", "Room type")
	cmd.Flags().StringVar(&building, "building", "", "Building code")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Seating capacity")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("building")
	return cmd
}

func newRoomsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a room by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.DeleteRoom(args[0])
				if err != nil {
					return err
				}
				return reportMutation(cmd, resp, fmt.Sprintf("room %s deleted", args[0]))
			})
		},
	}
}
