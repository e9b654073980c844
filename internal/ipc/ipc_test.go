package ipc_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"registrar/internal/catalog"
	"registrar/internal/daemon"
	"registrar/internal/ipc"
	"registrar/internal/logging"
	"registrar/internal/testsupport"
)

func newTestServer(t *testing.T) *ipc.Client {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	logger := logging.NewNop()
	d, err := daemon.New(cfg, st, logger)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() {
		d.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	socket := cfg.SocketPath()
	srv, err := ipc.NewServer(ctx, socket, d, logger)
	if err != nil {
		if strings.Contains(err.Error(), "operation not permitted") {
			t.Skipf("skipping IPC server test: %v", err)
		}
		t.Fatalf("ipc.NewServer: %v", err)
	}
	srv.Serve()
	t.Cleanup(func() {
		srv.Close()
	})

	time.Sleep(50 * time.Millisecond)

	client, err := ipc.Dial(socket)
	if err != nil {
		t.Fatalf("ipc.Dial: %v", err)
	}
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func TestIPCServerClient(t *testing.T) {
	client := newTestServer(t)

	status, err := client.Status()
	if err != nil {
		t.Fatalf("Status RPC failed: %v", err)
	}
	if !status.Connected {
		t.Fatal("expected connected store")
	}
	if status.AppName == "" || status.AppVersion == "" {
		t.Fatalf("expected app identity, got %#v", status)
	}

	addB, err := client.AddBuilding(ipc.AddBuildingRequest{BID: "A1"})
	if err != nil {
		t.Fatalf("AddBuilding failed: %v", err)
	}
	if !addB.Success {
		t.Fatalf("expected building add to succeed, got %#v", addB)
	}

	dup, err := client.AddBuilding(ipc.AddBuildingRequest{BID: "A1"})
	if err != nil {
		t.Fatalf("AddBuilding duplicate failed: %v", err)
	}
	if dup.Success || dup.Reason != catalog.ReasonDuplicate {
		t.Fatalf("expected duplicate rejection, got %#v", dup)
	}

	buildings, err := client.LoadBuildings()
	if err != nil {
		t.Fatalf("LoadBuildings failed: %v", err)
	}
	if len(buildings.Buildings) != 1 || buildings.Buildings[0].BID != "A1" {
		t.Fatalf("unexpected buildings: %#v", buildings.Buildings)
	}
	if buildings.Buildings[0].ID == "" {
		t.Fatal("expected assigned building id")
	}

	addR, err := client.AddRoom(ipc.AddRoomRequest{RID: "R101", RType: "lab", BID: "A1", Capacity: 40})
	if err != nil {
		t.Fatalf("AddRoom failed: %v", err)
	}
	if !addR.Success {
		t.Fatalf("expected room add to succeed, got %#v", addR)
	}

	orphan, err := client.AddRoom(ipc.AddRoomRequest{RID: "R102", RType: "lab", BID: "ZZ", Capacity: 10})
	if err != nil {
		t.Fatalf("AddRoom orphan failed: %v", err)
	}
	if orphan.Success || orphan.Reason != catalog.ReasonMissingReference {
		t.Fatalf("expected missing-reference rejection, got %#v", orphan)
	}

	rooms, err := client.SearchRooms("r10")
	if err != nil {
		t.Fatalf("SearchRooms failed: %v", err)
	}
	if len(rooms.Rooms) != 1 || rooms.Rooms[0].RID != "R101" {
		t.Fatalf("unexpected search result: %#v", rooms.Rooms)
	}
	room := rooms.Rooms[0]
	if room.Capacity != 40 || room.BID != "A1" {
		t.Fatalf("room fields not preserved: %#v", room)
	}

	edit, err := client.EditRoom(ipc.EditRoomRequest{ID: room.ID, RID: "R101", RType: "lecture hall", BID: "A1", Capacity: 60})
	if err != nil {
		t.Fatalf("EditRoom failed: %v", err)
	}
	if !edit.Success {
		t.Fatalf("expected edit to keep own code, got %#v", edit)
	}

	del, err := client.DeleteRoom(room.ID)
	if err != nil {
		t.Fatalf("DeleteRoom failed: %v", err)
	}
	if !del.Success {
		t.Fatalf("expected delete to succeed, got %#v", del)
	}
	gone, err := client.DeleteRoom(room.ID)
	if err != nil {
		t.Fatalf("DeleteRoom second failed: %v", err)
	}
	if gone.Success || gone.Reason != catalog.ReasonNotFound {
		t.Fatalf("expected not-found on second delete, got %#v", gone)
	}

	health, err := client.StoreHealth()
	if err != nil {
		t.Fatalf("StoreHealth failed: %v", err)
	}
	if !strings.HasSuffix(health.DBPath, "catalog.db") {
		t.Fatalf("unexpected db path: %s", health.DBPath)
	}
	if len(health.MissingTables) != 0 {
		t.Fatalf("expected no missing tables: %v", health.MissingTables)
	}
}

func TestIPCSessionsAndTags(t *testing.T) {
	client := newTestServer(t)

	add, err := client.AddSession(ipc.AddSessionRequest{
		LecNames:     []string{"Dr. Silva", "Ms. Perera"},
		Tag:          "Lecture",
		SubName:      "Data Structures",
		SubCode:      "CS201",
		GroupIDSub:   "Y2.S1.01",
		StudentCount: 120,
		Duration:     2,
	})
	if err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	if !add.Success {
		t.Fatalf("expected session add to succeed, got %#v", add)
	}

	invalid, err := client.AddSession(ipc.AddSessionRequest{SubCode: "CS202", StudentCount: 0, Duration: 1})
	if err != nil {
		t.Fatalf("AddSession invalid failed: %v", err)
	}
	if invalid.Success || invalid.Reason != catalog.ReasonInvalid {
		t.Fatalf("expected invalid rejection, got %#v", invalid)
	}

	found, err := client.SearchSessions("silva")
	if err != nil {
		t.Fatalf("SearchSessions failed: %v", err)
	}
	if len(found.Sessions) != 1 {
		t.Fatalf("expected one session, got %#v", found.Sessions)
	}
	session := found.Sessions[0]
	if len(session.LecNames) != 2 || session.LecNames[0] != "Dr. Silva" {
		t.Fatalf("lecturer names not preserved in order: %#v", session.LecNames)
	}

	empty, err := client.SearchSessions("   ")
	if err != nil {
		t.Fatalf("SearchSessions blank failed: %v", err)
	}
	if len(empty.Sessions) != 0 {
		t.Fatalf("expected empty result for blank keyword, got %#v", empty.Sessions)
	}

	tag, err := client.AddTag("Tutorial")
	if err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}
	if !tag.Success {
		t.Fatalf("expected tag add to succeed, got %#v", tag)
	}
	tags, err := client.LoadTags()
	if err != nil {
		t.Fatalf("LoadTags failed: %v", err)
	}
	if len(tags.Tags) != 1 || tags.Tags[0].Name != "Tutorial" {
		t.Fatalf("unexpected tags: %#v", tags.Tags)
	}
}

func TestIPCSubGroupUnavailability(t *testing.T) {
	client := newTestServer(t)

	add, err := client.AddSubGroup(ipc.AddSubGroupRequest{SubGroupID: "Y1.S1.01.1"})
	if err != nil {
		t.Fatalf("AddSubGroup failed: %v", err)
	}
	if !add.Success {
		t.Fatalf("expected subgroup add to succeed, got %#v", add)
	}

	groups, err := client.LoadSubGroups()
	if err != nil {
		t.Fatalf("LoadSubGroups failed: %v", err)
	}
	if len(groups.SubGroups) != 1 {
		t.Fatalf("expected one subgroup, got %#v", groups.SubGroups)
	}
	group := groups.SubGroups[0]
	if group.UnavailableHours != nil {
		t.Fatalf("expected nil hours before assignment, got %#v", group.UnavailableHours)
	}

	set, err := client.SetSubGroupUnavailability(ipc.SetSubGroupUnavailabilityRequest{
		ID: group.ID,
		UnavailableHours: map[string]ipc.TimeRange{
			"0": {Day: "Monday", From: "08:30", To: "10:30"},
		},
	})
	if err != nil {
		t.Fatalf("SetSubGroupUnavailability failed: %v", err)
	}
	if !set.Success {
		t.Fatalf("expected unavailability update to succeed, got %#v", set)
	}

	groups, err = client.LoadSubGroups()
	if err != nil {
		t.Fatalf("LoadSubGroups after update failed: %v", err)
	}
	hours := groups.SubGroups[0].UnavailableHours
	if hours == nil || hours["0"].Day != "Monday" || hours["0"].From != "08:30" {
		t.Fatalf("unexpected hours: %#v", hours)
	}

	missing, err := client.SetSubGroupUnavailability(ipc.SetSubGroupUnavailabilityRequest{ID: "nope"})
	if err != nil {
		t.Fatalf("SetSubGroupUnavailability missing failed: %v", err)
	}
	if missing.Success || missing.Reason != catalog.ReasonNotFound {
		t.Fatalf("expected not-found rejection, got %#v", missing)
	}
}
