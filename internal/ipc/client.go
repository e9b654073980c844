package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Status retrieves daemon identity and store reachability.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("Registrar.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LogTail returns log lines from the daemon.
func (c *Client) LogTail(req LogTailRequest) (*LogTailResponse, error) {
	var resp LogTailResponse
	if err := c.client.Call("Registrar.LogTail", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StoreHealth retrieves detailed catalog database diagnostics.
func (c *Client) StoreHealth() (*StoreHealthResponse, error) {
	var resp StoreHealthResponse
	if err := c.client.Call("Registrar.StoreHealth", StoreHealthRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadBuildings returns every building record.
func (c *Client) LoadBuildings() (*LoadBuildingsResponse, error) {
	var resp LoadBuildingsResponse
	if err := c.client.Call("Registrar.LoadBuildings", LoadBuildingsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddBuilding creates a building.
func (c *Client) AddBuilding(req AddBuildingRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddBuilding", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadRooms returns every room record.
func (c *Client) LoadRooms() (*LoadRoomsResponse, error) {
	var resp LoadRoomsResponse
	if err := c.client.Call("Registrar.LoadRooms", LoadRoomsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddRoom creates a room.
func (c *Client) AddRoom(req AddRoomRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddRoom", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchRooms returns rooms matching the keyword.
func (c *Client) SearchRooms(keyword string) (*RoomListResponse, error) {
	var resp RoomListResponse
	if err := c.client.Call("Registrar.SearchRooms", SearchRequest{Keyword: keyword}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditRoom updates a room.
func (c *Client) EditRoom(req EditRoomRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.EditRoom", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteRoom removes a room by id.
func (c *Client) DeleteRoom(id string) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.DeleteRoom", DeleteRequest{Selected: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadSubjects returns every subject record.
func (c *Client) LoadSubjects() (*LoadSubjectsResponse, error) {
	var resp LoadSubjectsResponse
	if err := c.client.Call("Registrar.LoadSubjects", LoadSubjectsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddSubject creates a subject.
func (c *Client) AddSubject(req AddSubjectRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddSubject", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditSubject updates a subject.
func (c *Client) EditSubject(req EditSubjectRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.EditSubject", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSubject removes a subject by id.
func (c *Client) DeleteSubject(id string) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.DeleteSubject", DeleteRequest{Selected: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadLecturers returns every lecturer record.
func (c *Client) LoadLecturers() (*LoadLecturersResponse, error) {
	var resp LoadLecturersResponse
	if err := c.client.Call("Registrar.LoadLecturers", LoadLecturersRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddLecturer creates a lecturer.
func (c *Client) AddLecturer(req AddLecturerRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddLecturer", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditLecturer updates a lecturer.
func (c *Client) EditLecturer(req EditLecturerRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.EditLecturer", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteLecturer removes a lecturer by id.
func (c *Client) DeleteLecturer(id string) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.DeleteLecturer", DeleteRequest{Selected: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadSchedules returns every working-week template.
func (c *Client) LoadSchedules() (*LoadSchedulesResponse, error) {
	var resp LoadSchedulesResponse
	if err := c.client.Call("Registrar.LoadSchedules", LoadSchedulesRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddSchedule creates a working-week template.
func (c *Client) AddSchedule(req AddScheduleRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddSchedule", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchSchedules returns templates matching the keyword.
func (c *Client) SearchSchedules(keyword string) (*ScheduleListResponse, error) {
	var resp ScheduleListResponse
	if err := c.client.Call("Registrar.SearchSchedules", SearchRequest{Keyword: keyword}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EditSchedule updates a template.
func (c *Client) EditSchedule(req EditScheduleRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.EditSchedule", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSchedule removes a template by id.
func (c *Client) DeleteSchedule(id string) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.DeleteSchedule", DeleteRequest{Selected: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadSessions returns every session record.
func (c *Client) LoadSessions() (*LoadSessionsResponse, error) {
	var resp LoadSessionsResponse
	if err := c.client.Call("Registrar.LoadSessions", LoadSessionsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddSession creates a session.
func (c *Client) AddSession(req AddSessionRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddSession", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchSessions returns sessions matching the keyword.
func (c *Client) SearchSessions(keyword string) (*SessionListResponse, error) {
	var resp SessionListResponse
	if err := c.client.Call("Registrar.SearchSessions", SearchRequest{Keyword: keyword}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSession removes a session by id.
func (c *Client) DeleteSession(id string) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.DeleteSession", DeleteRequest{Selected: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadTags returns every tag record.
func (c *Client) LoadTags() (*LoadTagsResponse, error) {
	var resp LoadTagsResponse
	if err := c.client.Call("Registrar.LoadTags", LoadTagsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddTag creates a tag.
func (c *Client) AddTag(name string) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddTag", AddTagRequest{Name: name}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTag removes a tag by id.
func (c *Client) DeleteTag(id string) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.DeleteTag", DeleteRequest{Selected: id}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadStudents returns every student projection record.
func (c *Client) LoadStudents() (*LoadStudentsResponse, error) {
	var resp LoadStudentsResponse
	if err := c.client.Call("Registrar.LoadStudents", LoadStudentsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddStudent creates a student projection record.
func (c *Client) AddStudent(req AddStudentRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddStudent", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoadSubGroups returns every subgroup record.
func (c *Client) LoadSubGroups() (*LoadSubGroupsResponse, error) {
	var resp LoadSubGroupsResponse
	if err := c.client.Call("Registrar.LoadSubGroups", LoadSubGroupsRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddSubGroup creates a subgroup.
func (c *Client) AddSubGroup(req AddSubGroupRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.AddSubGroup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetSubGroupUnavailability replaces a subgroup's unavailable hours.
func (c *Client) SetSubGroupUnavailability(req SetSubGroupUnavailabilityRequest) (*MutationResponse, error) {
	var resp MutationResponse
	if err := c.client.Call("Registrar.SetSubGroupUnavailability", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
