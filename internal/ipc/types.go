package ipc

// Transfer records mirror the field names the presentation surface renders.
// Every record carries the store-assigned opaque id alongside the
// human-chosen code fields; store internals are never forwarded.

// Building is the Building transfer record.
type Building struct {
	BID string `json:"bID"`
	ID  string `json:"id"`
}

// Room is the Room transfer record. BID references the building by code.
type Room struct {
	RID      string `json:"rID"`
	RType    string `json:"rType"`
	BID      string `json:"bID"`
	Capacity int    `json:"capacity"`
	ID       string `json:"id"`
}

// Subject is the Subject transfer record.
type Subject struct {
	SubCode string `json:"subCode"`
	Year    int    `json:"year"`
	Sem     int    `json:"sem"`
	Name    string `json:"name"`
	LecHrs  int    `json:"lecHrs"`
	TuteHrs int    `json:"tuteHrs"`
	LabHrs  int    `json:"labHrs"`
	EvalHrs int    `json:"evalHrs"`
	ID      string `json:"id"`
}

// Lecturer is the Lecturer transfer record.
type Lecturer struct {
	EID      string `json:"eID"`
	Name     string `json:"name"`
	Faculty  string `json:"faculty"`
	Dep      string `json:"dep"`
	Center   string `json:"center"`
	Building string `json:"building"`
	Level    string `json:"level"`
	Rank     string `json:"rank"`
	ID       string `json:"id"`
}

// Schedule is the working-week template transfer record.
type Schedule struct {
	DayCount    int      `json:"dayCount"`
	WorkingDays []string `json:"workingDays"`
	STime       string   `json:"stime"`
	Duration    string   `json:"duration"`
	WTime       string   `json:"wtime"`
	ID          string   `json:"id"`
}

// Session is the Session transfer record. LecNames preserves the order the
// lecturers were supplied in.
type Session struct {
	LecNames     []string `json:"lecNames"`
	Tag          string   `json:"tag"`
	SubName      string   `json:"subName"`
	SubCode      string   `json:"subCode"`
	GroupIDSub   string   `json:"groupIdSub"`
	StudentCount int      `json:"studentCount"`
	Duration     int      `json:"duration"`
	ID           string   `json:"id"`
}

// Tag is the Tag transfer record.
type Tag struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// Student is the Student projection transfer record.
type Student struct {
	Year            int    `json:"year"`
	Sem             int    `json:"sem"`
	Programme       string `json:"programme"`
	Group           string `json:"group"`
	SubGroup        string `json:"subGroup"`
	GroupIDLabel    string `json:"groupIdLabel"`
	SubGroupIDLabel string `json:"subGroupIdLabel"`
	ID              string `json:"id"`
}

// TimeRange marks hours a subgroup cannot be scheduled.
type TimeRange struct {
	Day  string `json:"day"`
	From string `json:"from"`
	To   string `json:"to"`
}

// SubGroup is the SubGroup transfer record. UnavailableHours stays null until
// unavailability has been recorded.
type SubGroup struct {
	SubGroupID       string               `json:"subGroupId"`
	UnavailableHours map[string]TimeRange `json:"unavailableHours"`
	ID               string               `json:"id"`
}

// MutationResponse is the shaped outcome of every add/edit/delete verb.
// Reason is empty on success and one of the catalog reason codes otherwise;
// callers that only care about the boolean can ignore it.
type MutationResponse struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// SearchRequest carries the keyword for search verbs.
type SearchRequest struct {
	Keyword string `json:"keyword"`
}

// DeleteRequest identifies the record a delete verb targets.
type DeleteRequest struct {
	Selected string `json:"selected"`
}

// StatusRequest fetches daemon identity and store reachability.
type StatusRequest struct{}

// StatusResponse reports the application identity and catalog connection
// state, replacing the original app-info handshake.
type StatusResponse struct {
	AppName    string `json:"app_name"`
	AppVersion string `json:"app_version"`
	Connected  bool   `json:"connected"`
	DBPath     string `json:"db_path"`
	PID        int    `json:"pid"`
}

// LogTailRequest reads daemon log lines. A negative offset requests the last
// Limit lines; a non-negative offset requests lines written after it.
type LogTailRequest struct {
	Offset int64 `json:"offset"`
	Limit  int   `json:"limit"`
}

// LogTailResponse carries log lines and the offset to resume from.
type LogTailResponse struct {
	Lines  []string `json:"lines"`
	Offset int64    `json:"offset"`
}

// StoreHealthRequest fetches detailed catalog database diagnostics.
type StoreHealthRequest struct{}

// StoreHealthResponse reports catalog database health information.
type StoreHealthResponse struct {
	DBPath           string   `json:"db_path"`
	DatabaseExists   bool     `json:"database_exists"`
	DatabaseReadable bool     `json:"database_readable"`
	TablesPresent    []string `json:"tables_present"`
	MissingTables    []string `json:"missing_tables"`
	IntegrityCheck   bool     `json:"integrity_check"`
	Error            string   `json:"error"`
}

// LoadBuildingsRequest lists all buildings.
type LoadBuildingsRequest struct{}

// LoadBuildingsResponse contains building transfer records.
type LoadBuildingsResponse struct {
	Buildings []Building `json:"buildings"`
}

// AddBuildingRequest creates a building.
type AddBuildingRequest struct {
	BID string `json:"bID"`
}

// LoadRoomsRequest lists all rooms.
type LoadRoomsRequest struct{}

// LoadRoomsResponse contains room transfer records.
type LoadRoomsResponse struct {
	Rooms []Room `json:"rooms"`
}

// AddRoomRequest creates a room.
type AddRoomRequest struct {
	RID      string `json:"newRoomID"`
	RType    string `json:"roomType"`
	BID      string `json:"buildingID"`
	Capacity int    `json:"capacity"`
}

// EditRoomRequest updates the room identified by ID.
type EditRoomRequest struct {
	RID      string `json:"newRoomID"`
	RType    string `json:"roomType"`
	BID      string `json:"buildingID"`
	Capacity int    `json:"capacity"`
	ID       string `json:"id"`
}

// RoomListResponse contains filtered room transfer records.
type RoomListResponse struct {
	Rooms []Room `json:"rooms"`
}

// LoadSubjectsRequest lists all subjects.
type LoadSubjectsRequest struct{}

// LoadSubjectsResponse contains subject transfer records.
type LoadSubjectsResponse struct {
	Subjects []Subject `json:"subjects"`
}

// AddSubjectRequest creates a subject.
type AddSubjectRequest struct {
	SubCode string `json:"subjectCode"`
	Year    int    `json:"subYear"`
	Sem     int    `json:"subSem"`
	Name    string `json:"subName"`
	LecHrs  int    `json:"subLecHrs"`
	TuteHrs int    `json:"subTuteHrs"`
	LabHrs  int    `json:"subLabHrs"`
	EvalHrs int    `json:"subEvalHrs"`
}

// EditSubjectRequest updates the subject identified by ID.
type EditSubjectRequest struct {
	SubCode string `json:"subjectCode"`
	Year    int    `json:"subYear"`
	Sem     int    `json:"subSem"`
	Name    string `json:"subName"`
	LecHrs  int    `json:"subLecHrs"`
	TuteHrs int    `json:"subTuteHrs"`
	LabHrs  int    `json:"subLabHrs"`
	EvalHrs int    `json:"subEvalHrs"`
	ID      string `json:"id"`
}

// LoadLecturersRequest lists all lecturers.
type LoadLecturersRequest struct{}

// LoadLecturersResponse contains lecturer transfer records.
type LoadLecturersResponse struct {
	Lecturers []Lecturer `json:"lecturers"`
}

// AddLecturerRequest creates a lecturer.
type AddLecturerRequest struct {
	EID      string `json:"eId"`
	Name     string `json:"name"`
	Faculty  string `json:"faculty"`
	Dep      string `json:"dep"`
	Center   string `json:"center"`
	Building string `json:"building"`
	Level    string `json:"level"`
	Rank     string `json:"rank"`
}

// EditLecturerRequest updates the lecturer identified by ID.
type EditLecturerRequest struct {
	EID      string `json:"eId"`
	Name     string `json:"name"`
	Faculty  string `json:"faculty"`
	Dep      string `json:"dep"`
	Center   string `json:"center"`
	Building string `json:"building"`
	Level    string `json:"level"`
	Rank     string `json:"rank"`
	ID       string `json:"id"`
}

// AddScheduleRequest creates a working-week template.
type AddScheduleRequest struct {
	DayCount    int      `json:"dayCount"`
	WorkingDays []string `json:"workingDays"`
	STime       string   `json:"stime"`
	Duration    string   `json:"duration"`
	WTime       string   `json:"wtime"`
}

// EditScheduleRequest updates the template identified by ID.
type EditScheduleRequest struct {
	DayCount    int      `json:"dayCount"`
	WorkingDays []string `json:"workingDays"`
	STime       string   `json:"stime"`
	Duration    string   `json:"duration"`
	WTime       string   `json:"wtime"`
	ID          string   `json:"id"`
}

// LoadSchedulesRequest lists all templates.
type LoadSchedulesRequest struct{}

// LoadSchedulesResponse contains template transfer records.
type LoadSchedulesResponse struct {
	Schedules []Schedule `json:"schedules"`
}

// ScheduleListResponse contains filtered template transfer records.
type ScheduleListResponse struct {
	Schedules []Schedule `json:"schedules"`
}

// LoadSessionsRequest lists all sessions.
type LoadSessionsRequest struct{}

// LoadSessionsResponse contains session transfer records.
type LoadSessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

// AddSessionRequest creates a session.
type AddSessionRequest struct {
	LecNames     []string `json:"lecNames"`
	Tag          string   `json:"tag"`
	SubName      string   `json:"subName"`
	SubCode      string   `json:"subCode"`
	GroupIDSub   string   `json:"groupIdSub"`
	StudentCount int      `json:"studentCount"`
	Duration     int      `json:"Duration"`
}

// SessionListResponse contains filtered session transfer records.
type SessionListResponse struct {
	Sessions []Session `json:"sessions"`
}

// LoadTagsRequest lists all tags.
type LoadTagsRequest struct{}

// LoadTagsResponse contains tag transfer records.
type LoadTagsResponse struct {
	Tags []Tag `json:"tags"`
}

// AddTagRequest creates a tag.
type AddTagRequest struct {
	Name string `json:"name"`
}

// LoadStudentsRequest lists all student projection records.
type LoadStudentsRequest struct{}

// LoadStudentsResponse contains student transfer records.
type LoadStudentsResponse struct {
	Students []Student `json:"students"`
}

// AddStudentRequest creates a student projection record.
type AddStudentRequest struct {
	Year            int    `json:"year"`
	Sem             int    `json:"sem"`
	Programme       string `json:"programme"`
	Group           string `json:"group"`
	SubGroup        string `json:"subGroup"`
	GroupIDLabel    string `json:"groupIdLabel"`
	SubGroupIDLabel string `json:"subGroupIdLabel"`
}

// LoadSubGroupsRequest lists all subgroups.
type LoadSubGroupsRequest struct{}

// LoadSubGroupsResponse contains subgroup transfer records.
type LoadSubGroupsResponse struct {
	SubGroups []SubGroup `json:"subGroups"`
}

// AddSubGroupRequest creates a subgroup. UnavailableHours may be null.
type AddSubGroupRequest struct {
	SubGroupID       string               `json:"subGroupId"`
	UnavailableHours map[string]TimeRange `json:"unavailableHours"`
}

// SetSubGroupUnavailabilityRequest replaces the unavailable-hours map of the
// subgroup identified by ID. A null map clears it.
type SetSubGroupUnavailabilityRequest struct {
	ID               string               `json:"id"`
	UnavailableHours map[string]TimeRange `json:"unavailableHours"`
}
