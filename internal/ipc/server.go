package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"sync"
	"time"

	"log/slog"

	"registrar/internal/catalog"
	"registrar/internal/daemon"
	"registrar/internal/logging"
	"registrar/internal/logs"
)

// Server exposes the catalog access modules via JSON-RPC over a Unix domain
// socket. Each connection gets its own codec, so concurrent callers are
// correlated per call instead of sharing one reply channel.
type Server struct {
	path      string
	daemon    *daemon.Daemon
	logger    *slog.Logger
	listener  net.Listener
	rpcServer *rpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer configures the IPC server at the given socket path.
func NewServer(ctx context.Context, path string, d *daemon.Daemon, logger *slog.Logger) (*Server, error) {
	if d == nil {
		return nil, errors.New("ipc server requires daemon")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := os.RemoveAll(path); err != nil {
		return nil, fmt.Errorf("remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen on socket: %w", err)
	}

	rpcServer := rpc.NewServer()
	srv := &service{
		daemon:    d,
		locations: d.Locations(),
		subjects:  d.Subjects(),
		lecturers: d.Lecturers(),
		schedules: d.Schedules(),
		sessions:  d.Sessions(),
		students:  d.Students(),
		timeout:   d.RequestTimeout(),
		logger:    logger,
		ctx:       ctx,
	}
	if err := rpcServer.RegisterName("Registrar", srv); err != nil {
		listener.Close()
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	return &Server{
		path:      path,
		daemon:    d,
		logger:    logger,
		listener:  listener,
		rpcServer: rpcServer,
		ctx:       serverCtx,
		cancel:    cancel,
	}, nil
}

// Serve starts accepting RPC connections until the context is canceled.
func (s *Server) Serve() {
	s.logger.Debug("IPC server listening", logging.String("socket", s.path))
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			conn, err := s.listener.Accept()
			if err != nil {
				select {
				case <-s.ctx.Done():
					return
				default:
				}
				s.logger.Warn("accept failed", logging.Error(err))
				continue
			}
			s.wg.Add(1)
			go func(c net.Conn) {
				defer s.wg.Done()
				s.rpcServer.ServeCodec(jsonrpc.NewServerCodec(c))
			}(conn)
		}
	}()
}

// Close stops the server and removes the socket file.
func (s *Server) Close() {
	s.cancel()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.wg.Wait()
	if err := os.RemoveAll(s.path); err != nil {
		s.logger.Warn("failed to remove socket",
			logging.String("socket", s.path),
			logging.Error(err))
	}
}

type service struct {
	daemon    *daemon.Daemon
	locations *catalog.Locations
	subjects  *catalog.Subjects
	lecturers *catalog.Lecturers
	schedules *catalog.Schedules
	sessions  *catalog.Sessions
	students  *catalog.Students
	timeout   time.Duration
	logger    *slog.Logger
	ctx       context.Context
}

func (s *service) log() *slog.Logger {
	if s.logger == nil {
		return logging.NewNop()
	}
	return s.logger.With(logging.String(logging.FieldComponent, "ipc"))
}

// callContext bounds each catalog call so a wedged store cannot hold a
// connection open forever.
func (s *service) callContext() (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(s.ctx)
	}
	return context.WithTimeout(s.ctx, s.timeout)
}

// shapeMutation folds a catalog error into the boolean contract. Mutations
// never return RPC-level errors; failure travels as {success:false, reason}.
func (s *service) shapeMutation(verb string, err error, resp *MutationResponse) error {
	if err == nil {
		resp.Success = true
		return nil
	}
	resp.Success = false
	resp.Reason = catalog.Kind(err)
	if resp.Reason == catalog.ReasonStore {
		s.log().Error(verb+" failed", logging.Error(err))
	} else {
		s.log().Debug(verb+" rejected", logging.String("reason", resp.Reason))
	}
	return nil
}

// listError sanitizes read failures. The underlying fault is logged on the
// daemon side and never forwarded to the caller.
func (s *service) listError(verb string, err error) error {
	s.log().Error(verb+" failed", logging.Error(err))
	return fmt.Errorf("%s: catalog unavailable", verb)
}

func (s *service) Status(_ StatusRequest, resp *StatusResponse) error {
	status := s.daemon.Status(s.ctx)
	resp.AppName = status.AppName
	resp.AppVersion = status.AppVersion
	resp.Connected = status.Connected
	resp.DBPath = status.DBPath
	resp.PID = status.PID
	return nil
}

func (s *service) LogTail(req LogTailRequest, resp *LogTailResponse) error {
	result, err := logs.Tail(s.daemon.LogPath(), req.Offset, req.Limit)
	if err != nil {
		return s.listError("log tail", err)
	}
	resp.Lines = result.Lines
	resp.Offset = result.Offset
	return nil
}

func (s *service) StoreHealth(_ StoreHealthRequest, resp *StoreHealthResponse) error {
	health, err := s.daemon.StoreHealth(s.ctx)
	resp.DBPath = health.DBPath
	resp.DatabaseExists = health.DatabaseExists
	resp.DatabaseReadable = health.DatabaseReadable
	resp.TablesPresent = append(resp.TablesPresent, health.TablesPresent...)
	resp.MissingTables = append(resp.MissingTables, health.MissingTables...)
	resp.IntegrityCheck = health.IntegrityCheck
	resp.Error = health.Error
	return err
}

func (s *service) LoadBuildings(_ LoadBuildingsRequest, resp *LoadBuildingsResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.locations.Buildings(ctx)
	if err != nil {
		return s.listError("load buildings", err)
	}
	resp.Buildings = buildingRecords(items)
	return nil
}

func (s *service) AddBuilding(req AddBuildingRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.locations.AddBuilding(ctx, req.BID)
	return s.shapeMutation("add building", err, resp)
}

func (s *service) LoadRooms(_ LoadRoomsRequest, resp *LoadRoomsResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.locations.Rooms(ctx)
	if err != nil {
		return s.listError("load rooms", err)
	}
	resp.Rooms = roomRecords(items)
	return nil
}

func (s *service) AddRoom(req AddRoomRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.locations.AddRoom(ctx, req.RID, req.RType, req.BID, req.Capacity)
	return s.shapeMutation("add room", err, resp)
}

func (s *service) SearchRooms(req SearchRequest, resp *RoomListResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.locations.SearchRooms(ctx, req.Keyword)
	if err != nil {
		return s.listError("search rooms", err)
	}
	resp.Rooms = roomRecords(items)
	return nil
}

func (s *service) EditRoom(req EditRoomRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.locations.EditRoom(ctx, req.ID, req.RID, req.RType, req.BID, req.Capacity)
	return s.shapeMutation("edit room", err, resp)
}

func (s *service) DeleteRoom(req DeleteRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.locations.DeleteRoom(ctx, req.Selected)
	return s.shapeMutation("delete room", err, resp)
}

func (s *service) LoadSubjects(_ LoadSubjectsRequest, resp *LoadSubjectsResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.subjects.List(ctx)
	if err != nil {
		return s.listError("load subjects", err)
	}
	resp.Subjects = subjectRecords(items)
	return nil
}

func (s *service) AddSubject(req AddSubjectRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.subjects.Add(ctx, catalog.Subject{
		Code:          req.SubCode,
		Year:          req.Year,
		Semester:      req.Sem,
		Name:          req.Name,
		LectureHours:  req.LecHrs,
		TutorialHours: req.TuteHrs,
		LabHours:      req.LabHrs,
		EvalHours:     req.EvalHrs,
	})
	return s.shapeMutation("add subject", err, resp)
}

func (s *service) EditSubject(req EditSubjectRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.subjects.Edit(ctx, catalog.Subject{
		ID:            req.ID,
		Code:          req.SubCode,
		Year:          req.Year,
		Semester:      req.Sem,
		Name:          req.Name,
		LectureHours:  req.LecHrs,
		TutorialHours: req.TuteHrs,
		LabHours:      req.LabHrs,
		EvalHours:     req.EvalHrs,
	})
	return s.shapeMutation("edit subject", err, resp)
}

func (s *service) DeleteSubject(req DeleteRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.subjects.Delete(ctx, req.Selected)
	return s.shapeMutation("delete subject", err, resp)
}

func (s *service) LoadLecturers(_ LoadLecturersRequest, resp *LoadLecturersResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.lecturers.List(ctx)
	if err != nil {
		return s.listError("load lecturers", err)
	}
	resp.Lecturers = lecturerRecords(items)
	return nil
}

func (s *service) AddLecturer(req AddLecturerRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.lecturers.Add(ctx, catalog.Lecturer{
		EmployeeID: req.EID,
		Name:       req.Name,
		Faculty:    req.Faculty,
		Department: req.Dep,
		Center:     req.Center,
		Building:   req.Building,
		Level:      req.Level,
		Rank:       req.Rank,
	})
	return s.shapeMutation("add lecturer", err, resp)
}

func (s *service) EditLecturer(req EditLecturerRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.lecturers.Edit(ctx, catalog.Lecturer{
		ID:         req.ID,
		EmployeeID: req.EID,
		Name:       req.Name,
		Faculty:    req.Faculty,
		Department: req.Dep,
		Center:     req.Center,
		Building:   req.Building,
		Level:      req.Level,
		Rank:       req.Rank,
	})
	return s.shapeMutation("edit lecturer", err, resp)
}

func (s *service) DeleteLecturer(req DeleteRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.lecturers.Delete(ctx, req.Selected)
	return s.shapeMutation("delete lecturer", err, resp)
}

func (s *service) LoadSchedules(_ LoadSchedulesRequest, resp *LoadSchedulesResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.schedules.List(ctx)
	if err != nil {
		return s.listError("load schedules", err)
	}
	resp.Schedules = scheduleRecords(items)
	return nil
}

func (s *service) AddSchedule(req AddScheduleRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.schedules.Add(ctx, catalog.Schedule{
		DayCount:     req.DayCount,
		WorkingDays:  req.WorkingDays,
		StartingTime: req.STime,
		Duration:     req.Duration,
		WorkingTime:  req.WTime,
	})
	return s.shapeMutation("add schedule", err, resp)
}

func (s *service) SearchSchedules(req SearchRequest, resp *ScheduleListResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.schedules.Search(ctx, req.Keyword)
	if err != nil {
		return s.listError("search schedules", err)
	}
	resp.Schedules = scheduleRecords(items)
	return nil
}

func (s *service) EditSchedule(req EditScheduleRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.schedules.Edit(ctx, catalog.Schedule{
		ID:           req.ID,
		DayCount:     req.DayCount,
		WorkingDays:  req.WorkingDays,
		StartingTime: req.STime,
		Duration:     req.Duration,
		WorkingTime:  req.WTime,
	})
	return s.shapeMutation("edit schedule", err, resp)
}

func (s *service) DeleteSchedule(req DeleteRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.schedules.Delete(ctx, req.Selected)
	return s.shapeMutation("delete schedule", err, resp)
}

func (s *service) LoadSessions(_ LoadSessionsRequest, resp *LoadSessionsResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.sessions.List(ctx)
	if err != nil {
		return s.listError("load sessions", err)
	}
	resp.Sessions = sessionRecords(items)
	return nil
}

func (s *service) AddSession(req AddSessionRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.sessions.Add(ctx, catalog.Session{
		LecturerNames: req.LecNames,
		Tag:           req.Tag,
		SubjectName:   req.SubName,
		SubjectCode:   req.SubCode,
		GroupID:       req.GroupIDSub,
		StudentCount:  req.StudentCount,
		Duration:      req.Duration,
	})
	return s.shapeMutation("add session", err, resp)
}

func (s *service) SearchSessions(req SearchRequest, resp *SessionListResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.sessions.Search(ctx, req.Keyword)
	if err != nil {
		return s.listError("search sessions", err)
	}
	resp.Sessions = sessionRecords(items)
	return nil
}

func (s *service) DeleteSession(req DeleteRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.sessions.Delete(ctx, req.Selected)
	return s.shapeMutation("delete session", err, resp)
}

func (s *service) LoadTags(_ LoadTagsRequest, resp *LoadTagsResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.sessions.Tags(ctx)
	if err != nil {
		return s.listError("load tags", err)
	}
	resp.Tags = tagRecords(items)
	return nil
}

func (s *service) AddTag(req AddTagRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.sessions.AddTag(ctx, req.Name)
	return s.shapeMutation("add tag", err, resp)
}

func (s *service) DeleteTag(req DeleteRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.sessions.DeleteTag(ctx, req.Selected)
	return s.shapeMutation("delete tag", err, resp)
}

func (s *service) LoadStudents(_ LoadStudentsRequest, resp *LoadStudentsResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.students.List(ctx)
	if err != nil {
		return s.listError("load students", err)
	}
	resp.Students = studentRecords(items)
	return nil
}

func (s *service) AddStudent(req AddStudentRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.students.Add(ctx, catalog.Student{
		Year:          req.Year,
		Semester:      req.Sem,
		Programme:     req.Programme,
		Group:         req.Group,
		SubGroup:      req.SubGroup,
		GroupLabel:    req.GroupIDLabel,
		SubGroupLabel: req.SubGroupIDLabel,
	})
	return s.shapeMutation("add student", err, resp)
}

func (s *service) LoadSubGroups(_ LoadSubGroupsRequest, resp *LoadSubGroupsResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	items, err := s.students.SubGroups(ctx)
	if err != nil {
		return s.listError("load subgroups", err)
	}
	resp.SubGroups = subGroupRecords(items)
	return nil
}

func (s *service) AddSubGroup(req AddSubGroupRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	_, err := s.students.AddSubGroup(ctx, req.SubGroupID, catalogTimeRanges(req.UnavailableHours))
	return s.shapeMutation("add subgroup", err, resp)
}

func (s *service) SetSubGroupUnavailability(req SetSubGroupUnavailabilityRequest, resp *MutationResponse) error {
	ctx, cancel := s.callContext()
	defer cancel()
	err := s.students.SetUnavailability(ctx, req.ID, catalogTimeRanges(req.UnavailableHours))
	return s.shapeMutation("set subgroup unavailability", err, resp)
}
