package ipc

import "registrar/internal/catalog"

func buildingRecord(b catalog.Building) Building {
	return Building{BID: b.Code, ID: b.ID}
}

func buildingRecords(items []catalog.Building) []Building {
	out := make([]Building, 0, len(items))
	for _, b := range items {
		out = append(out, buildingRecord(b))
	}
	return out
}

func roomRecord(r catalog.Room) Room {
	return Room{
		RID:      r.Code,
		RType:    r.Type,
		BID:      r.BuildingCode,
		Capacity: r.Capacity,
		ID:       r.ID,
	}
}

func roomRecords(items []catalog.Room) []Room {
	out := make([]Room, 0, len(items))
	for _, r := range items {
		out = append(out, roomRecord(r))
	}
	return out
}

func subjectRecord(s catalog.Subject) Subject {
	return Subject{
		SubCode: s.Code,
		Year:    s.Year,
		Sem:     s.Semester,
		Name:    s.Name,
		LecHrs:  s.LectureHours,
		TuteHrs: s.TutorialHours,
		LabHrs:  s.LabHours,
		EvalHrs: s.EvalHours,
		ID:      s.ID,
	}
}

func subjectRecords(items []catalog.Subject) []Subject {
	out := make([]Subject, 0, len(items))
	for _, s := range items {
		out = append(out, subjectRecord(s))
	}
	return out
}

func lecturerRecord(l catalog.Lecturer) Lecturer {
	return Lecturer{
		EID:      l.EmployeeID,
		Name:     l.Name,
		Faculty:  l.Faculty,
		Dep:      l.Department,
		Center:   l.Center,
		Building: l.Building,
		Level:    l.Level,
		Rank:     l.Rank,
		ID:       l.ID,
	}
}

func lecturerRecords(items []catalog.Lecturer) []Lecturer {
	out := make([]Lecturer, 0, len(items))
	for _, l := range items {
		out = append(out, lecturerRecord(l))
	}
	return out
}

func scheduleRecord(s catalog.Schedule) Schedule {
	return Schedule{
		DayCount:    s.DayCount,
		WorkingDays: s.WorkingDays,
		STime:       s.StartingTime,
		Duration:    s.Duration,
		WTime:       s.WorkingTime,
		ID:          s.ID,
	}
}

func scheduleRecords(items []catalog.Schedule) []Schedule {
	out := make([]Schedule, 0, len(items))
	for _, s := range items {
		out = append(out, scheduleRecord(s))
	}
	return out
}

func sessionRecord(s catalog.Session) Session {
	return Session{
		LecNames:     s.LecturerNames,
		Tag:          s.Tag,
		SubName:      s.SubjectName,
		SubCode:      s.SubjectCode,
		GroupIDSub:   s.GroupID,
		StudentCount: s.StudentCount,
		Duration:     s.Duration,
		ID:           s.ID,
	}
}

func sessionRecords(items []catalog.Session) []Session {
	out := make([]Session, 0, len(items))
	for _, s := range items {
		out = append(out, sessionRecord(s))
	}
	return out
}

func tagRecord(t catalog.Tag) Tag {
	return Tag{Name: t.Name, ID: t.ID}
}

func tagRecords(items []catalog.Tag) []Tag {
	out := make([]Tag, 0, len(items))
	for _, t := range items {
		out = append(out, tagRecord(t))
	}
	return out
}

func studentRecord(s catalog.Student) Student {
	return Student{
		Year:            s.Year,
		Sem:             s.Semester,
		Programme:       s.Programme,
		Group:           s.Group,
		SubGroup:        s.SubGroup,
		GroupIDLabel:    s.GroupLabel,
		SubGroupIDLabel: s.SubGroupLabel,
		ID:              s.ID,
	}
}

func studentRecords(items []catalog.Student) []Student {
	out := make([]Student, 0, len(items))
	for _, s := range items {
		out = append(out, studentRecord(s))
	}
	return out
}

func timeRanges(in map[string]catalog.TimeRange) map[string]TimeRange {
	if in == nil {
		return nil
	}
	out := make(map[string]TimeRange, len(in))
	for k, v := range in {
		out[k] = TimeRange{Day: v.Day, From: v.From, To: v.To}
	}
	return out
}

func catalogTimeRanges(in map[string]TimeRange) map[string]catalog.TimeRange {
	if in == nil {
		return nil
	}
	out := make(map[string]catalog.TimeRange, len(in))
	for k, v := range in {
		out[k] = catalog.TimeRange{Day: v.Day, From: v.From, To: v.To}
	}
	return out
}

func subGroupRecord(g catalog.SubGroup) SubGroup {
	return SubGroup{
		SubGroupID:       g.Code,
		UnavailableHours: timeRanges(g.UnavailableHours),
		ID:               g.ID,
	}
}

func subGroupRecords(items []catalog.SubGroup) []SubGroup {
	out := make([]SubGroup, 0, len(items))
	for _, g := range items {
		out = append(out, subGroupRecord(g))
	}
	return out
}
