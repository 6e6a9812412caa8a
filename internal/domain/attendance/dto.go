package attendance

import "time"

type ClockInRequest struct {
	Location *string `json:"location"`
}

type ClockOutRequest struct {
	Location *string `json:"location"`
}

type BreakRequest struct {
	Location *string `json:"location"`
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	ClockIn       string   `json:"clock_in"`
	ClockOut      *string  `json:"clock_out,omitempty"`
	WorkStart     string   `json:"work_start"`
	WorkEnd       string   `json:"work_end"`
	ExpectedHours float64  `json:"expected_hours"`
	WorkedHours   *float64 `json:"worked_hours,omitempty"`
	BreakHours    *float64 `json:"break_hours,omitempty"`
	Status        string   `json:"status"`
}

type BreakResponse struct {
	ID           string  `json:"id"`
	AttendanceID string  `json:"attendance_id"`
	PauseTime    string  `json:"pause_time"`
	ResumeTime   *string `json:"resume_time,omitempty"`
}

func ToAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		Date:          a.Date,
		ClockIn:       a.ClockIn.Format(time.RFC3339),
		WorkStart:     a.WorkStart,
		WorkEnd:       a.WorkEnd,
		ExpectedHours: a.ExpectedHours,
		WorkedHours:   a.WorkedHours,
		BreakHours:    a.BreakHours,
		Status:        string(a.Status),
	}
	if a.ClockOut != nil {
		clockOut := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}
	return resp
}

func ToBreakResponse(b AttendanceBreak) BreakResponse {
	resp := BreakResponse{
		ID:           b.ID,
		AttendanceID: b.AttendanceID,
		PauseTime:    b.PauseTime.Format(time.RFC3339),
	}
	if b.ResumeTime != nil {
		resumeTime := b.ResumeTime.Format(time.RFC3339)
		resp.ResumeTime = &resumeTime
	}
	return resp
}
