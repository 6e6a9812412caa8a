package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLocalDate(t *testing.T) {
	t.Parallel()
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-05", FormatLocalDate(d))

	// Late evening in a zone behind UTC: the local date must not shift
	behindUTC := time.FixedZone("UTC-7", -7*60*60)
	late := time.Date(2024, time.March, 5, 23, 30, 0, 0, behindUTC)
	assert.Equal(t, "2024-03-05", FormatLocalDate(late))
	assert.NotEqual(t, late.UTC().Format("2006-01-02"), FormatLocalDate(late))
}

func TestToLeaveRequestResponse_LocalDates(t *testing.T) {
	t.Parallel()

	behindUTC := time.FixedZone("UTC-7", -7*60*60)
	lr := LeaveRequest{
		ID:        "req-1",
		StartDate: time.Date(2024, time.March, 5, 23, 30, 0, 0, behindUTC),
		EndDate:   time.Date(2024, time.March, 7, 23, 30, 0, 0, behindUTC),
		Status:    LeaveRequestStatusPending,
	}

	resp := ToLeaveRequestResponse(lr)
	assert.Equal(t, "2024-03-05", resp.StartDate)
	assert.Equal(t, "2024-03-07", resp.EndDate)
}
