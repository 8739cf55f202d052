package attendance

import "context"

type AttendanceService interface {
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)
	// RecordBulk marks many employees for one date atomically.
	RecordBulk(ctx context.Context, req BulkRecordAttendanceRequest) ([]AttendanceResponse, error)
	// ListByMonth lists an employee's records for a "YYYY-MM" month.
	ListByMonth(ctx context.Context, employeeID string, month string) ([]AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
