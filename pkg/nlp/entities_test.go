package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities_RelativeDates(t *testing.T) {
	testCases := []struct {
		text string
		want time.Time
	}{
		{"show attendance for today", time.Now()},
		{"request leave tomorrow", time.Now().AddDate(0, 0, 1)},
		{"was I present yesterday", time.Now().AddDate(0, 0, -1)},
		{"report for next week", time.Now().AddDate(0, 0, 7)},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			entities := extractEntities(tc.text)
			assert.Equal(t, tc.want.Format("2006-01-02"), entities["date"])
		})
	}
}

func TestExtractEntities_SpecificDate(t *testing.T) {
	entities := extractEntities("attendance on 2024-01-15 please")
	assert.Equal(t, "2024-01-15", entities["specific_date"])

	entities = extractEntities("attendance on 01/15/2024")
	assert.Equal(t, "01/15/2024", entities["specific_date"])
}

func TestExtractEntities_EmployeeID(t *testing.T) {
	entities := extractEntities("show attendance for employee id 42")
	assert.Equal(t, int64(42), entities["employee_id"])

	entities = extractEntities("payroll for emp #7")
	assert.Equal(t, int64(7), entities["employee_id"])

	entities = extractEntities("record with id: 19")
	assert.Equal(t, int64(19), entities["employee_id"])
}

func TestExtractEntities_EmployeeName(t *testing.T) {
	entities := extractEntities("show attendance for John Smith")
	assert.Equal(t, "John Smith", entities["employee_name"])

	// Lowercased names are not treated as employee names.
	entities = extractEntities("show attendance for john smith")
	assert.NotContains(t, entities, "employee_name")
}

func TestExtractEntities_Numbers(t *testing.T) {
	entities := extractEntities("request leave for 3 days")
	assert.Equal(t, int64(3), entities["days"])

	entities = extractEntities("I worked 7.5 hours")
	assert.Equal(t, 7.5, entities["hours"])

	entities = extractEntities("an amount of 1200")
	assert.Equal(t, 1200.0, entities["amount"])

	entities = extractEntities("option 2")
	assert.Equal(t, 2.0, entities["number"])
}

func TestExtractEntities_Department(t *testing.T) {
	entities := extractEntities("who works in marketing")
	assert.Equal(t, "Marketing", entities["department"])

	entities = extractEntities("show human resources staff")
	assert.Equal(t, "Human Resources", entities["department"])
}

func TestExtractLeaveReason(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		{"request leave because my car broke down", "my car broke down"},
		{"take leave due to a family matter", "a family matter"},
		{"need leave, i am sick", "Medical leave"},
		{"take some holiday next month", "Vacation"},
		{"time off, personal stuff", "Personal leave"},
		{"need a leave", "Leave request"},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, extractLeaveReason(tc.text))
		})
	}
}
