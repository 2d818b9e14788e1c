package models

// Intent is a coarse category label assigned to free text by the command
// processor, e.g. "clock_in".
type Intent string

const (
	IntentAttendance Intent = "attendance"
	IntentClockIn    Intent = "clock_in"
	IntentClockOut   Intent = "clock_out"
	IntentLeave      Intent = "leave"
	IntentPayroll    Intent = "payroll"
	IntentEmployee   Intent = "employee"
	IntentReport     Intent = "report"
	IntentUnknown    Intent = "unknown"
)

type CommandRequest struct {
	Text       string                 `json:"text"       validate:"required"`
	Lang       string                 `json:"lang"`
	EmployeeID *int64                 `json:"employee_id,omitempty"`
	Context    map[string]interface{} `json:"context,omitempty"`
}

// CommandResult is the action plan produced for a single command.
type CommandResult struct {
	Action      string                 `json:"action"`
	Parameters  map[string]interface{} `json:"parameters"`
	Message     string                 `json:"message"`
	Confidence  float64                `json:"confidence"`
	Suggestions []string               `json:"suggestions,omitempty"`
}

type CommandResponse struct {
	Success       bool                   `json:"success"`
	Action        string                 `json:"action"`
	Parameters    map[string]interface{} `json:"parameters"`
	Message       string                 `json:"message"`
	Confidence    float64                `json:"confidence"`
	OriginalText  string                 `json:"original_text"`
	ProcessedText string                 `json:"processed_text"`
	Language      string                 `json:"language"`
	Suggestions   []string               `json:"suggestions,omitempty"`
}

// Entity is a structured value extracted from free text, keyed by entity
// type ("date", "employee_id", "department", ...).
type Entities map[string]interface{}
