package nlp

import (
	"time"

	"github.com/robohr/ai-service/pkg/models"
)

// Action names returned to the HRMS frontend.
const (
	ActionViewAttendance  = "view_attendance"
	ActionClockIn         = "clock_in"
	ActionClockOut        = "clock_out"
	ActionRequestLeave    = "request_leave"
	ActionViewLeave       = "view_leave"
	ActionViewPayroll     = "view_payroll"
	ActionCreateEmployee  = "create_employee"
	ActionSearchEmployees = "search_employees"
	ActionViewEmployees   = "view_employees"
	ActionGenerateReport  = "generate_report"
	ActionUnknown         = "unknown"
)

// respond builds the action plan for an intent from the extracted entities.
func respond(
	intent models.Intent,
	entities models.Entities,
	text string,
	employeeID *int64,
) *models.CommandResult {
	switch intent {
	case models.IntentAttendance:
		return attendanceResult(entities, employeeID)
	case models.IntentClockIn:
		return clockResult(ActionClockIn, "I'll clock you in right away.", employeeID)
	case models.IntentClockOut:
		return clockResult(ActionClockOut, "I'll clock you out now.", employeeID)
	case models.IntentLeave:
		return leaveResult(entities, text, employeeID)
	case models.IntentPayroll:
		return payrollResult(entities, employeeID)
	case models.IntentEmployee:
		return employeeResult(entities, text)
	case models.IntentReport:
		return reportResult(entities, text)
	default:
		return unknownResult(text)
	}
}

func attendanceResult(entities models.Entities, employeeID *int64) *models.CommandResult {
	return &models.CommandResult{
		Action: ActionViewAttendance,
		Parameters: map[string]interface{}{
			"employee_id":   entityOrDefault(entities, "employee_id", employeeID),
			"date":          entities["date"],
			"employee_name": entities["employee_name"],
		},
		Message: "I'll retrieve the attendance information for you.",
	}
}

func clockResult(action, message string, employeeID *int64) *models.CommandResult {
	return &models.CommandResult{
		Action: action,
		Parameters: map[string]interface{}{
			"employee_id": idValue(employeeID),
			"timestamp":   time.Now().Format(time.RFC3339),
		},
		Message: message,
	}
}

func leaveResult(entities models.Entities, text string, employeeID *int64) *models.CommandResult {
	if containsAny(text, "request", "apply", "take") {
		return &models.CommandResult{
			Action: ActionRequestLeave,
			Parameters: map[string]interface{}{
				"employee_id": idValue(employeeID),
				"start_date":  entities["date"],
				"days":        entities["days"],
				"reason":      extractLeaveReason(text),
			},
			Message: "I'll submit your leave request.",
		}
	}
	return &models.CommandResult{
		Action: ActionViewLeave,
		Parameters: map[string]interface{}{
			"employee_id": entityOrDefault(entities, "employee_id", employeeID),
		},
		Message: "I'll show you the leave information.",
	}
}

func payrollResult(entities models.Entities, employeeID *int64) *models.CommandResult {
	return &models.CommandResult{
		Action: ActionViewPayroll,
		Parameters: map[string]interface{}{
			"employee_id": entityOrDefault(entities, "employee_id", employeeID),
			"month":       entities["month"],
			"year":        entities["year"],
		},
		Message: "I'll retrieve your payroll information.",
	}
}

func employeeResult(entities models.Entities, text string) *models.CommandResult {
	switch {
	case containsAny(text, "add", "create", "new"):
		return &models.CommandResult{
			Action: ActionCreateEmployee,
			Parameters: map[string]interface{}{
				"name":       entities["employee_name"],
				"department": entities["department"],
			},
			Message: "I'll help you create a new employee record.",
		}
	case containsAny(text, "find", "search", "show"):
		return &models.CommandResult{
			Action: ActionSearchEmployees,
			Parameters: map[string]interface{}{
				"name":        entities["employee_name"],
				"department":  entities["department"],
				"employee_id": entities["employee_id"],
			},
			Message: "I'll search for employees matching your criteria.",
		}
	default:
		return &models.CommandResult{
			Action: ActionViewEmployees,
			Parameters: map[string]interface{}{
				"department": entities["department"],
			},
			Message: "I'll show you the employee information.",
		}
	}
}

func reportResult(entities models.Entities, text string) *models.CommandResult {
	reportType := "general"
	switch {
	case containsAny(text, "attendance"):
		reportType = "attendance"
	case containsAny(text, "payroll"):
		reportType = "payroll"
	case containsAny(text, "performance"):
		reportType = "performance"
	case containsAny(text, "leave"):
		reportType = "leave"
	}

	return &models.CommandResult{
		Action: ActionGenerateReport,
		Parameters: map[string]interface{}{
			"report_type": reportType,
			"department":  entities["department"],
			"date_from":   entities["date"],
			"date_to":     entities["end_date"],
		},
		Message: "I'll generate a " + reportType + " report for you.",
	}
}

func unknownResult(text string) *models.CommandResult {
	return &models.CommandResult{
		Action: ActionUnknown,
		Parameters: map[string]interface{}{
			"original_text": text,
		},
		Message: "I'm not sure how to help with that. Here are some things you can try:",
		Suggestions: []string{
			"Try asking about your attendance",
			"You can request leave by saying 'request leave for tomorrow'",
			"Ask about payroll with 'show my payroll'",
			"View employees by saying 'show employees in engineering'",
		},
	}
}

func entityOrDefault(entities models.Entities, key string, employeeID *int64) interface{} {
	if value, ok := entities[key]; ok {
		return value
	}
	return idValue(employeeID)
}

func idValue(employeeID *int64) interface{} {
	if employeeID == nil {
		return nil
	}
	return *employeeID
}
