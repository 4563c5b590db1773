package common

const (
	AppName = "xmprogress"
)

const (
	// Ordered log field keys used by the Formatter's FieldsDisplayWithOrder.
	LogFieldApp      = "App"
	LogFieldList     = "List"
	LogFieldStep     = "Step"
	LogFieldStepCode = "Code"
	LogFieldState    = "State"
)

// OperationState describes the execution state of a step as observed by
// listeners.
type OperationState int

const (
	StateRunning OperationState = iota
	StateSuccess
	StateFailed
)

func (s OperationState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateSuccess:
		return "Success"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
