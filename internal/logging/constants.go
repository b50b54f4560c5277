package logging

// Standardized field names for structured logging
const (
	FieldMessageType = "message_type"
	FieldTargetType  = "target_type"
	FieldDirection   = "direction"
	FieldGenerator   = "generator"
	FieldAdvisory    = "advisory"
	FieldStatus      = "status"
	FieldError       = "error"
	FieldDuration    = "duration_ms"
	FieldCount       = "count"
	FieldWorkers     = "workers"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
