package errors

// Code represents an error code
type Code string

const (
	CodeUnknown              Code = "UNKNOWN"               // Unknown error occurred
	CodeIoError              Code = "IO_ERROR"              // Input/output operation failed
	CodeConfigurationInvalid Code = "CONFIGURATION_INVALID" // Configuration invalid
	CodeToolNotFound         Code = "TOOL_NOT_FOUND"        // Executable not on the search path
	CodeToolExecutionFailed  Code = "TOOL_EXECUTION_FAILED" // Child process could not be started
	CodeProcessFailed        Code = "PROCESS_FAILED"        // Child process exited non-zero
	CodeDirectoryNotFound    Code = "DIRECTORY_NOT_FOUND"   // Directory does not exist
)
