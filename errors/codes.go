package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Execution errors
const (
	// ErrCodeResultNotAvailable indicates a step result was read before the
	// step executed.
	ErrCodeResultNotAvailable ErrorCode = "RESULT_NOT_AVAILABLE"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Capacity/slot errors
const (
	// ErrCodeSlotsExhausted indicates a fixed-size pool has no free slot.
	ErrCodeSlotsExhausted ErrorCode = "SLOTS_EXHAUSTED"
	// ErrCodeEmptySlot indicates the addressed slot holds no live object.
	ErrCodeEmptySlot ErrorCode = "EMPTY_SLOT"
	// ErrCodeOutOfRange indicates an index outside the valid range.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// CodeOf extracts the ErrorCode from err, unwrapping as needed.
// Returns ErrCodeInternal for non-AppError values and "" for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if appErr := AsAppError(err); appErr != nil {
		return appErr.Code
	}
	return ErrCodeInternal
}
