package types

import (
	"errors"
	"fmt"
	"syscall"
)

// Status is a Win32 status code as returned by the registry API.
// It implements error so facilities can return it directly.
type Status uint32

const (
	StatusSuccess            Status = 0    // ERROR_SUCCESS
	StatusFileNotFound       Status = 2    // ERROR_FILE_NOT_FOUND
	StatusAccessDenied       Status = 5    // ERROR_ACCESS_DENIED
	StatusInvalidHandle      Status = 6    // ERROR_INVALID_HANDLE
	StatusNotSupported       Status = 50   // ERROR_NOT_SUPPORTED
	StatusInvalidParameter   Status = 87   // ERROR_INVALID_PARAMETER
	StatusCallNotImplemented Status = 120  // ERROR_CALL_NOT_IMPLEMENTED
	StatusMoreData           Status = 234  // ERROR_MORE_DATA
	StatusNoMoreItems        Status = 259  // ERROR_NO_MORE_ITEMS
	StatusBadKey             Status = 1010 // ERROR_BADKEY
	StatusKeyDeleted         Status = 1018 // ERROR_KEY_DELETED
	StatusUnsupportedType    Status = 1630 // ERROR_UNSUPPORTED_TYPE
)

var statusText = map[Status]string{
	StatusSuccess:            "The operation completed successfully.",
	StatusFileNotFound:       "The system cannot find the file specified.",
	StatusAccessDenied:       "Access is denied.",
	StatusInvalidHandle:      "The handle is invalid.",
	StatusNotSupported:       "The request is not supported.",
	StatusInvalidParameter:   "The parameter is incorrect.",
	StatusCallNotImplemented: "This function is not supported on this system.",
	StatusMoreData:           "More data is available.",
	StatusNoMoreItems:        "No more data is available.",
	StatusBadKey:             "The configuration registry key is invalid.",
	StatusKeyDeleted:         "Illegal operation attempted on a registry key that has been marked for deletion.",
	StatusUnsupportedType:    "Data of this type is not supported.",
}

// Error renders the status as "[code] description".
func (s Status) Error() string {
	if text, ok := statusText[s]; ok {
		return fmt.Sprintf("[%d] %s", uint32(s), text)
	}
	return fmt.Sprintf("[%d] Some error occurred", uint32(s))
}

// StatusOf extracts the OS status code carried by err. A nil error maps to
// StatusSuccess; errors without a recognizable code map to
// StatusInvalidParameter.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var re *Error
	if errors.As(err, &re) {
		return Status(re.Code)
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Status(errno)
	}
	return StatusInvalidParameter
}
