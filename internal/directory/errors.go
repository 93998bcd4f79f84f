package directory

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

// VendorError is an API-reported error envelope. It is returned as an
// ordinary error value so batch callers can inspect the vendor code and
// carry on past individual failures.
type VendorError struct {
	// Status is the raw HTTP status line, e.g. "403 Forbidden".
	Status string
	// Detail is the decoded vendor envelope.
	Detail *googleapi.Error
}

// Error implements the error interface.
func (e *VendorError) Error() string {
	return fmt.Sprintf("directory: api error %d: %s", e.Detail.Code, e.Detail.Message)
}

// Code returns the vendor-reported error code.
func (e *VendorError) Code() int {
	return e.Detail.Code
}

// AsVendorError unwraps a VendorError from err, if present.
func AsVendorError(err error) (*VendorError, bool) {
	var ve *VendorError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// classifyFailure turns a non-success response into either a VendorError
// (body parses as the vendor envelope) or a transport error carrying the
// raw status line.
func classifyFailure(status string, statusCode int, body []byte) error {
	var envelope struct {
		Error *googleapi.Error `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return fmt.Errorf("%w: %s", domain.ErrTransport, status)
	}

	if envelope.Error.Code == 0 {
		envelope.Error.Code = statusCode
	}
	return &VendorError{Status: status, Detail: envelope.Error}
}
