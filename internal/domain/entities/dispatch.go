package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Payload is a record that can be dispatched to the payment API.
// Implemented by Transaction and RefundRecord.
type Payload interface {
	PayloadKind() string
}

// Ack is the payment API acknowledgement of a dispatched payload.
//
// ProviderResponse keeps the raw provider body for traceability.
type Ack struct {
	ProviderID       string          `json:"provider_id"`
	ProviderStatus   string          `json:"provider_status"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}

// ErrApiError matches every *ApiError through errors.Is.
var ErrApiError = errors.New("payment api error")

// ApiError reports a failed dispatch to the payment API.
//
// Code is a provider-independent classification (bad_request, unauthorized,
// customer_not_found, invalid_users) and may be empty.
type ApiError struct {
	Endpoint string
	Code     string
	Err      error
}

func (e *ApiError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment api %s failed (%s): %v", e.Endpoint, e.Code, e.Err)
	}
	return fmt.Sprintf("payment api %s failed: %v", e.Endpoint, e.Err)
}

func (e *ApiError) Unwrap() error { return e.Err }

func (e *ApiError) Is(target error) bool { return target == ErrApiError }
