package interfaces

import (
	"context"

	"payment_processor/internal/domain/entities"
)

//go:generate mockgen -source=api_client_interface.go -destination=mocks/api_client_interface_mock.go -package=mock_interfaces

// IApiClient abstracts the external payment API (e.g. Mercado Pago).
//
// A returned error aborts the enclosing pipeline. Implementations own their
// timeouts and retry policy; the pipeline never retries.
type IApiClient interface {
	Post(ctx context.Context, endpoint string, payload entities.Payload) (entities.Ack, error)
}
