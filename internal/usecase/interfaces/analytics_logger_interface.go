package interfaces

import (
	"context"

	"payment_processor/internal/domain/entities"
)

//go:generate mockgen -source=analytics_logger_interface.go -destination=mocks/analytics_logger_interface_mock.go -package=mock_interfaces

// IAnalyticsLogger records payment analytics. Fire-and-forget: implementations
// swallow (and log) their own failures.
type IAnalyticsLogger interface {
	Log(ctx context.Context, event entities.AnalyticsEvent)
}
