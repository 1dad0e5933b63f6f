package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go -package=mock_interfaces

// INotifier sends the payment confirmation to the user. Best-effort.
type INotifier interface {
	Notify(ctx context.Context, userID string, amount decimal.Decimal, currency string) error
}
