package interfaces

import "time"

//go:generate mockgen -source=clock_interface.go -destination=mocks/clock_interface_mock.go -package=mock_interfaces

type IClock interface {
	Now() time.Time
}
