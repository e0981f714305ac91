package usecase

import "time"

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string
