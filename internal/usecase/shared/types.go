package shared

import "github.com/google/uuid"

// TariffSnapshot is the persisted plan row as read inside a command.
type TariffSnapshot struct {
	ID            uuid.UUID
	Code          string
	PriceCents    int64
	TimingRule    string
	CutoffMinutes *int32
}
