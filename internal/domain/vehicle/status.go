package vehicle

// Status is the persisted availability state of one physical unit.
// A booking claims an available unit by flipping it to reserved inside the
// booking transaction; rejection releases it back to available. Rented and
// maintenance are set by fleet operations outside this engine.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusRented      Status = "rented"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusRented, StatusMaintenance:
		return true
	default:
		return false
	}
}
