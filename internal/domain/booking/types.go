package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Occupies reports whether a booking in this status counts against inventory.
func (s Status) Occupies() bool {
	return s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}
