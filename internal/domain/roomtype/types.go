package roomtype

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

func StatusFromActive(active bool) Status {
	if active {
		return StatusActive
	}
	return StatusInactive
}
