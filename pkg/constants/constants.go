package constants

// --- EQUIPMENT UNIT LIFECYCLE STATES (match the codes stored in the DB) ---
const (
	UnitStatusAvailable     = "available"
	UnitStatusInUseAtEvent  = "in_use_at_event"
	UnitStatusInMaintenance = "in_maintenance"
	UnitStatusLeasedOut     = "leased_out"
)

var UnitStatuses = []string{
	UnitStatusAvailable,
	UnitStatusInUseAtEvent,
	UnitStatusInMaintenance,
	UnitStatusLeasedOut,
}

func IsValidUnitStatus(code string) bool {
	for _, s := range UnitStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// A unit committed to active use cannot be removed or have its equipment
// removed; it has to be transitioned back first.
func IsUnitInActiveUse(code string) bool {
	return code == UnitStatusInUseAtEvent || code == UnitStatusLeasedOut
}

// --- EVENT LIFECYCLE STATUSES ---
const (
	EventStatusPlanned    = "planned"
	EventStatusInProgress = "in_progress"
	EventStatusCompleted  = "completed"
	EventStatusCancelled  = "cancelled"
)

var EventStatuses = []string{
	EventStatusPlanned,
	EventStatusInProgress,
	EventStatusCompleted,
	EventStatusCancelled,
}

func IsValidEventStatus(code string) bool {
	for _, s := range EventStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// --- EMPLOYEE TYPES ---
const (
	EmployeeTypeFixed      = "fixed"
	EmployeeTypeFreelancer = "freelancer"
)

func IsValidEmployeeType(code string) bool {
	return code == EmployeeTypeFixed || code == EmployeeTypeFreelancer
}
