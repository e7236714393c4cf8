package booking

import "fmt"

// ServiceType and State are the single source of truth for the request
// vocabulary; validation, persistence and serialization all consume these.

type ServiceType string

const (
	TypeResidential      ServiceType = "residential"
	TypeCommercial       ServiceType = "commercial"
	TypeSpecialized      ServiceType = "specialized"
	TypePostConstruction ServiceType = "post-construction"
)

func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(s) {
	case TypeResidential, TypeCommercial, TypeSpecialized, TypePostConstruction:
		return ServiceType(s), nil
	default:
		return "", fmt.Errorf("unknown service type: %s", s)
	}
}

var serviceTypeLabels = map[ServiceType]string{
	TypeResidential:      "Residential Services",
	TypeCommercial:       "Business Services",
	TypeSpecialized:      "Specialized Services",
	TypePostConstruction: "Post-construction Services",
}

func (t ServiceType) Label() string {
	return serviceTypeLabels[t]
}

type State string

const (
	StatePending    State = "pending"
	StateConfirmed  State = "confirmed"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StateCancelled  State = "cancelled"
)

func ParseState(s string) (State, error) {
	switch State(s) {
	case StatePending, StateConfirmed, StateInProgress, StateCompleted, StateCancelled:
		return State(s), nil
	default:
		return "", fmt.Errorf("unknown state: %s", s)
	}
}

var stateLabels = map[State]string{
	StatePending:    "Pending",
	StateConfirmed:  "Confirmed",
	StateInProgress: "In Progress",
	StateCompleted:  "Completed",
	StateCancelled:  "Cancelled",
}

func (s State) Label() string {
	return stateLabels[s]
}

// Terminal states admit no further transition.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCancelled
}

var allowedTransitions = map[State]map[State]bool{
	StatePending:    {StateConfirmed: true, StateCancelled: true},
	StateConfirmed:  {StateInProgress: true, StateCancelled: true},
	StateInProgress: {StateCompleted: true, StateCancelled: true},
	StateCompleted:  {},
	StateCancelled:  {},
}

func CanTransition(from, to State) bool {
	m, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	return m[to]
}
