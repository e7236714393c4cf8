package booking

import "testing"

func TestParseServiceType(t *testing.T) {
	for _, s := range []string{"residential", "commercial", "specialized", "post-construction"} {
		if _, err := ParseServiceType(s); err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParseServiceType("window-washing"); err == nil {
		t.Fatalf("expected unknown type to fail")
	}
	if _, err := ParseServiceType(""); err == nil {
		t.Fatalf("expected empty type to fail")
	}
}

func TestServiceTypeLabels(t *testing.T) {
	cases := map[ServiceType]string{
		TypeResidential:      "Residential Services",
		TypeCommercial:       "Business Services",
		TypeSpecialized:      "Specialized Services",
		TypePostConstruction: "Post-construction Services",
	}
	for st, want := range cases {
		if got := st.Label(); got != want {
			t.Fatalf("label for %s: expected %q, got %q", st, want, got)
		}
	}
}

func TestStateLabels(t *testing.T) {
	cases := map[State]string{
		StatePending:    "Pending",
		StateConfirmed:  "Confirmed",
		StateInProgress: "In Progress",
		StateCompleted:  "Completed",
		StateCancelled:  "Cancelled",
	}
	for s, want := range cases {
		if got := s.Label(); got != want {
			t.Fatalf("label for %s: expected %q, got %q", s, want, got)
		}
	}
}

func TestCanTransition_ForwardPath(t *testing.T) {
	steps := []State{StatePending, StateConfirmed, StateInProgress, StateCompleted}
	for i := 0; i < len(steps)-1; i++ {
		if !CanTransition(steps[i], steps[i+1]) {
			t.Fatalf("expected %s -> %s to be allowed", steps[i], steps[i+1])
		}
	}
	// No skipping ahead.
	if CanTransition(StatePending, StateInProgress) {
		t.Fatalf("pending must not jump to in_progress")
	}
	if CanTransition(StateConfirmed, StateCompleted) {
		t.Fatalf("confirmed must not jump to completed")
	}
	// No going back.
	if CanTransition(StateConfirmed, StatePending) {
		t.Fatalf("transitions must not run backwards")
	}
}

func TestCanTransition_CancelReachableFromNonTerminal(t *testing.T) {
	for _, s := range []State{StatePending, StateConfirmed, StateInProgress} {
		if !CanTransition(s, StateCancelled) {
			t.Fatalf("expected %s -> cancelled to be allowed", s)
		}
	}
}

func TestTerminalStatesAdmitNothing(t *testing.T) {
	all := []State{StatePending, StateConfirmed, StateInProgress, StateCompleted, StateCancelled}
	for _, from := range []State{StateCompleted, StateCancelled} {
		if !from.Terminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
		for _, to := range all {
			if CanTransition(from, to) {
				t.Fatalf("terminal state %s must not transition to %s", from, to)
			}
		}
	}
}
