package model

// Patient holds the demographic record shown on dashboards.
// Insurance is only populated for the patient's own profile view.
type Patient struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Insurance string `json:"insurance,omitempty"`
}

// AllergyWarning is one entry from the allergy warning system for a patient.
type AllergyWarning struct {
	Name         string  `json:"name"`
	ReactionType string  `json:"reaction_type"`
	Severity     string  `json:"severity"`
	Flagged      bool    `json:"flagged"`
	Notes        *string `json:"notes"`
}
