package domain

// Activity is a single extracurricular activity as reported by the sign-up
// service. Name is the key of the upstream JSON object and is not part of the
// body.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft reports remaining capacity for display. The service is the only
// authority on capacity, so the value is never clamped and may be negative.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Board is the activity collection in the order the service returned it.
type Board []Activity

// Names returns the activity names in board order.
func (b Board) Names() []string {
	names := make([]string, 0, len(b))
	for _, a := range b {
		names = append(names, a.Name)
	}
	return names
}
