package domain

// Targeting describes who should see a campaign variant.
type Targeting struct {
	Locations    []string     `json:"locations"`
	Demographics Demographics `json:"demographics"`
	Devices      string       `json:"devices"`
	Schedule     *Schedule    `json:"schedule,omitempty"`
}

// Demographics holds the audience ranges of a variant.
type Demographics struct {
	AgeRanges []string `json:"age_ranges"`
	Genders   []string `json:"genders"`
	Incomes   []string `json:"incomes,omitempty"`
	Interests []string `json:"interests"`
}

// Schedule is an ad schedule; hours are 0-23 in account time.
type Schedule struct {
	StartHour int      `json:"start_hour"`
	EndHour   int      `json:"end_hour"`
	Days      []string `json:"days"`
}
