package model

// Event represents one edition of the Paralympic Games
type Event struct {
	ID                   int    `db:"id" json:"id"`
	Type                 string `db:"type" json:"type"`
	Year                 int    `db:"year" json:"year"`
	Country              string `db:"country" json:"country"`
	Host                 string `db:"host" json:"host"`
	NOC                  string `db:"noc" json:"NOC"`
	Start                string `db:"start_date" json:"start"`
	End                  string `db:"end_date" json:"end"`
	DisabilitiesIncluded string `db:"disabilities_included" json:"disabilities_included"`
	Countries            int    `db:"countries" json:"countries"`
	Events               int    `db:"events" json:"events"`
	Sports               int    `db:"sports" json:"sports"`
	ParticipantsM        int    `db:"participants_m" json:"participants_m"`
	ParticipantsF        int    `db:"participants_f" json:"participants_f"`
	Participants         int    `db:"participants" json:"participants"`
	Highlights           string `db:"highlights" json:"highlights"`
	URL                  string `db:"url" json:"URL"`
}
