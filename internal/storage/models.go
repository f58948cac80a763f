package storage

// TimeLayout is the storage format for recorded_at timestamps (UTC).
const TimeLayout = "2006-01-02 15:04:05"

// ViewingRecord represents one logged instance of watching a media title
// between two dates. Rating is 1-10 by convention; only presence is
// validated. Tags is a free-form comma-delimited string.
type ViewingRecord struct {
	ID         int64
	MediaTitle string
	StartDate  string
	EndDate    string
	Rating     *int   // nil when not supplied
	Notes      string // empty when not supplied
	Tags       string // empty when not supplied
	RecordedAt string // assigned by the store at insert time, TimeLayout in UTC
}
