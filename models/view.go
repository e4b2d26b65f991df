package models

// ReadingView is the display-ready rendering of the current snapshot.
type ReadingView struct {
	HasData bool
	Value   string
	Delta   string
	Unit    string
	Trend   Trend
	// Arrow is the image resource for Trend.
	Arrow string
	// TimeAgo is the bucketed age label, e.g. "5 mins".
	TimeAgo string
	IsHigh  bool
	IsLow   bool
	Stale   bool
}
