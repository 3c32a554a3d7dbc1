package model

// Item is a single todo entry.
// New items start incomplete.
type Item struct {
	Text      string
	Completed bool
}
