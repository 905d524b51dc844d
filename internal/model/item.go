package model

// Item is the domain model for a shopping list entry.
// Name keeps the case it was entered with; display code folds it.
type Item struct {
	Name    string `json:"name" yaml:"name"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// Entry pairs an Item with its position in the store.
// Filtered views carry entries so mutations always address the store.
type Entry struct {
	Index int
	Item  Item
}
