package models

// MenuItem is one translated menu line. Items only live for a single translation run.
type MenuItem struct {
	ID          string `json:"id"`
	Source      string `json:"japanese"`
	Target      string `json:"english"`
	Description string `json:"description,omitempty"`
}

// MenuEntry is the display form of a menu item on the printable menu
type MenuEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// MenuSection is one category block of the printable menu
type MenuSection struct {
	Key      string      `json:"key"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle"`
	Items    []MenuEntry `json:"items"`
}
