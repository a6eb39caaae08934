package theme

import "encoding/json"

// Selection is a stored theme choice: a layout key plus the raw per-user
// variable overrides, consumed verbatim from the theme record.
type Selection struct {
	LayoutKey string          `json:"layout_key"`
	Variables json.RawMessage `json:"variables"`
}
