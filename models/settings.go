package models

// Settings menu items are tagged variants rather than loose maps: the kind
// field tells the client how to render and handle the row.
type SettingsItemKind string

const (
	SettingsNavigate SettingsItemKind = "navigate"
	SettingsSwitch   SettingsItemKind = "switch"
	SettingsInput    SettingsItemKind = "input"
)

type SettingsItem struct {
	Kind  SettingsItemKind `json:"kind"`
	Label string           `json:"label"`
	Icon  string           `json:"icon,omitempty"`

	// navigate
	Route string `json:"route,omitempty"`

	// switch
	Enabled *bool `json:"enabled,omitempty"`

	// input
	Value string `json:"value,omitempty"`
}

type SettingsSection struct {
	Title string         `json:"title"`
	Items []SettingsItem `json:"items"`
}
