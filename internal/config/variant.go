package config

const (
	VariantButtons   = "buttons"
	VariantDropdowns = "dropdowns"
)

// Controls names the markup used for filter pickers.
type Controls string

const (
	ControlsButtons   Controls = "buttons"
	ControlsDropdowns Controls = "dropdowns"
)

// Variant describes which filter dimensions and picker controls are shown.
type Variant struct {
	Name       string
	Categories bool
	ScopeTags  bool
	TagLimit   int
	Controls   Controls
}

// Variants lists the supported filter variants by name.
var Variants = map[string]Variant{
	VariantButtons: {
		Name:       VariantButtons,
		Categories: true,
		ScopeTags:  false,
		TagLimit:   10,
		Controls:   ControlsButtons,
	},
	VariantDropdowns: {
		Name:       VariantDropdowns,
		Categories: false,
		ScopeTags:  true,
		TagLimit:   0,
		Controls:   ControlsDropdowns,
	},
}
