// Package theme holds the light/dark flag and the fixed palette table it selects.
package theme

import "strings"

// Palette is the set of color-dependent classes for one theme.
type Palette struct {
	Background     string
	Text           string
	SecondaryText  string
	CardBackground string
	CardHover      string
	Border         string

	Hero        string // hero gradient
	Heading     string // name heading in the hero
	Tag         string // project tag chips
	ResumeHover string
	ToggleIcon  string // "sun" in dark mode, "moon" in light mode
	ToggleClass string
}

var palettes = map[bool]Palette{
	false: {
		Background:     "bg-gray-50",
		Text:           "text-gray-800",
		SecondaryText:  "text-gray-600",
		CardBackground: "bg-white",
		CardHover:      "hover:bg-gray-50",
		Border:         "border-gray-200",
		Hero:           "bg-gradient-to-r from-blue-50 via-indigo-50 to-purple-50",
		Heading:        "bg-clip-text text-transparent bg-gradient-to-r from-blue-600 to-indigo-600",
		Tag:            "bg-blue-50 text-blue-600",
		ResumeHover:    "hover:bg-blue-50",
		ToggleIcon:     "moon",
		ToggleClass:    "text-blue-600",
	},
	true: {
		Background:     "bg-gray-900",
		Text:           "text-gray-100",
		SecondaryText:  "text-gray-300",
		CardBackground: "bg-gray-800",
		CardHover:      "hover:bg-gray-700",
		Border:         "border-gray-700",
		Hero:           "bg-gradient-to-r from-gray-900 via-gray-800 to-gray-900",
		Heading:        "text-white",
		Tag:            "bg-blue-900 text-blue-300",
		ResumeHover:    "hover:bg-blue-900",
		ToggleIcon:     "sun",
		ToggleClass:    "text-yellow-400",
	},
}

// PaletteFor returns the palette for the given mode.
func PaletteFor(dark bool) Palette {
	return palettes[dark]
}

// Accent names a skill category color family.
type Accent string

const (
	AccentPurple Accent = "purple"
	AccentBlue   Accent = "blue"
	AccentGreen  Accent = "green"
	AccentOrange Accent = "orange"
)

var accents = map[Accent]bool{
	AccentPurple: true,
	AccentBlue:   true,
	AccentGreen:  true,
	AccentOrange: true,
}

// Valid reports whether a is one of the known accents.
func (a Accent) Valid() bool {
	return accents[a]
}

// AccentClass derives the chip classes for an accent. Unknown accents fall
// back to blue.
func AccentClass(a Accent, dark bool) string {
	if !a.Valid() {
		a = AccentBlue
	}
	if dark {
		return "bg-" + string(a) + "-900 text-" + string(a) + "-300"
	}
	return "bg-" + string(a) + "-50 text-" + string(a) + "-600"
}

// ParseMode parses "dark" or "light" (case-insensitive).
func ParseMode(s string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// ModeName is the inverse of ParseMode.
func ModeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// State is the page's theme flag. It is not safe for concurrent use; the
// owning page serializes access.
type State struct {
	dark bool
}

// NewState returns a State starting in the given mode.
func NewState(dark bool) *State {
	return &State{dark: dark}
}

// IsDark reports the current mode.
func (s *State) IsDark() bool { return s.dark }

// Toggle flips the mode.
func (s *State) Toggle() { s.dark = !s.dark }

// Palette returns the palette for the current mode.
func (s *State) Palette() Palette { return PaletteFor(s.dark) }
