package avatar

import (
	"fmt"
	"strings"
)

// Option is one selectable value within a category. ID is the value the
// renderers consume; Label is display text.
type Option struct {
	ID    string
	Label string
}

// Accent is the line-art color used for outlines and strokes.
const Accent = "#1F2937"

var backgroundColors = []string{
	"#F1F5F9", // slate-100
	"#E2E8F0", // slate-200
	"#FEF3C7", // amber-100
	"#DCFCE7", // green-100
	"#E0E7FF", // indigo-100
	"#FFE4E6", // rose-100
	"#F5F3FF", // violet-100
	"#FFEDD5", // orange-100
	"#E5E7EB", // gray-200
}

var furColors = []string{
	"#F4E1C1", // sand
	"#E8D0A9",
	"#D8B384",
	"#C69C6D",
	"#A2795B",
	"#6B4F3A",
	"#EEE1D5", // cream
}

var registry = [categoryCount][]Option{
	Background: colorOptions(backgroundColors, "Color"),
	Fur:        colorOptions(furColors, "Fur"),
	Ears: {
		{ID: "pointy", Label: "Pointy"},
		{ID: "round", Label: "Round"},
		{ID: "floppy", Label: "Floppy"},
	},
	Hair: {
		{ID: "poof", Label: "Poof"},
		{ID: "bangs", Label: "Bangs"},
		{ID: "mohawk", Label: "Mohawk"},
		{ID: "none", Label: "None"},
	},
	Eyes: {
		{ID: "happy", Label: "Happy"},
		{ID: "sleepy", Label: "Sleepy"},
		{ID: "round", Label: "Round"},
		{ID: "winky", Label: "Winky"},
	},
	Mouth: {
		{ID: "smile", Label: "Smile"},
		{ID: "smirk", Label: "Smirk"},
		{ID: "open", Label: "Open"},
		{ID: "tongue", Label: "Tongue"},
	},
	Clothes: {
		{ID: "none", Label: "None"},
		{ID: "scarf", Label: "Scarf"},
		{ID: "hoodie", Label: "Hoodie"},
		{ID: "tee", Label: "T-Shirt"},
	},
	Accessory: {
		{ID: "none", Label: "None"},
		{ID: "round-glasses", Label: "Round Glasses"},
		{ID: "sunnies", Label: "Sunglasses"},
		{ID: "earring", Label: "Earring"},
	},
}

func colorOptions(colors []string, prefix string) []Option {
	opts := make([]Option, len(colors))
	for i, c := range colors {
		opts[i] = Option{ID: c, Label: fmt.Sprintf("%s %d", prefix, i+1)}
	}
	return opts
}

// OptionsFor returns the options of a category in display order. The slice
// is a copy; callers may modify it freely.
func OptionsFor(c Category) []Option {
	if !c.valid() {
		return nil
	}
	out := make([]Option, len(registry[c]))
	copy(out, registry[c])
	return out
}

// Lookup returns the option registered under id for the category.
func Lookup(c Category, id string) (Option, bool) {
	if !c.valid() {
		return Option{}, false
	}
	for _, opt := range registry[c] {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// Valid reports whether id is registered for the category.
func Valid(c Category, id string) bool {
	_, ok := Lookup(c, id)
	return ok
}

// IndexOf returns the display position of id within the category, or -1.
func IndexOf(c Category, id string) int {
	if !c.valid() {
		return -1
	}
	for i, opt := range registry[c] {
		if opt.ID == id {
			return i
		}
	}
	return -1
}

// resolve matches user text against option IDs first, then labels,
// ignoring case.
func resolve(c Category, text string) (Option, bool) {
	needle := strings.TrimSpace(text)
	for _, opt := range registry[c] {
		if strings.EqualFold(opt.ID, needle) {
			return opt, true
		}
	}
	for _, opt := range registry[c] {
		if strings.EqualFold(opt.Label, needle) {
			return opt, true
		}
	}
	return Option{}, false
}
