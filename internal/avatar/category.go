package avatar

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/alpaca/pkg/errors"
)

// Category identifies one customizable aspect of the avatar.
type Category int

const (
	Background Category = iota
	Fur
	Ears
	Hair
	Eyes
	Mouth
	Clothes
	Accessory

	categoryCount
)

var categoryNames = [categoryCount]string{
	Background: "Background",
	Fur:        "Fur",
	Ears:       "Ears",
	Hair:       "Hair",
	Eyes:       "Eyes",
	Mouth:      "Mouth",
	Clothes:    "Clothes",
	Accessory:  "Accessory",
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the display name of the category.
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// IsColor reports whether the category's option IDs are fill colors.
func (c Category) IsColor() bool {
	return c == Background || c == Fur
}

func (c Category) valid() bool {
	return c >= 0 && c < categoryCount
}

// ParseCategory resolves a category from its name, ignoring case.
func ParseCategory(name string) (Category, error) {
	trimmed := strings.TrimSpace(name)
	for c := Category(0); c < categoryCount; c++ {
		if strings.EqualFold(categoryNames[c], trimmed) {
			return c, nil
		}
	}
	return 0, apperrors.NewValidationError("category", fmt.Sprintf("unknown category %q", name), nil)
}
