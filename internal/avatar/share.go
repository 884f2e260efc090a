package avatar

import (
	"fmt"
	"strings"

	apperrors "github.com/alexisbeaulieu97/alpaca/pkg/errors"
)

// String encodes the selection as a share code such as
// "Background=#F1F5F9;Fur=#F4E1C1;Ears=pointy;...".
func (s Selection) String() string {
	parts := make([]string, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		parts = append(parts, categoryNames[c]+"="+s.values[c])
	}
	return strings.Join(parts, ";")
}

// ParseSelection decodes a share code. Categories that are not mentioned
// keep their default value; pairs may be separated by ';' or ','.
func ParseSelection(code string) (Selection, error) {
	s := defaultSelection
	pairs := strings.FieldsFunc(code, func(r rune) bool { return r == ';' || r == ',' })
	for _, pair := range pairs {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		next, err := Apply(s, pair)
		if err != nil {
			return Selection{}, err
		}
		s = next
	}
	return s, nil
}

// Apply parses a single "Category=option" assignment and picks it.
func Apply(s Selection, assignment string) (Selection, error) {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return Selection{}, apperrors.NewValidationError("", fmt.Sprintf("expected Category=option, got %q", strings.TrimSpace(assignment)), nil)
	}

	c, err := ParseCategory(key)
	if err != nil {
		return Selection{}, err
	}

	opt, found := resolve(c, value)
	if !found {
		return Selection{}, apperrors.NewValidationError(c.String(), fmt.Sprintf("unknown option %q", strings.TrimSpace(value)), nil)
	}

	return Pick(s, c, opt.ID), nil
}
