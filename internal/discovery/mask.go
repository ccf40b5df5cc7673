package discovery

import (
	"errors"
	"fmt"
	"strings"
)

// Mask is a single include/exclude filter over qualified test names.
// Matching is literal and segment-based: "a/b" matches "a/b" and "a/b/c"
// but never "a/bc".
type Mask struct {
	segments []string
	Negate   bool
}

// Pattern returns the normalized pattern text without the negation prefix.
func (m Mask) Pattern() string {
	return strings.Join(m.segments, "/")
}

// Matches reports whether the qualified name equals the mask's pattern or
// is nested under it.
func (m Mask) Matches(name string) bool {
	pattern := m.Pattern()
	return name == pattern || strings.HasPrefix(name, pattern+"/")
}

// MaskSet holds all masks of a run plus the filtering mode. Whitelist mode
// is active as soon as one non-negated mask was supplied: tests are then
// excluded unless a mask selects them.
type MaskSet struct {
	masks     []Mask
	Whitelist bool
}

// ParseMasks compiles raw positional arguments into a MaskSet. Every
// invalid pattern produces its own error; the returned error joins them so
// the caller can report all of them before exiting.
func ParseMasks(args []string) (*MaskSet, error) {
	set := &MaskSet{}
	var errs []error
	for _, raw := range args {
		mask, err := parseMask(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !mask.Negate {
			set.Whitelist = true
		}
		set.masks = append(set.masks, mask)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return set, nil
}

func parseMask(raw string) (Mask, error) {
	pattern := strings.Trim(raw, "/")

	var mask Mask
	if strings.HasPrefix(pattern, "-") {
		mask.Negate = true
		pattern = pattern[1:]
	}
	if pattern == "" {
		return Mask{}, fmt.Errorf("invalid test name %q: empty pattern", raw)
	}
	for _, segment := range strings.Split(pattern, "/") {
		if segment == "" {
			return Mask{}, fmt.Errorf("invalid test name %q: empty path segment", raw)
		}
		if strings.HasPrefix(segment, "-") {
			return Mask{}, fmt.Errorf("invalid test name %q: segment %q may not begin with '-'", raw, segment)
		}
		mask.segments = append(mask.segments, segment)
	}
	return mask, nil
}

// Includes decides whether a qualified test name is part of the run.
// Masks are consulted in declaration order and the last matching mask
// wins. With no masks at all every test is included; in whitelist mode
// tests are excluded unless a non-negated mask matches.
func (s *MaskSet) Includes(name string) bool {
	included := !s.Whitelist
	for _, mask := range s.masks {
		if mask.Matches(name) {
			included = !mask.Negate
		}
	}
	return included
}

// Empty reports whether no masks were supplied.
func (s *MaskSet) Empty() bool {
	return len(s.masks) == 0
}
