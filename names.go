package presentvk

import (
	"slices"
	"strings"
)

// SelectNames returns, in enumeration order, the available names that
// contain any of the given substrings.
func SelectNames(available []string, substrings ...string) []string {
	var selected []string
	for _, name := range available {
		for _, sub := range substrings {
			if sub != "" && strings.Contains(name, sub) {
				selected = append(selected, name)
				break
			}
		}
	}
	return selected
}

// MergeNames appends the names of extra missing from base, keeping the order of both.
func MergeNames(base []string, extra ...string) []string {
	out := append([]string(nil), base...)
	for _, name := range extra {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// MissingNames lists the wanted names absent from available.
func MissingNames(wanted, available []string) []string {
	var missing []string
	for _, name := range wanted {
		if !slices.Contains(available, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func hasValidationLayer(layers []string) bool {
	return len(SelectNames(layers, validationSubstring)) > 0
}
