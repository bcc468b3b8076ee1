package templater

import (
	"fmt"
	"sort"

	"github.com/dotsetup/templater/pkg/errors"
)

// Vars maps variable identifiers to their replacement text. Identifiers are
// the dotted-or-underscored names that appear between {{ }} delimiters.
type Vars map[string]string

// VarsFrom builds a Vars from arbitrary values using their natural string
// representation, so 123 becomes "123".
func VarsFrom(values map[string]any) Vars {
	vars := make(Vars, len(values))
	for name, value := range values {
		vars[name] = fmt.Sprintf("%v", value)
	}
	return vars
}

// Flatten converts a nested theme map into a flat Vars keyed by dotted
// identifiers, so {"gtk2": {"theme": "Sweet-Dark"}} becomes
// {"gtk2.theme": "Sweet-Dark"}. Keys must be lexable identifiers, non-empty
// and made of letters, digits, dots and underscores; any other key could
// never be referenced from a template and is rejected with ErrVarName.
func Flatten(values map[string]any) (Vars, error) {
	vars := make(Vars)
	if err := flattenInto(vars, "", values); err != nil {
		return nil, err
	}
	return vars, nil
}

func flattenInto(vars Vars, prefix string, values map[string]any) error {
	// Deterministic iteration keeps error reporting stable
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !isIdentName(key) {
			return errors.Newf(errors.ErrVarName, "invalid variable name %q", key).
				WithDetail("name", key).
				WithDetail("prefix", prefix)
		}

		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		if nested, ok := values[key].(map[string]any); ok {
			if err := flattenInto(vars, name, nested); err != nil {
				return err
			}
			continue
		}

		vars[name] = fmt.Sprintf("%v", values[key])
	}

	return nil
}

// isIdentName reports whether name consists only of identifier runes.
func isIdentName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !isIdentRune(r) {
			return false
		}
	}
	return true
}
