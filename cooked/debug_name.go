package cooked

import (
	"fmt"
	"strings"
)

// DebugNameRule selects what ends up in the DebugName fields of cooked data.
type DebugNameRule int

const (
	// DebugNameObjectPath exports the full authoring path of the object.
	DebugNameObjectPath DebugNameRule = iota
	// DebugNameName exports the short name of the object.
	DebugNameName
	// DebugNameRelease exports no debug names at all.
	DebugNameRelease
)

// String returns the configuration spelling of the rule.
func (r DebugNameRule) String() string {
	switch r {
	case DebugNameObjectPath:
		return "ObjectPath"
	case DebugNameName:
		return "Name"
	case DebugNameRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// Pick returns the debug name to export for an object with the given short
// name and object path.
func (r DebugNameRule) Pick(name, objectPath string) string {
	switch r {
	case DebugNameRelease:
		return ""
	case DebugNameName:
		return name
	default:
		return objectPath
	}
}

// ParseDebugNameRule parses a rule name, ignoring case. An empty string
// yields the default ObjectPath rule.
func ParseDebugNameRule(s string) (DebugNameRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "objectpath", "object_path", "path":
		return DebugNameObjectPath, nil
	case "name":
		return DebugNameName, nil
	case "release", "none":
		return DebugNameRelease, nil
	default:
		return DebugNameObjectPath, fmt.Errorf("unknown debug name rule: %s (valid options: Release, Name, ObjectPath)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r DebugNameRule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *DebugNameRule) UnmarshalText(text []byte) error {
	parsed, err := ParseDebugNameRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
