package model

import (
	"fmt"
	"strconv"
	"strings"
)

// RuntimeID is the session-scoped identity of a live accessibility element:
// an ordered sequence of integers assigned by the provider. It uniquely names
// an element while the element exists, but is NOT stable across tree
// rebuilds — treat it as a weak reference that must be re-validated.
type RuntimeID []int32

// UnknownRuntimeID is the fallback identity recorded when the provider does
// not report a runtime id for an element.
func UnknownRuntimeID() RuntimeID { return RuntimeID{0, 0, 0, 0} }

// String joins the id components with hyphens, e.g. "42-7-3". This is the
// form stored in the document mirror's RtID attribute.
func (id RuntimeID) String() string {
	if len(id) == 0 {
		return ""
	}
	parts := make([]string, len(id))
	for i, v := range id {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(parts, "-")
}

// Equal reports whether two runtime ids are component-wise identical.
func (id RuntimeID) Equal(other RuntimeID) bool {
	if len(id) != len(other) {
		return false
	}
	for i := range id {
		if id[i] != other[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether the id is empty or all-zero (the unknown fallback).
func (id RuntimeID) IsZero() bool {
	for _, v := range id {
		if v != 0 {
			return false
		}
	}
	return true
}

// ParseRuntimeID parses the hyphen-joined form produced by String.
func ParseRuntimeID(s string) (RuntimeID, error) {
	if s == "" {
		return nil, fmt.Errorf("parse runtime id: empty string")
	}
	parts := strings.Split(s, "-")
	id := make(RuntimeID, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parse runtime id %q: %w", s, err)
		}
		id[i] = int32(v)
	}
	return id, nil
}
