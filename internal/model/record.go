// Package model defines the data captured for accessibility elements: the
// per-node snapshot record, geometry, runtime identity, and the caller-facing
// element reference.
package model

import "fmt"

// Handle is a process-scoped native window handle. It is invalidated when the
// underlying element is destroyed; consumers must be prepared for it to
// resolve to nothing.
type Handle uintptr

// RootZOrder is the sentinel z-order assigned to the snapshot root so that it
// always sorts last in hit-testing.
const RootZOrder = 999

// NodeRecord captures the identity and geometry of one accessibility element
// at snapshot time. Records are created once by the snapshot builder and are
// immutable afterwards.
type NodeRecord struct {
	Name                 string    `yaml:"name,omitempty"          json:"name,omitempty"`
	ClassName            string    `yaml:"class,omitempty"         json:"class,omitempty"`
	ControlType          string    `yaml:"type"                    json:"type"`
	LocalizedControlType string    `yaml:"localized_type,omitempty" json:"localized_type,omitempty"`
	FrameworkID          string    `yaml:"framework,omitempty"     json:"framework,omitempty"`
	AutomationID         string    `yaml:"automation_id,omitempty" json:"automation_id,omitempty"`
	RuntimeID            RuntimeID `yaml:"-"                       json:"-"`
	RtID                 string    `yaml:"rtid"                    json:"rtid"` // RuntimeID.String(), kept for serialization
	Handle               Handle    `yaml:"handle,omitempty"        json:"handle,omitempty"`
	Bounds               Rect      `yaml:"bounds"                  json:"bounds"`
	Area                 int       `yaml:"area"                    json:"area"`
	Level                int       `yaml:"level"                   json:"level"`
	ZOrder               int       `yaml:"z"                       json:"z"`
}

// DisplayName composes the human-readable label used for arena node names:
// 'name' localized-type (class | framework | runtime-id).
func (r NodeRecord) DisplayName() string {
	return fmt.Sprintf("'%s' %s (%s | %s | %s)",
		r.Name, r.LocalizedControlType, r.ClassName, r.FrameworkID, r.RtID)
}
