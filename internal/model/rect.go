package model

import "fmt"

// Rect is a bounding rectangle in caller-space pixels. Right and Bottom are
// inclusive for containment checks, matching the native accessibility
// coordinate convention.
type Rect struct {
	Left   int `yaml:"left"   json:"left"`
	Top    int `yaml:"top"    json:"top"`
	Right  int `yaml:"right"  json:"right"`
	Bottom int `yaml:"bottom" json:"bottom"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Area returns the rectangle's area. Degenerate rectangles (zero or negative
// extent) report a non-positive area and lose hit-testing ties.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Contains reports whether the point (x, y) lies inside the rectangle,
// borders included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Center returns the rectangle's center point.
func (r Rect) Center() (int, int) {
	return r.Left + r.Width()/2, r.Top + r.Height()/2
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}
