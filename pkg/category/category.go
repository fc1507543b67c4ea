// Package category classifies events by name for consistent styling across
// the participant calendar and the staff console.
package category

import "strings"

type Category string

const (
	Workshops    Category = "workshops"
	Counseling   Category = "counseling"
	Community    Category = "community"
	Volunteering Category = "volunteering"
	Default      Category = "default"
)

// Colors holds the CSS class sets the frontend applies per category.
type Colors struct {
	Color       string `json:"color"`       // background and text classes
	DotColor    string `json:"dotColor"`    // dot/indicator class
	BorderColor string `json:"borderColor"` // border class
}

var categoryColors = map[Category]Colors{
	Workshops: {
		Color:       "bg-orange-100 text-orange-700",
		DotColor:    "bg-orange-500",
		BorderColor: "border-orange-200",
	},
	Counseling: {
		Color:       "bg-blue-100 text-blue-700",
		DotColor:    "bg-blue-500",
		BorderColor: "border-blue-200",
	},
	Community: {
		Color:       "bg-green-100 text-green-700",
		DotColor:    "bg-green-500",
		BorderColor: "border-green-200",
	},
	Volunteering: {
		Color:       "bg-purple-100 text-purple-700",
		DotColor:    "bg-purple-500",
		BorderColor: "border-purple-200",
	},
	Default: {
		Color:       "bg-gray-100 text-gray-700",
		DotColor:    "bg-gray-500",
		BorderColor: "border-gray-200",
	},
}

// FromName determines the category of an event from keywords in its name.
// Rules are checked in a fixed order; the first match wins.
func FromName(eventName string) Category {
	name := strings.ToLower(eventName)

	switch {
	case strings.Contains(name, "workshop"):
		return Workshops
	case strings.Contains(name, "counseling"), strings.Contains(name, "session"):
		return Counseling
	case strings.Contains(name, "community"), strings.Contains(name, "park"):
		return Community
	case strings.Contains(name, "volunteer"):
		return Volunteering
	}
	return Default
}

// ColorsFor returns the color class set for a category.
func ColorsFor(c Category) Colors {
	if colors, ok := categoryColors[c]; ok {
		return colors
	}
	return categoryColors[Default]
}

// EventColorClasses returns combined background/text/border classes for an
// event, e.g. "bg-green-100 text-green-700 border-green-200".
func EventColorClasses(eventName string) string {
	colors := ColorsFor(FromName(eventName))
	return colors.Color + " " + colors.BorderColor
}

// EventDotColor returns just the dot/indicator class for calendar views.
func EventDotColor(eventName string) string {
	return ColorsFor(FromName(eventName)).DotColor
}
