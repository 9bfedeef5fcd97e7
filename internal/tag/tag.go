// Package tag splits composite release tags of the form
// <version>-<app...>-<network> into their fields.
package tag

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter separates the segments of a release tag.
const Delimiter = "-"

var (
	// ErrUnknownSelector is returned for a field selector outside the supported set.
	ErrUnknownSelector = errors.New("unknown selector")
	// ErrMalformedTag is returned when a tag has too few segments for the requested field.
	ErrMalformedTag = errors.New("malformed tag")
)

// Selector names one field of a release tag.
type Selector string

const (
	SelectorVersion Selector = "version"
	SelectorApp     Selector = "app"
	SelectorNetwork Selector = "network"
)

// Selectors lists the supported selectors in tag order.
var Selectors = []Selector{SelectorVersion, SelectorApp, SelectorNetwork}

// ParseSelector validates a raw selector name.
func ParseSelector(raw string) (Selector, error) {
	switch sel := Selector(raw); sel {
	case SelectorVersion, SelectorApp, SelectorNetwork:
		return sel, nil
	default:
		return "", fmt.Errorf("%w %q (valid: version, app, network)", ErrUnknownSelector, raw)
	}
}

// Tag holds the decoded fields of a release tag.
type Tag struct {
	Version string
	App     string
	Network string
}

// Segments splits a tag on the delimiter.
func Segments(tag string) []string {
	return strings.Split(tag, Delimiter)
}

// Field extracts a single field from a tag. The version field is always
// segment zero; app and network need at least two segments.
func Field(tag string, sel Selector) (string, error) {
	segments := Segments(tag)

	switch sel {
	case SelectorVersion:
		return segments[0], nil
	case SelectorApp:
		if len(segments) < 2 {
			return "", fmt.Errorf("%w %q: app needs at least 2 segments", ErrMalformedTag, tag)
		}
		middle := strings.Join(segments[1:len(segments)-1], Delimiter)
		return strings.TrimLeft(middle, Delimiter), nil
	case SelectorNetwork:
		if len(segments) < 2 {
			return "", fmt.Errorf("%w %q: network needs at least 2 segments", ErrMalformedTag, tag)
		}
		return segments[len(segments)-1], nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSelector, string(sel))
	}
}

// Parse decodes every field of a tag.
func Parse(tag string) (Tag, error) {
	var out Tag
	for _, sel := range Selectors {
		value, err := Field(tag, sel)
		if err != nil {
			return Tag{}, err
		}
		switch sel {
		case SelectorVersion:
			out.Version = value
		case SelectorApp:
			out.App = value
		case SelectorNetwork:
			out.Network = value
		}
	}
	return out, nil
}
