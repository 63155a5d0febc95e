package linkdown

import (
	"regexp"
	"strings"
)

// ReferenceKind classifies a link value by shape. Internal reference shapes
// are stored as-is by Normalize; everything else gets an explicit scheme.
type ReferenceKind int

const (
	// RefExternal is any value matching no internal shape.
	RefExternal ReferenceKind = iota
	// RefNestedPath is a site-internal path such as "/general".
	RefNestedPath
	// RefRootPath is the bare root path "/".
	RefRootPath
	// RefAnchor is an in-page anchor such as "#results".
	RefAnchor
	// RefProtocolRelative is a scheme-less absolute URL such as
	// "//cdn.example.com/x".
	RefProtocolRelative
	// RefEscapedToken is a bracket-escaped placeholder spanning the whole
	// value, such as "[token]".
	RefEscapedToken
)

func (k ReferenceKind) String() string {
	switch k {
	case RefNestedPath:
		return "nested-path"
	case RefRootPath:
		return "root-path"
	case RefAnchor:
		return "anchor"
	case RefProtocolRelative:
		return "protocol-relative"
	case RefEscapedToken:
		return "escaped-token"
	}
	return "external"
}

var (
	// a single leading slash followed by a path character
	nestedPathPattern = regexp.MustCompile(`^/[^/\s]`)
	// two leading slashes followed by a host character
	protocolRelativePattern = regexp.MustCompile(`^//[^/\s]`)
)

// ClassifyReference returns the internal reference shape of link, or
// RefExternal when none applies. Shapes are tested in a fixed order and the
// first match wins.
func ClassifyReference(link string) ReferenceKind {
	switch {
	case nestedPathPattern.MatchString(link):
		return RefNestedPath
	case link == "/":
		return RefRootPath
	case strings.HasPrefix(link, "#"):
		return RefAnchor
	case protocolRelativePattern.MatchString(link):
		return RefProtocolRelative
	case len(link) > 1 && strings.HasPrefix(link, "[") && strings.HasSuffix(link, "]"):
		return RefEscapedToken
	}
	return RefExternal
}

// IsInternalReference reports whether link matches any internal shape.
func IsInternalReference(link string) bool {
	return ClassifyReference(link) != RefExternal
}
