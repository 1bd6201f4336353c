// Package element names the element types a text-driven ordered set can
// hold and parses their textual form.
package element

import (
	"strconv"

	"github.com/pkg/errors"
)

type Kind string

const (
	Integer Kind = "Integer"
	String  Kind = "String"
)

var ErrUnknownKind = errors.New("unknown element kind")

// ParseKind maps a type tag to a Kind. Tags are case-sensitive.
func ParseKind(tag string) (Kind, error) {
	switch k := Kind(tag); k {
	case Integer, String:
		return k, nil
	default:
		return "", errors.Wrapf(ErrUnknownKind, "%q", tag)
	}
}

// ParseInteger accepts an optionally signed base-10 number that fits in 32
// bits.
func ParseInteger(s string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return int(v), nil
}

func ParseString(s string) (string, error) { return s, nil }
