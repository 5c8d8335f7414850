package keymode

import "slices"

// FieldClass is the kind of value a text field accepts.
type FieldClass int

const (
	FieldNull FieldClass = iota
	FieldText
	FieldNumber
	FieldPhone
	FieldDateTime
)

// FieldVariation refines FieldText.
type FieldVariation int

const (
	VariationNormal FieldVariation = iota
	VariationPassword
	VariationVisiblePassword
	VariationEmail
	VariationURI
)

// FieldInfo describes the focused text field.
type FieldInfo struct {
	Class     FieldClass
	Variation FieldVariation
}

// Constraint restricts the modes available in a field. Preferred is used
// only when choosing the default mode; Limited is enforced on every change.
type Constraint struct {
	Preferred KeyMode
	Limited   []KeyMode
}

// NoConstraint allows every mode.
var NoConstraint = Constraint{Preferred: Invalid}

// Allows reports whether m may be entered under the limited list.
func (c Constraint) Allows(m KeyMode) bool {
	return len(c.Limited) == 0 || slices.Contains(c.Limited, m)
}

// ConstraintFor derives the constraint of a field. Phone fields are limited
// to the phone pad, or to half-width alphabet when a hardware keyboard is
// attached.
func ConstraintFor(f FieldInfo, hardwareKeyboard bool) Constraint {
	c := NoConstraint
	switch f.Class {
	case FieldNumber, FieldDateTime:
		c.Preferred = HalfNumber
	case FieldPhone:
		if hardwareKeyboard {
			c.Limited = []KeyMode{HalfAlphabet}
		} else {
			c.Limited = []KeyMode{HalfPhone}
		}
	case FieldText:
		switch f.Variation {
		case VariationPassword, VariationVisiblePassword:
			c.Limited = []KeyMode{HalfAlphabet, HalfNumber}
		case VariationEmail, VariationURI:
			c.Preferred = HalfAlphabet
		}
	}
	return c
}
