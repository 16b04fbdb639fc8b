package types

// Size is a pizza size code as it appears on the wire.
type Size string

const (
	SizeUnset  Size = ""
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Sizes lists the accepted size codes in display order.
func Sizes() []Size { return []Size{SizeSmall, SizeMedium, SizeLarge} }

// Valid reports whether s is one of the accepted size codes.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// String returns the string form of the size.
func (s Size) String() string { return string(s) }

// Field names an order form field. Values match the JSON payload keys.
type Field string

const (
	FieldFullName Field = "fullName"
	FieldSize     Field = "size"
	FieldToppings Field = "toppings"
)

// Fields lists the form fields in display order.
func Fields() []Field { return []Field{FieldFullName, FieldSize, FieldToppings} }

// String returns the string form of the field.
func (f Field) String() string { return string(f) }
