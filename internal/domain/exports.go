package domain

import (
	interfaces "pizzaorder/internal/domain/interfaces"
	types "pizzaorder/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Size              = types.Size
	Field             = types.Field
	Topping           = types.Topping
	ToppingCatalog    = types.ToppingCatalog
	OrderDraft        = types.OrderDraft
	OrderPayload      = types.OrderPayload
	ValidationResult  = types.ValidationResult
	SubmissionOutcome = types.SubmissionOutcome
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Validator   = interfaces.Validator
	Submitter   = interfaces.Submitter
	OrderClient = interfaces.OrderClient
)

const (
	SizeUnset  = types.SizeUnset
	SizeSmall  = types.SizeSmall
	SizeMedium = types.SizeMedium
	SizeLarge  = types.SizeLarge

	FieldFullName = types.FieldFullName
	FieldSize     = types.FieldSize
	FieldToppings = types.FieldToppings
)

// Sizes lists the accepted size codes in display order.
func Sizes() []Size { return types.Sizes() }

// Fields lists the form fields in display order.
func Fields() []Field { return types.Fields() }
