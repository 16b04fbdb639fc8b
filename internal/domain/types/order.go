package types

import "strings"

// Topping is one entry of the topping catalog.
type Topping struct {
	ID   string `json:"topping_id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// ToppingCatalog is the ordered, read-only list of toppings offered by the form.
type ToppingCatalog []Topping

// Lookup returns the topping with the given id.
func (c ToppingCatalog) Lookup(id string) (Topping, bool) {
	for _, t := range c {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}

// OrderDraft is the in-progress order edited by the user.
//
// Toppings holds the selected topping ids in selection order; an id appears
// at most once.
type OrderDraft struct {
	FullName string
	Size     Size
	Toppings []string
}

// TrimmedName returns FullName without surrounding whitespace.
func (d OrderDraft) TrimmedName() string { return strings.TrimSpace(d.FullName) }

// HasTopping reports whether id is selected.
func (d OrderDraft) HasTopping(id string) bool {
	for _, t := range d.Toppings {
		if t == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with d.
func (d OrderDraft) Clone() OrderDraft {
	out := d
	if d.Toppings != nil {
		out.Toppings = append([]string(nil), d.Toppings...)
	}
	return out
}

// IsEmpty reports whether nothing has been entered.
func (d OrderDraft) IsEmpty() bool {
	return d.FullName == "" && d.Size == SizeUnset && len(d.Toppings) == 0
}

// Payload builds the wire form of the draft.
func (d OrderDraft) Payload() OrderPayload {
	toppings := make([]string, len(d.Toppings))
	copy(toppings, d.Toppings)
	return OrderPayload{
		FullName: d.TrimmedName(),
		Size:     d.Size,
		Toppings: toppings,
	}
}

// OrderPayload is the JSON body posted to the order endpoint.
type OrderPayload struct {
	FullName string   `json:"fullName"`
	Size     Size     `json:"size"`
	Toppings []string `json:"toppings"`
}
