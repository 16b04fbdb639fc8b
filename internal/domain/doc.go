// Package domain defines the order form data model and the contracts between
// its services. It contains plain types (wire/state) and interfaces only.
package domain
