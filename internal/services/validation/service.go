package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"pizzaorder/internal/domain"
)

const (
	minNameLength = 3
	maxNameLength = 20
)

// Messages are the texts reported for each rule violation.
type Messages struct {
	FullNameRequired string
	FullNameTooShort string
	FullNameTooLong  string
	SizeRequired     string
	SizeIncorrect    string
}

// orderRules is the rule table; tags are evaluated by go-playground/validator.
// Tag bounds must match minNameLength and maxNameLength.
type orderRules struct {
	FullName string   `json:"fullName" validate:"required,min=3,max=20"`
	Size     string   `json:"size" validate:"required,oneof=S M L"`
	Toppings []string `json:"toppings"`
}

// Service validates order drafts. It is safe for concurrent use.
type Service struct {
	validate *validator.Validate
	messages map[domain.Field]map[string]string // field -> failed tag -> message
}

// New returns a validator reporting the given messages.
func New(msgs Messages) *Service {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return &Service{
		validate: v,
		messages: map[domain.Field]map[string]string{
			domain.FieldFullName: {
				"required": msgs.FullNameRequired,
				"min":      msgs.FullNameTooShort,
				"max":      msgs.FullNameTooLong,
			},
			domain.FieldSize: {
				"required": msgs.SizeRequired,
				"oneof":    msgs.SizeIncorrect,
			},
		},
	}
}

// Validate returns the error message of every invalid field in d.
// The result is empty when d is valid.
func (s *Service) Validate(d domain.OrderDraft) domain.ValidationResult {
	out := domain.ValidationResult{}
	err := s.validate.Struct(orderRules{
		FullName: d.TrimmedName(),
		Size:     d.Size.String(),
		Toppings: d.Toppings,
	})
	if err == nil {
		return out
	}

	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return out
	}
	for _, fe := range failures {
		field := domain.Field(fe.Field())
		msg := s.messages[field][fe.Tag()]
		if msg == "" {
			msg = fe.Error()
		}
		out[field] = msg
	}
	return out
}

// SubmitEnabled reports whether the name and size satisfy their bounds.
// Toppings are optional and never affect the result.
func (s *Service) SubmitEnabled(d domain.OrderDraft) bool {
	n := utf8.RuneCountInString(d.TrimmedName())
	return n >= minNameLength && n <= maxNameLength && d.Size.Valid()
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Compile-time assertion that Service implements domain.Validator.
var _ domain.Validator = (*Service)(nil)
