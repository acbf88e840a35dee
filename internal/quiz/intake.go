package quiz

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MinimumAge is the youngest age allowed to take a quiz.
const MinimumAge = 18

// Field names an intake form field.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldAge       Field = "age"
	FieldTopic     Field = "topic"
)

// Fields returns the intake fields in form order.
func Fields() []Field {
	return []Field{FieldFirstName, FieldLastName, FieldEmail, FieldAge, FieldTopic}
}

// Code is a machine-readable validation failure.
type Code string

const (
	CodeRequired      Code = "required"
	CodeInvalidFormat Code = "invalid_format"
	CodeInvalidAge    Code = "invalid_age"
	CodeUnderage      Code = "underage"
)

// FieldError describes why one field was rejected.
type FieldError struct {
	Code    Code
	Message string
}

// FieldErrors maps each rejected field to its error. An empty map means the form is valid.
type FieldErrors map[Field]FieldError

// Valid reports whether no field was rejected.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Error lists the rejected fields in form order.
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "intake valid"
	}
	order := make(map[Field]int, len(Fields()))
	for i, f := range Fields() {
		order[f] = i
	}
	fields := make([]Field, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return order[fields[i]] < order[fields[j]] })

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, string(f)+": "+string(e[f].Code))
	}
	return "invalid intake: " + strings.Join(parts, ", ")
}

// IntakeForm holds the raw, unparsed intake values.
type IntakeForm struct {
	FirstName string
	LastName  string
	Email     string
	Age       string
	Topic     string
}

// emailPattern treats Unicode separators and BOM as whitespace, not only ASCII \s.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}\x{FEFF}@]+@[^\s\p{Z}\x{FEFF}@]+\.[^\s\p{Z}\x{FEFF}@]+$`)

// ValidateIntake checks every field of form independently and returns either
// a complete Identity or every field error at once.
func ValidateIntake(form IntakeForm) (Identity, FieldErrors) {
	errs := FieldErrors{}

	firstName := strings.TrimSpace(form.FirstName)
	if firstName == "" {
		errs[FieldFirstName] = FieldError{Code: CodeRequired, Message: "First name is required"}
	}

	lastName := strings.TrimSpace(form.LastName)
	if lastName == "" {
		errs[FieldLastName] = FieldError{Code: CodeRequired, Message: "Last name is required"}
	}

	email := strings.TrimSpace(form.Email)
	switch {
	case email == "":
		errs[FieldEmail] = FieldError{Code: CodeRequired, Message: "Email is required"}
	case !emailPattern.MatchString(form.Email):
		errs[FieldEmail] = FieldError{Code: CodeInvalidFormat, Message: "Enter a valid email address"}
	}

	age, ageErr := validateAge(form.Age)
	if ageErr != nil {
		errs[FieldAge] = *ageErr
	}

	topic, ok := ParseTopic(form.Topic)
	if !ok {
		errs[FieldTopic] = FieldError{Code: CodeRequired, Message: "Choose a topic"}
	}

	if !errs.Valid() {
		return Identity{}, errs
	}
	return Identity{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Age:       age,
		Topic:     topic,
	}, errs
}

// validateAge applies the age rules in order: required, integer and non-negative, minimum age.
func validateAge(raw string) (int, *FieldError) {
	if raw == "" {
		return 0, &FieldError{Code: CodeRequired, Message: "Age is required"}
	}
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || age < 0 {
		return 0, &FieldError{Code: CodeInvalidAge, Message: "Enter a valid age"}
	}
	if age < MinimumAge {
		return 0, &FieldError{Code: CodeUnderage, Message: "You must be at least 18 to take part"}
	}
	return age, nil
}
