package validation

import (
	"math"
	"regexp"
	"strconv"

	"github.com/legalpulse/survey-api/internal/models"
)

// FieldType is the shape a field value is coerced to before its checks run
type FieldType int

const (
	TypeString FieldType = iota
	TypeNumber
	TypeStringList
)

// Check validates one coerced field value and returns a violation or nil
type Check func(field string, value any) *Violation

// FieldSpec declares the rules of one payload field
type FieldSpec struct {
	Name      string
	Type      FieldType
	Required  bool
	Normalize func(string) string
	Checks    []Check
}

// Schema is the ordered rule set of one record kind
type Schema struct {
	Record string
	Fields []FieldSpec
}

// Values are coerced, normalised field values keyed by field name.
// Absent optional fields have no entry.
type Values map[string]any

// Validate evaluates every field and collects all violations
func (s Schema) Validate(p Payload) (Values, []Violation) {
	values := make(Values, len(s.Fields))
	var violations []Violation

	for _, spec := range s.Fields {
		if !p.present(spec.Name) {
			if spec.Required {
				violations = append(violations, newViolation(spec.Name, KindMissingRequired, "%s is required", spec.Name))
			}
			continue
		}

		value, violation := spec.coerce(p[spec.Name])
		if violation != nil {
			violations = append(violations, *violation)
			continue
		}

		failed := false
		for _, check := range spec.Checks {
			if v := check(spec.Name, value); v != nil {
				violations = append(violations, *v)
				failed = true
			}
		}
		if !failed {
			values[spec.Name] = value
		}
	}

	return values, violations
}

func (spec FieldSpec) coerce(raw any) (any, *Violation) {
	switch spec.Type {
	case TypeNumber:
		n, ok := asNumber(raw)
		if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
			v := newViolation(spec.Name, KindInvalidType, "%s must be a number", spec.Name)
			return nil, &v
		}
		return n, nil
	case TypeStringList:
		list, ok := asStringList(raw)
		if !ok {
			v := newViolation(spec.Name, KindInvalidType, "%s must be a list of strings", spec.Name)
			return nil, &v
		}
		return list, nil
	default:
		s, ok := asString(raw)
		if !ok {
			v := newViolation(spec.Name, KindInvalidType, "%s must be a string", spec.Name)
			return nil, &v
		}
		if spec.Normalize != nil {
			s = spec.Normalize(s)
		}
		return s, nil
	}
}

// OneOf requires a string value to be a member of vocab
func OneOf(vocab models.Vocabulary) Check {
	return func(field string, value any) *Violation {
		s, _ := value.(string)
		if vocab.Contains(s) {
			return nil
		}
		v := newViolation(field, KindInvalidEnum, "%s has an invalid value %q: not a %s option", field, s, vocab.Name())
		return &v
	}
}

// Bounds constrains a numeric value. A nil bound is not applied.
type Bounds struct {
	Min          *float64
	Max          *float64
	ExclusiveMin bool
	Integer      bool
}

// InRange requires a numeric value within b. Non-integral values for integer
// fields are type violations, not range violations.
func InRange(b Bounds) Check {
	return func(field string, value any) *Violation {
		n, _ := value.(float64)
		if b.Integer && n != math.Trunc(n) {
			v := newViolation(field, KindInvalidType, "%s must be a whole number", field)
			return &v
		}
		if b.Min != nil {
			if b.ExclusiveMin && n <= *b.Min {
				v := newViolation(field, KindOutOfRange, "%s must be greater than %s", field, formatBound(*b.Min))
				return &v
			}
			if !b.ExclusiveMin && n < *b.Min {
				v := newViolation(field, KindOutOfRange, "%s must be at least %s", field, formatBound(*b.Min))
				return &v
			}
		}
		if b.Max != nil && n > *b.Max {
			v := newViolation(field, KindOutOfRange, "%s must be at most %s", field, formatBound(*b.Max))
			return &v
		}
		return nil
	}
}

// MaxCount is the largest accepted case or consultation count. It matches the
// INTEGER columns counts are stored in.
const MaxCount = math.MaxInt32

// MaxMonthlyCompensation is the largest accepted monthly compensation
const MaxMonthlyCompensation = 1e9

// NonNegativeInteger is the bound of case and consultation counts
func NonNegativeInteger() Check {
	zero, limit := 0.0, float64(MaxCount)
	return InRange(Bounds{Min: &zero, Max: &limit, Integer: true})
}

// Positive requires a value strictly greater than zero and at most limit
func Positive(limit float64) Check {
	zero := 0.0
	return InRange(Bounds{Min: &zero, Max: &limit, ExclusiveMin: true})
}

// NonEmpty requires a list value with at least one element
func NonEmpty() Check {
	return func(field string, value any) *Violation {
		if list, _ := value.([]string); len(list) > 0 {
			return nil
		}
		v := newViolation(field, KindEmptyCollection, "%s must contain at least one element", field)
		return &v
	}
}

// Matches requires a string value to match re
func Matches(re *regexp.Regexp) Check {
	return func(field string, value any) *Violation {
		s, _ := value.(string)
		if re.MatchString(s) {
			return nil
		}
		v := newViolation(field, KindInvalidFormat, "%s has an invalid format", field)
		return &v
	}
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
