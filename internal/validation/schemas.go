package validation

import (
	"regexp"
	"strings"

	"github.com/legalpulse/survey-api/internal/models"
)

var (
	generalEmailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
	lawyerEmailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern       = regexp.MustCompile(`^(05|5)[0-9]{8}$`)
)

// Record names used in validation errors
const (
	RecordGeneral = "general survey"
	RecordLawyer  = "lawyer survey"
)

func text(name string, required bool, checks ...Check) FieldSpec {
	return FieldSpec{Name: name, Type: TypeString, Required: required, Checks: checks}
}

func trimmed(name string, checks ...Check) FieldSpec {
	return FieldSpec{Name: name, Type: TypeString, Normalize: strings.TrimSpace, Checks: checks}
}

func count(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeNumber, Required: true, Checks: []Check{NonNegativeInteger()}}
}

func list(name string) FieldSpec {
	return FieldSpec{Name: name, Type: TypeStringList, Required: true, Checks: []Check{NonEmpty()}}
}

// GeneralSchema is the rule set of a general survey submission
var GeneralSchema = Schema{
	Record: RecordGeneral,
	Fields: []FieldSpec{
		text("surveySource", true),
		text("surveySourceOther", false),
		text("nationality", true),
		text("residenceYears", true),
		text("age", true),
		text("income", true),
		text("legalIssues", true, OneOf(models.LegalIssueAnswers.AsVocabulary())),
		text("mainBarrier", true),
		text("quickDecision", true),
		text("giveawayInterest", true),
		trimmed("email", Matches(generalEmailPattern)),
		text("phone", false),
		text("legalTechServices", false),
		text("legalTechServiceName", false),
		text("legalTechConsideration", false),
		trimmed("language"),
	},
}

// LawyerSchema is the rule set of a lawyer survey submission.
// Derived metrics and administrative fields are not part of it.
var LawyerSchema = Schema{
	Record: RecordLawyer,
	Fields: []FieldSpec{
		text("professional_status", true, OneOf(models.ProfessionalStatuses)),
		text("years_experience", true, OneOf(models.ExperienceBands)),
		list("specializations"),
		text("specializations_other", false),
		list("languages"),
		text("languages_other", false),
		count("written_consultations"),
		count("labor_cases"),
		count("family_cases"),
		{Name: "monthly_compensation", Type: TypeNumber, Required: true, Checks: []Check{Positive(MaxMonthlyCompensation)}},
		text("discount_acceptance", true, OneOf(models.DiscountTiers)),
		text("current_consultation_price", true, OneOf(models.PriceBands)),
		text("most_important", true, OneOf(models.Priorities)),
		text("most_important_other", false),
		text("biggest_challenge", false, OneOf(models.Challenges)),
		text("biggest_challenge_other", false),
		text("interest_level", true, OneOf(models.InterestLevels)),
		text("questions_concerns", false),
		trimmed("name"),
		trimmed("mobile", Matches(mobilePattern)),
		{Name: "email", Type: TypeString, Normalize: models.NormalizeEmail, Checks: []Check{Matches(lawyerEmailPattern)}},
		trimmed("city"),
	},
}

// String returns the value of a string field, or "" when absent
func (v Values) String(field string) string {
	s, _ := v[field].(string)
	return s
}

// OptionalString returns a pointer to the value of a string field, or nil when absent
func (v Values) OptionalString(field string) *string {
	s, ok := v[field].(string)
	if !ok {
		return nil
	}
	return &s
}

// Number returns the value of a numeric field, or 0 when absent
func (v Values) Number(field string) float64 {
	n, _ := v[field].(float64)
	return n
}

// Int returns a numeric field as an int. Values outside [0, MaxCount] are
// clamped; count checks reject them before they get here.
func (v Values) Int(field string) int {
	n := v.Number(field)
	switch {
	case n <= 0:
		return 0
	case n >= MaxCount:
		return MaxCount
	}
	return int(n)
}

// Strings returns the value of a list field, or nil when absent
func (v Values) Strings(field string) []string {
	l, _ := v[field].([]string)
	return l
}
