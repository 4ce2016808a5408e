package validation

import (
	"time"

	"github.com/legalpulse/survey-api/internal/models"
)

// Validator turns raw submissions into accepted, typed records.
// It is stateless apart from its clock and safe for concurrent use.
type Validator struct {
	now func() time.Time
}

// New creates a validator using the wall clock
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a validator with a fixed time source
func NewWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// ValidateGeneral accepts a general survey payload or returns an *Error listing every violation
func (v *Validator) ValidateGeneral(p Payload) (*models.GeneralSurvey, error) {
	values, violations := GeneralSchema.Validate(p)
	if len(violations) > 0 {
		return nil, &Error{Record: RecordGeneral, Violations: violations}
	}

	language := values.String("language")
	if language == "" {
		language = models.DefaultLanguage
	}

	return &models.GeneralSurvey{
		SurveySource:           values.String("surveySource"),
		SurveySourceOther:      values.OptionalString("surveySourceOther"),
		Nationality:            values.String("nationality"),
		ResidenceYears:         values.String("residenceYears"),
		Age:                    values.String("age"),
		Income:                 values.String("income"),
		LegalIssues:            values.String("legalIssues"),
		MainBarrier:            values.String("mainBarrier"),
		QuickDecision:          values.String("quickDecision"),
		GiveawayInterest:       values.String("giveawayInterest"),
		Email:                  values.OptionalString("email"),
		Phone:                  values.OptionalString("phone"),
		LegalTechServices:      values.OptionalString("legalTechServices"),
		LegalTechServiceName:   values.OptionalString("legalTechServiceName"),
		LegalTechConsideration: values.OptionalString("legalTechConsideration"),
		Language:               language,
		SubmittedAt:            p.SubmittedAt(v.now().UTC()),
	}, nil
}

// ValidateLawyer accepts a lawyer survey payload or returns an *Error listing every violation.
// Derived metrics are left zero; the status starts as pending with empty notes.
func (v *Validator) ValidateLawyer(p Payload) (*models.LawyerSurvey, error) {
	values, violations := LawyerSchema.Validate(p)
	if len(violations) > 0 {
		return nil, &Error{Record: RecordLawyer, Violations: violations}
	}

	return &models.LawyerSurvey{
		ProfessionalStatus:       values.String("professional_status"),
		YearsExperience:          values.String("years_experience"),
		Specializations:          values.Strings("specializations"),
		SpecializationsOther:     values.OptionalString("specializations_other"),
		Languages:                values.Strings("languages"),
		LanguagesOther:           values.OptionalString("languages_other"),
		WrittenConsultations:     values.Int("written_consultations"),
		LaborCases:               values.Int("labor_cases"),
		FamilyCases:              values.Int("family_cases"),
		MonthlyCompensation:      values.Number("monthly_compensation"),
		DiscountAcceptance:       values.String("discount_acceptance"),
		CurrentConsultationPrice: values.String("current_consultation_price"),
		MostImportant:            values.String("most_important"),
		MostImportantOther:       values.OptionalString("most_important_other"),
		BiggestChallenge:         values.OptionalString("biggest_challenge"),
		BiggestChallengeOther:    values.OptionalString("biggest_challenge_other"),
		InterestLevel:            values.String("interest_level"),
		QuestionsConcerns:        values.OptionalString("questions_concerns"),
		Name:                     values.OptionalString("name"),
		Mobile:                   values.OptionalString("mobile"),
		Email:                    values.OptionalString("email"),
		City:                     values.OptionalString("city"),
		SubmittedAt:              p.SubmittedAt(v.now().UTC()),
		Status:                   models.StatusPending,
		Notes:                    map[string]any{},
	}, nil
}
