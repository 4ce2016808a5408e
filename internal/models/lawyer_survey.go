package models

import "time"

// LifecycleStatus is the administrative state of a lawyer survey
type LifecycleStatus string

const (
	StatusPending       LifecycleStatus = "pending"
	StatusContacted     LifecycleStatus = "contacted"
	StatusInterested    LifecycleStatus = "interested"
	StatusNotInterested LifecycleStatus = "not_interested"
	StatusConverted     LifecycleStatus = "converted"
)

// LifecycleStatuses lists every state an administrator may assign
var LifecycleStatuses = []LifecycleStatus{
	StatusPending,
	StatusContacted,
	StatusInterested,
	StatusNotInterested,
	StatusConverted,
}

// IsValid reports whether s is one of the declared lifecycle states
func (s LifecycleStatus) IsValid() bool {
	for _, known := range LifecycleStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// LawyerSurvey is an accepted lawyer survey response.
// TotalMonthlyCapacity and ValueScore are derived and never taken from the submitter.
type LawyerSurvey struct {
	ID string `json:"id"`

	// Profile
	ProfessionalStatus   string   `json:"professional_status"`
	YearsExperience      string   `json:"years_experience"`
	Specializations      []string `json:"specializations"`
	SpecializationsOther *string  `json:"specializations_other,omitempty"`
	Languages            []string `json:"languages"`
	LanguagesOther       *string  `json:"languages_other,omitempty"`

	// Capacity
	WrittenConsultations int `json:"written_consultations"`
	LaborCases           int `json:"labor_cases"`
	FamilyCases          int `json:"family_cases"`

	// Pricing
	MonthlyCompensation      float64 `json:"monthly_compensation"`
	DiscountAcceptance       string  `json:"discount_acceptance"`
	CurrentConsultationPrice string  `json:"current_consultation_price"`

	// Preferences
	MostImportant         string  `json:"most_important"`
	MostImportantOther    *string `json:"most_important_other,omitempty"`
	BiggestChallenge      *string `json:"biggest_challenge"`
	BiggestChallengeOther *string `json:"biggest_challenge_other,omitempty"`
	InterestLevel         string  `json:"interest_level"`
	QuestionsConcerns     *string `json:"questions_concerns,omitempty"`

	// Contact
	Name   *string `json:"name"`
	Mobile *string `json:"mobile"`
	Email  *string `json:"email"`
	City   *string `json:"city"`

	// Administrative
	SubmittedAt time.Time       `json:"submittedAt"`
	Status      LifecycleStatus `json:"status"`
	Notes       map[string]any  `json:"notes"`

	// Derived
	TotalMonthlyCapacity int     `json:"total_monthly_capacity"`
	ValueScore           float64 `json:"value_score"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasContactInfo reports whether an email or mobile number was left
func (r *LawyerSurvey) HasContactInfo() bool {
	return nonEmpty(r.Email) || nonEmpty(r.Mobile)
}

// LawyerStatusUpdate is the administrative patch applied to a lawyer survey.
// Nil fields are left untouched; Notes keys are merged into the existing notes.
type LawyerStatusUpdate struct {
	Status *string        `json:"status"`
	Notes  map[string]any `json:"notes"`
}

// IsEmpty reports whether the update changes nothing
func (u LawyerStatusUpdate) IsEmpty() bool {
	return (u.Status == nil || *u.Status == "") && len(u.Notes) == 0
}

// LawyerSummary is the projection used for the top-value list in analytics
type LawyerSummary struct {
	ID                   string  `json:"id"`
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	Mobile               *string `json:"mobile"`
	ProfessionalStatus   string  `json:"professional_status"`
	ValueScore           float64 `json:"value_score"`
	TotalMonthlyCapacity int     `json:"total_monthly_capacity"`
	InterestLevel        string  `json:"interest_level"`
}

// Summary projects the record for analytics listings
func (r *LawyerSurvey) Summary() LawyerSummary {
	return LawyerSummary{
		ID:                   r.ID,
		Name:                 r.Name,
		Email:                r.Email,
		Mobile:               r.Mobile,
		ProfessionalStatus:   r.ProfessionalStatus,
		ValueScore:           r.ValueScore,
		TotalMonthlyCapacity: r.TotalMonthlyCapacity,
		InterestLevel:        r.InterestLevel,
	}
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}
