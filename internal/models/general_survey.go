package models

import "time"

// DefaultLanguage is used when a general survey arrives without a language
const DefaultLanguage = "en"

// GeneralSurvey is an accepted general-population survey response
type GeneralSurvey struct {
	ID string `json:"id"`

	// Demographics
	SurveySource      string  `json:"surveySource"`
	SurveySourceOther *string `json:"surveySourceOther"`
	Nationality       string  `json:"nationality"`
	ResidenceYears    string  `json:"residenceYears"`
	Age               string  `json:"age"`
	Income            string  `json:"income"`

	// Legal issues
	LegalIssues string `json:"legalIssues"`
	MainBarrier string `json:"mainBarrier"`

	// Decision & giveaway
	QuickDecision    string  `json:"quickDecision"`
	GiveawayInterest string  `json:"giveawayInterest"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`

	// Legal tech interest
	LegalTechServices      *string `json:"legalTechServices"`
	LegalTechServiceName   *string `json:"legalTechServiceName"`
	LegalTechConsideration *string `json:"legalTechConsideration"`

	// Metadata
	Language    string    `json:"language"`
	SubmittedAt time.Time `json:"submittedAt"`
	IPAddress   *string   `json:"ipAddress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SubmitResponse is returned after an accepted submission of either record kind
type SubmitResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    SubmitReceipt `json:"data"`
}

// SubmitReceipt identifies an accepted record
type SubmitReceipt struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}
