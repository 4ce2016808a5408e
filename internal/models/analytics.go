package models

// GroupCount is the number of records sharing one field value
type GroupCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CapacityAverages are arithmetic means across all lawyer surveys (zero when empty)
type CapacityAverages struct {
	AvgConsultations float64 `json:"avgConsultations"`
	AvgLaborCases    float64 `json:"avgLaborCases"`
	AvgFamilyCases   float64 `json:"avgFamilyCases"`
	AvgCompensation  float64 `json:"avgCompensation"`
}

// LawyerAnalytics is the lawyer survey analytics summary
type LawyerAnalytics struct {
	Total                int              `json:"total"`
	ByInterestLevel      []GroupCount     `json:"byInterestLevel"`
	ByProfessionalStatus []GroupCount     `json:"byProfessionalStatus"`
	AvgCapacity          CapacityAverages `json:"avgCapacity"`
	HighlyInterested     int              `json:"highlyInterested"`
	WithContactInfo      int              `json:"withContactInfo"`
	TopValueLawyers      []LawyerSummary  `json:"topValueLawyers"`
}

// GeneralAnalytics is the general survey analytics summary
type GeneralAnalytics struct {
	TotalSurveys          int          `json:"totalSurveys"`
	LegalIssuesYes        int          `json:"legalIssuesYes"`
	LegalIssuesPercentage string       `json:"legalIssuesPercentage"`
	GiveawayInterested    int          `json:"giveawayInterested"`
	NationalityBreakdown  []GroupCount `json:"nationalityBreakdown"`
}

// TopValueLimit is the size of the top-value lawyer list
const TopValueLimit = 10
