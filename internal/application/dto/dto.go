package dto

// ProfileRequest is the wire shape of a user profile. Optional fields are
// pointers so the engine can tell "absent" from "zero" before applying its
// defaults.
type ProfileRequest struct {
	AgeGroup         string   `json:"age_group"`
	EmploymentType   string   `json:"employment_type"`
	MonthlyIncome    int64    `json:"monthly_income"`
	MonthlyEMI       int64    `json:"monthly_emi"`
	CreditScoreRange string   `json:"credit_score_range,omitempty"`
	CreditScoreValue *int     `json:"credit_score_value,omitempty"`
	PrimaryGoal      []string `json:"primary_goal"`
	TopSpendCategory string   `json:"top_spend_category"`
	PreferredNetwork string   `json:"preferred_network"`

	LatePaymentsLast12M   *int     `json:"late_payments_last_12m,omitempty"`
	CreditUtilization     *float64 `json:"credit_utilization,omitempty"`
	RecentCreditInquiries *int     `json:"recent_credit_inquiries,omitempty"`
	ActiveLoans           *int     `json:"active_loans,omitempty"`
	OldestAccountAgeYears *float64 `json:"oldest_account_age_years,omitempty"`

	BNPLMonthlySpendRatio *float64 `json:"bnpl_monthly_spend_ratio,omitempty"`
	BNPLActiveLoans       *int     `json:"bnpl_active_loans,omitempty"`
	BNPLRolloversLast6M   *int     `json:"bnpl_rollovers_last_6m,omitempty"`
	BNPLOnTimeRate        *float64 `json:"bnpl_on_time_rate,omitempty"`
}

// CardResponse is the wire shape of a catalog card.
type CardResponse struct {
	CardID             string   `json:"card_id"`
	Issuer             string   `json:"issuer"`
	Network            string   `json:"network"`
	CardType           string   `json:"card_type"`
	Tier               string   `json:"tier"`
	MinIncome          int64    `json:"min_income"`
	MinCreditScore     int      `json:"min_credit_score"`
	SpendBonusCategory []string `json:"spend_bonus_category"`
	AnnualFee          int64    `json:"annual_fee,omitempty"`
	EMIFriendly        bool     `json:"emi_friendly,omitempty"`
}

// ExplanationResponse is a single "why this card" entry.
type ExplanationResponse struct {
	Text     string `json:"text"`
	Priority int    `json:"priority"`
	Type     string `json:"type"`
}

// FinancialRiskResponse is the EMI-load sub-score on the wire.
type FinancialRiskResponse struct {
	Score    int     `json:"score"`
	EMIRatio float64 `json:"emi_ratio"`
	RiskBand string  `json:"risk_band"`
}

// CreditStrengthResponse is the credit sub-score on the wire.
type CreditStrengthResponse struct {
	Score int    `json:"score"`
	Band  string `json:"band"`
}

// BehaviourRiskResponse is the behaviour sub-score on the wire.
type BehaviourRiskResponse struct {
	Score int      `json:"score"`
	Band  string   `json:"band"`
	Flags []string `json:"flags"`
}

// BNPLRiskResponse is the BNPL sub-score on the wire.
type BNPLRiskResponse struct {
	Score int      `json:"score"`
	Band  string   `json:"band"`
	Flags []string `json:"flags"`
}

// RiskProfileResponse bundles the sub-scores and composite on the wire.
type RiskProfileResponse struct {
	Financial      FinancialRiskResponse  `json:"financial"`
	Credit         CreditStrengthResponse `json:"credit"`
	Behaviour      BehaviourRiskResponse  `json:"behaviour"`
	BNPL           BNPLRiskResponse       `json:"bnpl"`
	CompositeScore int                    `json:"composite_score"`
}

// ScoredCardResponse is one ranked recommendation entry.
type ScoredCardResponse struct {
	Card         CardResponse          `json:"card"`
	Score        float64               `json:"score"`
	MatchedRules []string              `json:"matched_rules"`
	WhyThisCard  []ExplanationResponse `json:"why_this_card"`
	RiskProfile  *RiskProfileResponse  `json:"risk_profile,omitempty"`
}

// RecommendationResponse is the full response of the recommendation endpoint.
type RecommendationResponse struct {
	RequestID       string               `json:"request_id"`
	Eligible        bool                 `json:"eligible"`
	ConfidenceScore float64              `json:"confidence_score"`
	Primary         []ScoredCardResponse `json:"primary"`
	Alternatives    []ScoredCardResponse `json:"alternatives"`
}

// HealthComponentResponse is one labelled health breakdown entry.
type HealthComponentResponse struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// HealthScoreResponse is the full response of the health-score endpoint.
type HealthScoreResponse struct {
	RequestID   string                    `json:"request_id"`
	Score       int                       `json:"score"`
	Band        string                    `json:"band"`
	Breakdown   []HealthComponentResponse `json:"breakdown"`
	RiskProfile RiskProfileResponse       `json:"risk_profile"`
}

// ProfileSummary is the minimal profile echo in the analyze response.
type ProfileSummary struct {
	PrimaryGoal []string `json:"primary_goal"`
	Income      int64    `json:"income"`
}

// AnalyzeResponse combines the profile summary, health score, risk profile,
// and recommendations in a single response.
type AnalyzeResponse struct {
	RequestID        string                    `json:"request_id"`
	Status           string                    `json:"status"`
	Summary          ProfileSummary            `json:"summary"`
	HealthScore      int                       `json:"health_score"`
	HealthBand       string                    `json:"health_band"`
	HealthBreakdown  []HealthComponentResponse `json:"health_breakdown"`
	RiskProfile      RiskProfileResponse       `json:"risk_profile"`
	RecommendedCards RecommendationResponse    `json:"recommended_cards"`
}
