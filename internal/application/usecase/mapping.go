package usecase

import (
	"github.com/google/uuid"

	"github.com/MradulDixit-A/neupi-api/internal/application/dto"
	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
)

func toProfileAttributes(req dto.ProfileRequest) model.ProfileAttributes {
	return model.ProfileAttributes{
		AgeGroup:         req.AgeGroup,
		EmploymentType:   req.EmploymentType,
		MonthlyIncome:    req.MonthlyIncome,
		MonthlyEMI:       req.MonthlyEMI,
		CreditScoreRange: req.CreditScoreRange,
		CreditScoreValue: req.CreditScoreValue,
		PrimaryGoals:     req.PrimaryGoal,
		TopSpendCategory: req.TopSpendCategory,
		PreferredNetwork: req.PreferredNetwork,

		LatePayments12M:       req.LatePaymentsLast12M,
		CreditUtilization:     req.CreditUtilization,
		RecentCreditInquiries: req.RecentCreditInquiries,
		ActiveLoans:           req.ActiveLoans,
		OldestAccountAgeYears: req.OldestAccountAgeYears,

		BNPLSpendRatio:  req.BNPLMonthlySpendRatio,
		BNPLActiveLoans: req.BNPLActiveLoans,
		BNPLRollovers6M: req.BNPLRolloversLast6M,
		BNPLOnTimeRate:  req.BNPLOnTimeRate,
	}
}

func toCardResponse(c model.Card) dto.CardResponse {
	return dto.CardResponse{
		CardID:             c.CardID,
		Issuer:             c.Issuer,
		Network:            c.Network.String(),
		CardType:           c.CardType,
		Tier:               c.Tier.String(),
		MinIncome:          c.MinIncome,
		MinCreditScore:     c.MinCreditScore,
		SpendBonusCategory: c.SpendBonusCategory,
		AnnualFee:          c.AnnualFee,
		EMIFriendly:        c.EMIFriendly,
	}
}

func toRiskProfileResponse(r *model.RiskProfile) dto.RiskProfileResponse {
	return dto.RiskProfileResponse{
		Financial: dto.FinancialRiskResponse{
			Score:    r.Financial.Score,
			EMIRatio: r.Financial.EMIRatio.InexactFloat64(),
			RiskBand: string(r.Financial.Band),
		},
		Credit: dto.CreditStrengthResponse{
			Score: r.Credit.Score,
			Band:  string(r.Credit.Band),
		},
		Behaviour: dto.BehaviourRiskResponse{
			Score: r.Behaviour.Score,
			Band:  string(r.Behaviour.Band),
			Flags: r.Behaviour.Flags,
		},
		BNPL: dto.BNPLRiskResponse{
			Score: r.BNPL.Score,
			Band:  string(r.BNPL.Band),
			Flags: r.BNPL.Flags,
		},
		CompositeScore: r.CompositeScore,
	}
}

func toScoredCardResponses(cards []model.ScoredCard) []dto.ScoredCardResponse {
	out := make([]dto.ScoredCardResponse, 0, len(cards))
	for _, sc := range cards {
		rules := make([]string, 0, len(sc.MatchedRules))
		for _, r := range sc.MatchedRules {
			rules = append(rules, r.String())
		}

		explanations := make([]dto.ExplanationResponse, 0, len(sc.Explanations))
		for _, e := range sc.Explanations {
			explanations = append(explanations, dto.ExplanationResponse{
				Text:     e.Text,
				Priority: e.Priority,
				Type:     string(e.Type),
			})
		}

		resp := dto.ScoredCardResponse{
			Card:         toCardResponse(sc.Card),
			Score:        sc.Score.InexactFloat64(),
			MatchedRules: rules,
			WhyThisCard:  explanations,
		}
		if sc.Risk != nil {
			risk := toRiskProfileResponse(sc.Risk)
			resp.RiskProfile = &risk
		}
		out = append(out, resp)
	}
	return out
}

func toRecommendationResponse(requestID uuid.UUID, rec model.Recommendation) dto.RecommendationResponse {
	return dto.RecommendationResponse{
		RequestID:       requestID.String(),
		Eligible:        rec.Eligible,
		ConfidenceScore: rec.Confidence.InexactFloat64(),
		Primary:         toScoredCardResponses(rec.Primary),
		Alternatives:    toScoredCardResponses(rec.Alternatives),
	}
}

func toHealthBreakdown(components []model.HealthComponent) []dto.HealthComponentResponse {
	out := make([]dto.HealthComponentResponse, 0, len(components))
	for _, c := range components {
		out = append(out, dto.HealthComponentResponse{Label: c.Label, Value: c.Value})
	}
	return out
}

func toHealthScoreResponse(requestID uuid.UUID, hs model.HealthScore) dto.HealthScoreResponse {
	return dto.HealthScoreResponse{
		RequestID:   requestID.String(),
		Score:       hs.Score,
		Band:        string(hs.Band),
		Breakdown:   toHealthBreakdown(hs.Breakdown),
		RiskProfile: toRiskProfileResponse(hs.Risk),
	}
}
