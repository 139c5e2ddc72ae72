package analysis

import (
	"sort"
	"strconv"
	"strings"

	"wise-backend/internal/catalog"
)

// scoreAll scores every catalog entry and returns the survivors sorted by
// descending score. The sort is stable so raw-score ties keep catalog
// declaration order.
func (e *Engine) scoreAll(answers AnswerSet, age int) []scoredCondition {
	conditions := e.catalog.Conditions()
	scored := make([]scoredCondition, 0, len(conditions))
	for i := range conditions {
		sc := e.scoreCondition(&conditions[i], answers, age)
		if sc.totalScore > 0 {
			scored = append(scored, sc)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].totalScore > scored[j].totalScore
	})
	return scored
}

// scoreCondition sums the weights of matched triggers, then applies the age
// and risk-factor multipliers. Every multiplier is computed independently and
// combined against the raw trigger sum, so application order cannot change
// the result.
func (e *Engine) scoreCondition(cond *catalog.Condition, answers AnswerSet, age int) scoredCondition {
	var base float64
	var matched []string
	count := 0

	for _, t := range cond.Triggers {
		if !answers.Matches(t.QuestionID, t.AnswerValue) {
			continue
		}
		base += t.Weight
		count++
		matched = append(matched, t.QuestionID+": "+strings.Join(t.AnswerValue, " or "))
	}

	factor := ageFactor(cond.ID, age) * riskFactor(cond.ID, answers)

	return scoredCondition{
		condition:       cond,
		totalScore:      base * factor,
		matchedTriggers: matched,
		triggerCount:    count,
	}
}

// ageFactors holds per-condition age-bracket multipliers. Conditions without
// an entry are age-neutral.
var ageFactors = map[string]func(age int) float64{
	// Endometriosis is most common between 25 and 40.
	"endometriosis_wise": func(age int) float64 {
		switch {
		case age >= 25 && age <= 40:
			return 1.2
		case age < 20 || age > 45:
			return 0.8
		}
		return 1.0
	},
	// PCOS diagnosis peaks from the teens to the early 30s.
	"pcos_wise": func(age int) float64 {
		switch {
		case age >= 15 && age <= 35:
			return 1.2
		case age > 40:
			return 0.7
		}
		return 1.0
	},
	// Fibroids are most common between 30 and 50.
	"uterine_fibroids": func(age int) float64 {
		switch {
		case age >= 30 && age <= 50:
			return 1.3
		case age < 25:
			return 0.5
		}
		return 1.0
	},
	// Adenomyosis peaks between 40 and 50.
	"adenomyosis_wise": func(age int) float64 {
		switch {
		case age >= 40 && age <= 50:
			return 1.3
		case age < 30:
			return 0.6
		}
		return 1.0
	},
	// POI is by definition before 40.
	"premature_ovarian_insufficiency": func(age int) float64 {
		if age < 40 {
			return 1.5
		}
		return 0.1
	},
	// Primary dysmenorrhea is most common in the teens and twenties.
	"primary_dysmenorrhea": func(age int) float64 {
		switch {
		case age >= 15 && age <= 25:
			return 1.3
		case age > 35:
			return 0.8
		}
		return 1.0
	},
}

func ageFactor(conditionID string, age int) float64 {
	if fn, ok := ageFactors[conditionID]; ok {
		return fn(age)
	}
	return 1.0
}

// riskRules holds per-condition multipliers keyed off secondary answers
// (parity, obesity, diabetes, recent medications). Each rule returns 1.0 when
// it does not apply; rules are independent and commutative.
var riskRules = map[string][]func(AnswerSet) float64{
	"endometriosis_wise": {
		// Nulliparity increases endometriosis likelihood.
		func(a AnswerSet) float64 {
			if a.Scalar("number_of_births") == "0" {
				return 1.2
			}
			return 1.0
		},
	},
	"adenomyosis_wise": {
		// Multiparity increases adenomyosis likelihood.
		func(a AnswerSet) float64 {
			if p := a.Scalar("number_of_births"); p != "" && p != "0" {
				return 1.3
			}
			return 1.0
		},
	},
	"pelvic_organ_prolapse": {
		// Two or more births increase prolapse risk.
		func(a AnswerSet) float64 {
			if parityCount(a.Scalar("number_of_births")) >= 2 {
				return 1.4
			}
			return 1.0
		},
	},
	"pcos_wise": {
		func(a AnswerSet) float64 {
			if strings.Contains(a.Scalar("obesity_status"), "Obese") {
				return 1.3
			}
			return 1.0
		},
	},
	"endometrial_hyperplasia": {
		func(a AnswerSet) float64 {
			if strings.Contains(a.Scalar("obesity_status"), "Obese") {
				return 1.3
			}
			return 1.0
		},
	},
	"vulvovaginal_candidiasis": {
		// Diabetes increases yeast infection risk.
		func(a AnswerSet) float64 {
			if d := a.Scalar("diabetes_status"); d != "" && d != "No diabetes" {
				return 1.5
			}
			return 1.0
		},
		// So does a recent antibiotic course.
		func(a AnswerSet) float64 {
			if strings.HasPrefix(a.Scalar("recent_antibiotics"), "Yes") {
				return 1.4
			}
			return 1.0
		},
	},
	"bacterial_vaginosis": {
		// Recent antibiotics may already have treated BV.
		func(a AnswerSet) float64 {
			if strings.HasPrefix(a.Scalar("recent_antibiotics"), "Yes") {
				return 0.7
			}
			return 1.0
		},
	},
}

func riskFactor(conditionID string, answers AnswerSet) float64 {
	factor := 1.0
	for _, rule := range riskRules[conditionID] {
		factor *= rule(answers)
	}
	return factor
}

// parityCount parses a birth-count answer such as "3" or "5+".
func parityCount(raw string) int {
	raw = strings.TrimSuffix(raw, "+")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
