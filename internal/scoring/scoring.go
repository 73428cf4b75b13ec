// Package scoring classifies quiz respondents into one of the four trading
// personality types. Both entry points are pure: no I/O, deterministic for a
// given input. Missing or unmapped answers contribute zero points and never
// produce an error; field-presence validation is the caller's job.
package scoring

import (
	"github.com/quizfortraders/funnel-api/internal/domain/entity"
)

// Result carries the winning type together with the full score vector.
// The vector always contains all four types, including zeroes.
type Result struct {
	Type   string
	Scores entity.ScoreVector
}

// challengeScoring maps the biggest_challenge answer 1:1 onto a personality
// type. The matched type receives a fixed weight of 3 points.
var challengeScoring = map[string]string{
	"emotional_decisions": entity.TypeEmotionalTrader,
	"not_enough_time":     entity.TypeTimeStarvedTrader,
	"plan_not_sticking":   entity.TypeInconsistentExecutor,
	"too_much_info":       entity.TypeOverwhelmedAnalyst,
}

// decisionScoring maps the decision_style answer onto partial contributions.
// Some answers split points across two types, others concentrate 2 on one.
var decisionScoring = map[string]map[string]int{
	"gut_feeling":        {entity.TypeEmotionalTrader: 2},
	"analyze_miss_entry": {entity.TypeOverwhelmedAnalyst: 1, entity.TypeTimeStarvedTrader: 1},
	"rules_but_break":    {entity.TypeInconsistentExecutor: 2},
	"still_figuring_out": {entity.TypeOverwhelmedAnalyst: 2},
}

// Calculate runs the fixed two-question scheme over the biggest_challenge and
// decision_style answers. Tie at the maximum (when the max is positive)
// resolves to the challenge-mapped type regardless of its numeric score.
func Calculate(biggestChallenge, decisionStyle string) Result {
	scores := entity.NewScoreVector()

	challengeType := challengeScoring[biggestChallenge]
	if challengeType != "" {
		scores[challengeType] += 3
	}

	if partial, ok := decisionScoring[decisionStyle]; ok {
		for pt, points := range partial {
			scores[pt] += points
		}
	}

	winner, tied := findMax(scores)
	if tied && challengeType != "" {
		winner = challengeType
	}

	return Result{Type: winner, Scores: scores}
}

// CalculateFromForm runs the data-driven scheme: every question with a
// positive scoringWeight whose map contains the submitted answer adds its row
// onto the vector. Personality keys outside the closed set are silently
// skipped. Ties resolve through the contributing question with the highest
// scoringWeight: the winner is the type with the most points in that
// question's row for the submitted answer. When the tiebreaker row cannot
// decide, the iteration-order maximum stands.
func CalculateFromForm(answers map[string]string, questions []entity.QuizFormQuestion) Result {
	scores := entity.NewScoreVector()

	var tiebreaker *entity.QuizFormQuestion
	for i := range questions {
		q := &questions[i]
		if q.ScoringWeight <= 0 || q.ScoringMap == nil {
			continue
		}
		answer, ok := answers[q.QuestionKey]
		if !ok {
			continue
		}
		row, ok := q.ScoringMap[answer]
		if !ok {
			continue
		}
		for pt, points := range row {
			if _, known := scores[pt]; !known {
				continue
			}
			scores[pt] += points
		}
		if tiebreaker == nil || q.ScoringWeight > tiebreaker.ScoringWeight {
			tiebreaker = q
		}
	}

	winner, tied := findMax(scores)
	if tied && tiebreaker != nil {
		if row, ok := tiebreaker.ScoringMap[answers[tiebreaker.QuestionKey]]; ok {
			winner = maxInRow(row, winner)
		}
	}

	return Result{Type: winner, Scores: scores}
}

// findMax returns the max-scoring type in the fixed enum order and whether
// two or more types tie at a positive maximum. With an all-zero vector the
// first enum member wins by default.
func findMax(scores entity.ScoreVector) (string, bool) {
	maxType := entity.PersonalityTypes[0]
	maxScore := 0
	tied := false

	for _, pt := range entity.PersonalityTypes {
		score := scores[pt]
		if score > maxScore {
			maxScore = score
			maxType = pt
			tied = false
		} else if score == maxScore && score > 0 {
			tied = true
		}
	}

	return maxType, tied
}

// maxInRow picks the type with the highest point value in a single scoring
// row, scanning in enum order. Falls back to the given winner when the row
// holds no known type.
func maxInRow(row map[string]int, fallback string) string {
	best := fallback
	bestPoints := -1
	for _, pt := range entity.PersonalityTypes {
		points, ok := row[pt]
		if !ok {
			continue
		}
		if points > bestPoints {
			bestPoints = points
			best = pt
		}
	}
	return best
}
