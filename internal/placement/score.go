// Package placement scores the calibration test and maps the result to
// a recommended curriculum level.
package placement

import "github.com/codegenio/codegenio/internal/catalog"

// Thresholds for the five-question bank.
const (
	advancedMinScore     = 4
	intermediateMinScore = 2
)

// Score counts the questions whose selected option index matches the
// recorded correct index. Answers are keyed by question id; missing or
// out-of-range selections count as incorrect.
func Score(answers map[string]int) int {
	score := 0
	for _, q := range catalog.PlacementQuestions {
		sel, ok := answers[q.ID]
		if !ok || sel < 0 || sel >= len(q.Options) {
			continue
		}
		if sel == q.CorrectIndex {
			score++
		}
	}
	return score
}

// Recommend maps a score to a level id: 4+ correct recommends the
// advanced tier, 2+ the intermediate tier, anything lower the
// beginner tier.
func Recommend(score int) string {
	switch {
	case score >= advancedMinScore:
		return catalog.LevelAvanzado
	case score >= intermediateMinScore:
		return catalog.LevelIntermedio
	default:
		return catalog.LevelInicial
	}
}
