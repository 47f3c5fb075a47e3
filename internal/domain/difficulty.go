package domain

import "fmt"

// Difficulty is the label derived from a recipe's cooking time and
// ingredient count.
type Difficulty int

const (
	DifficultyUnknown Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyIntermediate
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty converts a stored label back into a Difficulty.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "Easy":
		return DifficultyEasy
	case "Medium":
		return DifficultyMedium
	case "Intermediate":
		return DifficultyIntermediate
	case "Hard":
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// Classifier maps cooking time (minutes) and ingredient count to a Difficulty.
// Implementations are total: every integer pair yields a label.
type Classifier interface {
	Classify(cookingTime, ingredientCount int) Difficulty
}

// Default thresholds of the classic profile.
const (
	DefaultTimeThreshold  = 10
	DefaultCountThreshold = 4
)

// QuadrantClassifier splits the input space on two predicates:
// cookingTime < Time and ingredientCount < Count.
//
//	time low, count low   -> Easy
//	time low, count high  -> Medium
//	time high, count low  -> Intermediate
//	time high, count high -> Hard
type QuadrantClassifier struct {
	Time  int
	Count int
}

// NewClassicClassifier returns the quadrant classifier with the 10 minute /
// 4 ingredient thresholds.
func NewClassicClassifier() QuadrantClassifier {
	return QuadrantClassifier{Time: DefaultTimeThreshold, Count: DefaultCountThreshold}
}

// Classify implements Classifier.
func (c QuadrantClassifier) Classify(cookingTime, ingredientCount int) Difficulty {
	timeLow := cookingTime < c.Time
	countLow := ingredientCount < c.Count

	switch {
	case timeLow && countLow:
		return DifficultyEasy
	case timeLow:
		return DifficultyMedium
	case countLow:
		return DifficultyIntermediate
	default:
		return DifficultyHard
	}
}

func (c QuadrantClassifier) String() string {
	return fmt.Sprintf("classic(time<%d, ingredients<%d)", c.Time, c.Count)
}

// TieredClassifier grades recipes in three ascending tiers. A recipe is Easy
// when both values fit the easy limits, Medium when both fit the medium
// limits, Hard otherwise. It never yields Intermediate.
type TieredClassifier struct {
	EasyTime    int
	MediumTime  int
	EasyCount   int
	MediumCount int
}

// NewTieredClassifier returns the tiered classifier with the 30/60 minute and
// 5/10 ingredient limits.
func NewTieredClassifier() TieredClassifier {
	return TieredClassifier{EasyTime: 30, MediumTime: 60, EasyCount: 5, MediumCount: 10}
}

// Classify implements Classifier.
func (c TieredClassifier) Classify(cookingTime, ingredientCount int) Difficulty {
	if cookingTime <= c.EasyTime && ingredientCount <= c.EasyCount {
		return DifficultyEasy
	}
	if cookingTime <= c.MediumTime && ingredientCount <= c.MediumCount {
		return DifficultyMedium
	}
	return DifficultyHard
}

func (c TieredClassifier) String() string {
	return fmt.Sprintf("tiered(easy<=%dm/%d, medium<=%dm/%d)", c.EasyTime, c.EasyCount, c.MediumTime, c.MediumCount)
}
