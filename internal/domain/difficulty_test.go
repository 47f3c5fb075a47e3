package domain

import (
	"testing"
)

func TestQuadrantClassifier_Scenarios(t *testing.T) {
	c := NewClassicClassifier()

	tests := []struct {
		time  int
		count int
		want  Difficulty
	}{
		{5, 3, DifficultyEasy},
		{5, 4, DifficultyMedium},
		{12, 2, DifficultyIntermediate},
		{12, 4, DifficultyHard},
		{9, 3, DifficultyEasy},
		{10, 3, DifficultyIntermediate},
		{9, 4, DifficultyMedium},
		{10, 4, DifficultyHard},
	}

	for _, tt := range tests {
		got := c.Classify(tt.time, tt.count)
		if got != tt.want {
			t.Errorf("Classify(%d, %d) = %s, want %s", tt.time, tt.count, got, tt.want)
		}
	}
}

func TestQuadrantClassifier_PartitionsInputSpace(t *testing.T) {
	c := NewClassicClassifier()

	counts := map[Difficulty]int{}
	for time := 0; time <= 20; time++ {
		for count := 0; count <= 8; count++ {
			d := c.Classify(time, count)

			var want Difficulty
			switch {
			case time < 10 && count < 4:
				want = DifficultyEasy
			case time < 10 && count >= 4:
				want = DifficultyMedium
			case time >= 10 && count < 4:
				want = DifficultyIntermediate
			case time >= 10 && count >= 4:
				want = DifficultyHard
			}
			if d != want {
				t.Fatalf("Classify(%d, %d) = %s, want %s", time, count, d, want)
			}
			counts[d]++
		}
	}

	if len(counts) != 4 {
		t.Errorf("expected all four labels to be produced, got %v", counts)
	}
}

func TestQuadrantClassifier_NegativeInputsDoNotPanic(t *testing.T) {
	c := NewClassicClassifier()
	if got := c.Classify(-5, -1); got != DifficultyEasy {
		t.Errorf("expected Easy for negative inputs, got %s", got)
	}
}

func TestQuadrantClassifier_CustomThresholds(t *testing.T) {
	c := QuadrantClassifier{Time: 30, Count: 6}

	if got := c.Classify(20, 5); got != DifficultyEasy {
		t.Errorf("expected Easy, got %s", got)
	}
	if got := c.Classify(30, 6); got != DifficultyHard {
		t.Errorf("expected Hard, got %s", got)
	}
}

func TestTieredClassifier(t *testing.T) {
	c := NewTieredClassifier()

	tests := []struct {
		name  string
		time  int
		count int
		want  Difficulty
	}{
		{"quick with two ingredients", 10, 2, DifficultyEasy},
		{"no ingredients yet", 15, 0, DifficultyEasy},
		{"boundary easy", 30, 5, DifficultyEasy},
		{"over an hour is not medium", 75, 7, DifficultyHard},
		{"medium", 45, 7, DifficultyMedium},
		{"short but many ingredients", 20, 8, DifficultyMedium},
		{"hard", 75, 12, DifficultyHard},
		{"quick with too many ingredients", 10, 11, DifficultyHard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.time, tt.count); got != tt.want {
				t.Errorf("Classify(%d, %d) = %s, want %s", tt.time, tt.count, got, tt.want)
			}
		})
	}
}

func TestParseDifficulty_RoundTrip(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyIntermediate, DifficultyHard} {
		if got := ParseDifficulty(d.String()); got != d {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", d.String(), got, d)
		}
	}
	if got := ParseDifficulty("easy"); got != DifficultyUnknown {
		t.Errorf("expected case-sensitive parse to fail, got %v", got)
	}
}
