package dice

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		roll []int
		want Category
	}{
		{"three pairs", []int{1, 1, 2, 2, 3, 3}, ThreePairs},
		{"three pairs shuffled", []int{6, 2, 4, 6, 2, 4}, ThreePairs},
		{"yahtzee", []int{4, 4, 4, 4, 4, 4}, Yahtzee},
		{"four plus two", []int{2, 2, 2, 2, 5, 5}, FourPlusTwo},
		{"four plus two shuffled", []int{5, 2, 2, 5, 2, 2}, FourPlusTwo},
		{"single pair", []int{1, 1, 2, 3, 4, 5}, Pair},
		{"two pairs", []int{1, 1, 2, 2, 3, 4}, Pair},
		{"triple", []int{3, 3, 3, 1, 2, 4}, Pair},
		{"full house", []int{3, 3, 3, 1, 1, 4}, Pair},
		{"two triples", []int{3, 3, 3, 6, 6, 6}, Pair},
		{"four of a kind", []int{5, 5, 5, 5, 1, 2}, Pair},
		{"five of a kind", []int{5, 5, 5, 5, 5, 2}, Pair},
		{"straight", []int{1, 2, 3, 4, 5, 6}, Other},
		{"straight shuffled", []int{6, 4, 2, 5, 3, 1}, Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.roll)
			if err != nil {
				t.Fatalf("Classify(%v) error: %v", tt.roll, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.roll, got, tt.want)
			}
		})
	}
}

func TestEvaluateMultiplier(t *testing.T) {
	t.Parallel()
	odds := CalibratedOdds()

	tests := []struct {
		roll []int
		cat  Category
		mult float64
	}{
		{[]int{4, 4, 4, 4, 4, 4}, Yahtzee, 20.0},
		{[]int{1, 1, 2, 2, 3, 3}, ThreePairs, 4.0},
		{[]int{2, 2, 2, 2, 5, 5}, FourPlusTwo, 3.0},
		{[]int{1, 1, 2, 3, 4, 5}, Pair, 0.82},
		{[]int{1, 2, 3, 4, 5, 6}, Other, 0},
	}

	for _, tt := range tests {
		cat, mult, err := Evaluate(tt.roll, odds)
		if err != nil {
			t.Fatalf("Evaluate(%v) error: %v", tt.roll, err)
		}
		if cat != tt.cat || mult != tt.mult {
			t.Errorf("Evaluate(%v) = (%s, %v), want (%s, %v)", tt.roll, cat, mult, tt.cat, tt.mult)
		}
	}
}

func TestEvaluateRejectsInvalidRoll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		roll []int
	}{
		{"nil", nil},
		{"five dice", []int{1, 2, 3, 4, 5}},
		{"seven dice", []int{1, 2, 3, 4, 5, 6, 1}},
		{"zero face", []int{0, 1, 2, 3, 4, 5}},
		{"seven face", []int{1, 2, 3, 4, 5, 7}},
		{"negative face", []int{-1, 1, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Evaluate(tt.roll, CalibratedOdds())
			if !errors.Is(err, ErrInvalidRoll) {
				t.Fatalf("Evaluate(%v) error = %v, want ErrInvalidRoll", tt.roll, err)
			}
		})
	}
}

// forEachRoll calls fn with every one of the 6^6 rolls.
func forEachRoll(fn func(roll []int)) {
	roll := make([]int, DiceCount)
	var rec func(i int)
	rec = func(i int) {
		if i == DiceCount {
			fn(roll)
			return
		}
		for f := 1; f <= Faces; f++ {
			roll[i] = f
			rec(i + 1)
		}
	}
	rec(0)
}

func TestClassifyExhaustive(t *testing.T) {
	t.Parallel()

	counts := make(map[Category]int)
	total := 0
	forEachRoll(func(roll []int) {
		c, err := Classify(roll)
		if err != nil {
			t.Fatalf("Classify(%v) error: %v", roll, err)
		}
		if c < Other || c > Pair {
			t.Fatalf("Classify(%v) = %d, outside the category set", roll, int(c))
		}
		counts[c]++
		total++
	})

	if total != 46656 {
		t.Fatalf("enumerated %d rolls, want 46656", total)
	}

	want := map[Category]int{
		ThreePairs:  1800,
		Yahtzee:     6,
		FourPlusTwo: 450,
		Pair:        43680,
		Other:       720,
	}
	for c, n := range want {
		if counts[c] != n {
			t.Errorf("%s: got %d rolls, want %d", c, counts[c], n)
		}
	}
}

func TestClassifyShapeInvariance(t *testing.T) {
	t.Parallel()

	// relabel 3<->5 and reverse order
	swap := map[int]int{1: 1, 2: 2, 3: 5, 4: 4, 5: 3, 6: 6}

	forEachRoll(func(roll []int) {
		want, _ := Classify(roll)

		relabeled := make([]int, len(roll))
		reversed := make([]int, len(roll))
		for i, v := range roll {
			relabeled[i] = swap[v]
			reversed[len(roll)-1-i] = v
		}

		if got, _ := Classify(relabeled); got != want {
			t.Fatalf("relabeled %v -> %v changed %s to %s", roll, relabeled, want, got)
		}
		if got, _ := Classify(reversed); got != want {
			t.Fatalf("reordered %v -> %v changed %s to %s", roll, reversed, want, got)
		}
	})
}

func TestRulesPriority(t *testing.T) {
	t.Parallel()

	// [2,2,2] also satisfies the Pair predicate; the cascade must stop earlier.
	shape := []int{2, 2, 2}
	matched := 0
	for _, r := range rules {
		if r.match(shape) {
			matched++
		}
	}
	if matched < 2 {
		t.Fatalf("expected shape %v to satisfy several predicates, matched %d", shape, matched)
	}
	if got := classifyShape(shape); got != ThreePairs {
		t.Errorf("classifyShape(%v) = %s, want %s", shape, got, ThreePairs)
	}

	if rules[0].category != ThreePairs || rules[len(rules)-1].category != Pair {
		t.Errorf("unexpected rule order: first %s, last %s", rules[0].category, rules[len(rules)-1].category)
	}
}

func TestShape(t *testing.T) {
	t.Parallel()

	shape, err := Shape([]int{3, 1, 3, 6, 3, 1})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 2, 1}
	if len(shape) != len(want) {
		t.Fatalf("Shape = %v, want %v", shape, want)
	}
	for i := range want {
		if shape[i] != want[i] {
			t.Fatalf("Shape = %v, want %v", shape, want)
		}
	}
}

func TestThrow(t *testing.T) {
	t.Parallel()

	src := NewSeededSource(7, 0)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		roll := Throw(src)
		if len(roll) != DiceCount {
			t.Fatalf("Throw returned %d dice", len(roll))
		}
		for _, v := range roll {
			if v < 1 || v > Faces {
				t.Fatalf("Throw returned face %d", v)
			}
			seen[v] = true
		}
	}
	if len(seen) != Faces {
		t.Errorf("saw faces %v, want all %d", seen, Faces)
	}
}

func TestSeededSourceReproducible(t *testing.T) {
	t.Parallel()

	a := NewSeededSource(42, 3)
	b := NewSeededSource(42, 3)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(6), b.IntN(6); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
