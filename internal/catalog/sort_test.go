package catalog

import (
	"errors"
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func sample() []Item {
	return []Item{
		{ID: "a", Role: "Frontend", Ecosystem: "React", Date: day("2020-01-01")},
		{ID: "b", Role: "Lead", Ecosystem: "Vue", Date: day("2022-06-01")},
		{ID: "c", Role: "Frontend", Ecosystem: "React", Date: day("2019-06-01")},
		{ID: "d", Role: "Design", Ecosystem: "Astro", Date: day("2021-03-20")},
		{ID: "e", Role: "Lead", Ecosystem: "React", Date: day("2023-09-01")},
	}
}

func TestSortIsPermutationForEveryCriterion(t *testing.T) {
	in := sample()
	want := ids(in)
	slices.Sort(want)
	for _, c := range Criteria {
		got, err := Sort(in, c, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("Sort(%v) error = %v", c, err)
		}
		gotIDs := ids(got)
		slices.Sort(gotIDs)
		if !reflect.DeepEqual(gotIDs, want) {
			t.Fatalf("Sort(%v) ids = %v, want permutation of %v", c, gotIDs, want)
		}
	}
	if !reflect.DeepEqual(ids(in), []string{"a", "b", "c", "d", "e"}) {
		t.Fatalf("Sort mutated its input: %v", ids(in))
	}
}

func TestSortByDateScenario(t *testing.T) {
	in := []Item{
		{ID: "x", Date: day("2020-01-01")},
		{ID: "y", Date: day("2022-06-01")},
		{ID: "z", Date: day("2019-06-01")},
	}
	got, _ := Sort(in, ByDate, nil)
	if want := []string{"y", "x", "z"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("Sort(date) = %v, want %v", ids(got), want)
	}
}

func TestSortByDateIsStableAndNonIncreasing(t *testing.T) {
	in := []Item{
		{ID: "p", Date: day("2021-01-01")},
		{ID: "q", Date: day("2022-01-01")},
		{ID: "r", Date: day("2021-01-01")},
		{ID: "s", Date: day("2021-01-01")},
	}
	got, _ := Sort(in, ByDate, nil)
	if want := []string{"q", "p", "r", "s"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("Sort(date) = %v, want %v", ids(got), want)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Date.After(got[i-1].Date) {
			t.Fatalf("date increased at %d: %v after %v", i, got[i].Date, got[i-1].Date)
		}
	}
}

func TestSortByEcosystemTieBreaksOnDate(t *testing.T) {
	got, _ := Sort(sample(), ByEcosystem, nil)
	if want := []string{"d", "e", "a", "c", "b"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("Sort(ecosystem) = %v, want %v", ids(got), want)
	}
}

func TestSortByRoleDescending(t *testing.T) {
	got, _ := Sort(sample(), ByRole, nil)
	if want := []string{"e", "b", "a", "c", "d"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("Sort(role) = %v, want %v", ids(got), want)
	}
}

func TestSortRandomIsSeedDeterministic(t *testing.T) {
	in := sample()
	first, _ := Sort(in, ByRandom, rand.New(rand.NewSource(42)))
	second, _ := Sort(in, ByRandom, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatalf("same seed gave %v and %v", ids(first), ids(second))
	}

	differs := false
	for seed := int64(1); seed <= 20 && !differs; seed++ {
		other, _ := Sort(in, ByRandom, rand.New(rand.NewSource(42+seed)))
		differs = !reflect.DeepEqual(ids(first), ids(other))
	}
	if !differs {
		t.Fatal("expected some other seed to produce a different permutation")
	}
}

func TestSortUnknownCriterionKeepsOrder(t *testing.T) {
	in := sample()
	got, err := Sort(in, Criterion(99), nil)
	if !errors.Is(err, ErrUnknownCriterion) {
		t.Fatalf("Sort() error = %v, want ErrUnknownCriterion", err)
	}
	if !reflect.DeepEqual(ids(got), ids(in)) {
		t.Fatalf("unknown criterion reordered: %v", ids(got))
	}
}

func TestParseCriterion(t *testing.T) {
	tests := map[string]Criterion{"date": ByDate, "ECO": ByEcosystem, " ecosystem ": ByEcosystem, "role": ByRole, "random": ByRandom}
	for in, want := range tests {
		got, err := ParseCriterion(in)
		if err != nil || got != want {
			t.Fatalf("ParseCriterion(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseCriterion("stars"); !errors.Is(err, ErrUnknownCriterion) {
		t.Fatalf("ParseCriterion(stars) error = %v", err)
	}
}
