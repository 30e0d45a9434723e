package sorting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type person struct {
	name string
	age  int
	city string
}

func personValue(p person, column string) (any, bool) {
	switch column {
	case "name":
		return p.name, true
	case "age":
		return p.age, true
	case "city":
		if p.city == "" {
			return nil, false
		}
		return p.city, true
	}
	return nil, false
}

func names(ps []person) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.name
	}
	return out
}

func TestSortMultiColumn(t *testing.T) {
	people := []person{
		{"dan", 30, "oslo"},
		{"ann", 25, "rome"},
		{"Bob", 30, "lima"},
		{"cat", 25, "oslo"},
	}

	Sort(people, NewDescriptions(
		Description{Column: "age", Direction: Descending},
		Description{Column: "name", Direction: Ascending},
	), personValue)

	assert.Equal(t, []string{"Bob", "dan", "ann", "cat"}, names(people))
}

func TestSortIsStable(t *testing.T) {
	people := []person{{"a", 1, ""}, {"b", 1, ""}, {"c", 1, ""}}

	Sort(people, NewDescriptions(Description{Column: "age", Direction: Descending}), personValue)

	assert.Equal(t, []string{"a", "b", "c"}, names(people))
}

func TestSortMissingValuesFirstWhenAscending(t *testing.T) {
	people := []person{{"a", 1, "zurich"}, {"b", 1, ""}, {"c", 1, "bern"}}

	Sort(people, NewDescriptions(Description{Column: "city", Direction: Ascending}), personValue)
	assert.Equal(t, []string{"b", "c", "a"}, names(people))

	Sort(people, NewDescriptions(Description{Column: "city", Direction: Descending}), personValue)
	assert.Equal(t, []string{"a", "c", "b"}, names(people))
}

func TestSortWithoutDescriptionsKeepsOrder(t *testing.T) {
	people := []person{{"z", 1, ""}, {"a", 2, ""}}
	Sort(people, nil, personValue)
	Sort(people, &Descriptions{}, personValue)
	assert.Equal(t, []string{"z", "a"}, names(people))
}

func TestCompareValues(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 2, 10, -1},
		{"mixed numbers", int64(3), 2.5, 1},
		{"strings fold case", "apple", "Banana", -1},
		{"bools", true, false, 1},
		{"times", now, now.Add(time.Second), -1},
		{"equal", "x", "X", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareValues(tt.a, true, tt.b, true))
		})
	}

	assert.Equal(t, -1, CompareValues(nil, true, 1, true))
	assert.Equal(t, 1, CompareValues(1, true, nil, false))
	assert.Equal(t, 0, CompareValues(nil, false, nil, false))
}

func permutations(items []any) [][]any {
	if len(items) <= 1 {
		return [][]any{append([]any(nil), items...)}
	}
	var out [][]any
	for i := range items {
		rest := append(append([]any(nil), items[:i]...), items[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]any{items[i]}, p...))
		}
	}
	return out
}

func TestSortMixedKindsIsIndependentOfInputOrder(t *testing.T) {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	cells := []any{10, "9", 9.5, "apple", true, day, nil}
	value := func(v any, _ string) (any, bool) { return v, v != nil }
	descs := NewDescriptions(Description{Column: "v", Direction: Ascending})

	want := []any{nil, 9.5, 10, true, day, "9", "apple"}
	for _, p := range permutations(cells) {
		Sort(p, descs, value)
		assert.Equal(t, want, p)
	}
}

func TestCompareValuesOrdersKinds(t *testing.T) {
	assert.Equal(t, -1, CompareValues(10, true, "9", true))
	assert.Equal(t, 1, CompareValues("9", true, 9.5, true))
	assert.Equal(t, -1, CompareValues(9.5, true, 10, true))
	assert.Equal(t, -1, CompareValues(false, true, "a", true))
	assert.Equal(t, 1, CompareValues(time.Now(), true, 1, true))
}
