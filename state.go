package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrFoodNotFound is returned when a lookup by name misses. It is the
// only recoverable error surfaced by the planning core.
var ErrFoodNotFound = errors.New("food not found")

// Selection is a snapshot of selected quantities keyed by food. Only
// entries with quantity > 0 participate in scoring.
type Selection map[*Food]int

// sortedFoods returns the selected foods ordered by key, so every
// float accumulation over a selection happens in a fixed order.
func (s Selection) sortedFoods() []*Food {
	foods := make([]*Food, 0, len(s))
	for f, qty := range s {
		if qty > 0 {
			foods = append(foods, f)
		}
	}
	sort.Slice(foods, func(i, j int) bool { return foods[i].Key() < foods[j].Key() })
	return foods
}

// withOneMore returns a copy of the selection with one extra unit of
// food. The receiver is not modified.
func (s Selection) withOneMore(food *Food) Selection {
	next := make(Selection, len(s)+1)
	for f, qty := range s {
		next[f] = qty
	}
	next[food]++
	return next
}

// totalUnits returns the number of selected units across all foods.
func (s Selection) totalUnits() int {
	n := 0
	for _, qty := range s {
		n += qty
	}
	return n
}

// FoodState owns the mutable catalog during a planning run: per-food
// availability and selected quantity. Exactly one component mutates it
// at a time.
type FoodState struct {
	foods map[string]*Food
	order []string // insertion order, keeps iteration deterministic
}

// NewFoodState builds a state from a food list. Later duplicates of a
// case-insensitive name replace earlier ones.
func NewFoodState(foods []Food) *FoodState {
	s := &FoodState{foods: make(map[string]*Food, len(foods))}
	for i := range foods {
		f := foods[i]
		key := f.Key()
		if _, ok := s.foods[key]; !ok {
			s.order = append(s.order, key)
		}
		s.foods[key] = &f
	}
	return s
}

// Get looks up a food by case-insensitive name.
func (s *FoodState) Get(name string) (*Food, error) {
	f, ok := s.foods[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFoodNotFound, name)
	}
	return f, nil
}

// Consume moves one unit of the named food from available to stomach.
// Consuming at zero availability indicates a ranking bug upstream; the
// counters are left untouched and an error is returned.
func (s *FoodState) Consume(name string) error {
	f, err := s.Get(name)
	if err != nil {
		return err
	}
	if f.Available <= 0 {
		return fmt.Errorf("consume %s: no availability left", f.Name)
	}
	f.Available--
	f.Stomach++
	return nil
}

// Stomach returns the current selection snapshot.
func (s *FoodState) Stomach() Selection {
	sel := make(Selection)
	for _, key := range s.order {
		if f := s.foods[key]; f.Stomach > 0 {
			sel[f] = f.Stomach
		}
	}
	return sel
}

// AllAvailable returns foods with availability > 0 in insertion order.
func (s *FoodState) AllAvailable() []*Food {
	var out []*Food
	for _, key := range s.order {
		if f := s.foods[key]; f.Available > 0 {
			out = append(out, f)
		}
	}
	return out
}

// Foods returns a copy of every food in insertion order.
func (s *FoodState) Foods() []Food {
	out := make([]Food, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, *s.foods[key])
	}
	return out
}

// TotalStomachCalories sums calories over the selection.
func (s *FoodState) TotalStomachCalories() float64 {
	total := 0.0
	for _, key := range s.order {
		f := s.foods[key]
		total += f.Calories * float64(f.Stomach)
	}
	return total
}

// ResetStomach clears all selected quantities.
func (s *FoodState) ResetStomach() {
	for _, f := range s.foods {
		f.Stomach = 0
	}
}

// ResetAvailability sets every food's availability to n.
func (s *FoodState) ResetAvailability(n int) {
	for _, f := range s.foods {
		f.Available = n
	}
}

// Clone deep-copies the state so parallel evaluations never share
// mutable counters.
func (s *FoodState) Clone() *FoodState {
	return NewFoodState(s.Foods())
}

// Len returns the number of distinct foods.
func (s *FoodState) Len() int {
	return len(s.foods)
}
