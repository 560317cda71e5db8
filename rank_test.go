package main

import (
	"testing"
)

func TestLowCaloriePenalty(t *testing.T) {
	k := DefaultKnobs()
	if got := lowCaloriePenalty(k.CalFloor, k); got != 0 {
		t.Fatalf("penalty at the floor = %v, want 0", got)
	}
	if got := lowCaloriePenalty(k.CalFloor+200, k); got != 0 {
		t.Fatalf("penalty above the floor = %v, want 0", got)
	}
	near := lowCaloriePenalty(k.CalFloor*0.9, k)
	far := lowCaloriePenalty(k.CalFloor*0.2, k)
	if near >= 0 || far >= 0 {
		t.Fatalf("penalties below the floor = %v, %v, want negative", near, far)
	}
	if far >= near {
		t.Fatalf("penalty should grow with distance below the floor: far %v, near %v", far, near)
	}
}

func TestChooseNextPicksSomething(t *testing.T) {
	state := fixtureState(t)
	food := ChooseNext(state, nil, 0, DefaultKnobs())
	if food == nil {
		t.Fatal("ChooseNext returned nil on a full catalog")
	}
	if food.Available <= 0 {
		t.Fatalf("ChooseNext returned %s with availability %d", food.Name, food.Available)
	}
}

func TestChooseNextSkipsExhaustedFoods(t *testing.T) {
	foods := fixtureFoods()
	for i := range foods {
		if foods[i].Name != "Bread" {
			foods[i].Available = 0
		}
	}
	state := NewFoodState(foods)

	for i := 0; i < 5; i++ {
		food := ChooseNext(state, nil, 0, DefaultKnobs())
		if food == nil {
			t.Fatal("ChooseNext returned nil while bread is still available")
		}
		if food.Name != "Bread" {
			t.Fatalf("ChooseNext returned exhausted food %s", food.Name)
		}
		if err := state.Consume(food.Name); err != nil {
			t.Fatalf("consume: %v", err)
		}
	}
}

func TestChooseNextNilWhenNothingAvailable(t *testing.T) {
	foods := fixtureFoods()
	for i := range foods {
		foods[i].Available = 0
	}
	state := NewFoodState(foods)
	if food := ChooseNext(state, nil, 0, DefaultKnobs()); food != nil {
		t.Fatalf("ChooseNext = %s, want nil with empty supply", food.Name)
	}
}

func TestRepetitionPenaltyDiscouragesDominantFood(t *testing.T) {
	state := fixtureState(t)
	bread, _ := state.Get("Bread")
	apple, _ := state.Get("Apple")
	sel := Selection{bread: 9, apple: 1}

	k := DefaultKnobs()
	k.RepetitionPenaltyGamma = 1.0
	breadPenalty := repetitionPenalty(sel, bread, k)
	applePenalty := repetitionPenalty(sel, apple, k)
	if breadPenalty <= applePenalty {
		t.Fatalf("dominant food penalty %v should exceed rare food penalty %v", breadPenalty, applePenalty)
	}
}

func TestPickFeasibleCraving(t *testing.T) {
	state := fixtureState(t)

	t.Run("case-insensitive match", func(t *testing.T) {
		food := PickFeasibleCraving(state, []string{"cHeEsE"}, 0)
		if food == nil || food.Name != "Cheese" {
			t.Fatalf("PickFeasibleCraving = %v, want Cheese", food)
		}
	})
	t.Run("no cravings", func(t *testing.T) {
		if food := PickFeasibleCraving(state, nil, 0); food != nil {
			t.Fatalf("PickFeasibleCraving = %s, want nil", food.Name)
		}
	})
	t.Run("unknown craving", func(t *testing.T) {
		if food := PickFeasibleCraving(state, []string{"Dragonfruit"}, 0); food != nil {
			t.Fatalf("PickFeasibleCraving = %s, want nil", food.Name)
		}
	})
	t.Run("exhausted craving", func(t *testing.T) {
		foods := fixtureFoods()
		for i := range foods {
			if foods[i].Name == "Cheese" {
				foods[i].Available = 0
			}
		}
		exhausted := NewFoodState(foods)
		if food := PickFeasibleCraving(exhausted, []string{"Cheese"}, 0); food != nil {
			t.Fatalf("PickFeasibleCraving = %s, want nil for exhausted craving", food.Name)
		}
	})
}
