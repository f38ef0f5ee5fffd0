// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mealorder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/someonegg/teamalloc"
)

func TestMatchSingleTeam(t *testing.T) {
	rest1 := &Restaurant{
		Name: "rest1", Rate: 5,
		Stock: map[string]int{Normal: 36, Vegetarian: 4},
	}
	rest2 := &Restaurant{
		Name: "rest2", Rate: 3,
		Stock: map[string]int{Normal: 60, Vegetarian: 20, GlutenFree: 20},
	}
	team := &Team{
		Name:   "cisco1",
		Demand: map[string]int{Normal: 38, Vegetarian: 5, GlutenFree: 7},
	}

	m := &Matcher{}
	plans, perfect, summ, err := m.Match([]*Restaurant{rest1, rest2}, []*Team{team})
	assert.NoError(t, err)
	assert.True(t, perfect)
	assert.Len(t, plans, 1)

	// Better-rated restaurant is drained first.
	assert.Equal(t, []Order{
		{Team: "cisco1", Restaurant: "rest1", Meals: map[string]int{Normal: 36, Vegetarian: 4}},
		{Team: "cisco1", Restaurant: "rest2", Meals: map[string]int{Normal: 2, Vegetarian: 1, GlutenFree: 7}},
	}, plans[0].Orders)
	assert.Empty(t, plans[0].Unfilled)

	// Stock is consumed and history recorded on both sides.
	assert.Equal(t, map[string]int{Normal: 0, Vegetarian: 0}, rest1.Stock)
	assert.Equal(t, map[string]int{Normal: 58, Vegetarian: 19, GlutenFree: 13}, rest2.Stock)
	assert.Len(t, rest1.Orders, 1)
	assert.Len(t, rest2.Orders, 1)
	assert.Len(t, team.Orders, 2)

	assert.Equal(t, 50, summ.MealsDemanded)
	assert.Equal(t, 140, summ.MealsStocked)
	assert.Equal(t, 0, summ.MealsUnfilled)
	assert.Equal(t, 90, summ.MealsRemaining)
}

func TestMatchMultipleTeamsFIFO(t *testing.T) {
	rest1 := &Restaurant{
		Name: "rest1", Rate: 5,
		Stock: map[string]int{Normal: 36, Vegetarian: 4},
	}
	rest2 := &Restaurant{
		Name: "rest2", Rate: 3,
		Stock: map[string]int{Normal: 60, Vegetarian: 20, GlutenFree: 20},
	}
	team1 := &Team{
		Name:   "cisco1",
		Demand: map[string]int{Normal: 38, Vegetarian: 5, GlutenFree: 7},
	}
	team2 := &Team{
		Name:   "cisco2",
		Demand: map[string]int{Normal: 30, Vegetarian: 8, GlutenFree: 10},
	}

	m := &Matcher{}
	plans, perfect, _, err := m.Match([]*Restaurant{rest1, rest2}, []*Team{team1, team2})
	assert.NoError(t, err)
	assert.True(t, perfect)
	assert.Len(t, plans, 2)

	// The first team took everything rest1 had, so the second team
	// orders from rest2 alone.
	assert.Equal(t, []Order{
		{Team: "cisco2", Restaurant: "rest2", Meals: map[string]int{Normal: 30, Vegetarian: 8, GlutenFree: 10}},
	}, plans[1].Orders)
	assert.Equal(t, map[string]int{Normal: 28, Vegetarian: 11, GlutenFree: 3}, rest2.Stock)
}

func TestMatchPreferLarger(t *testing.T) {
	small := &Restaurant{
		Name: "small", Rate: 5,
		Stock: map[string]int{Normal: 5},
	}
	large := &Restaurant{
		Name: "large", Rate: 5,
		Stock: map[string]int{Normal: 50},
	}
	team := &Team{Name: "t1", Demand: map[string]int{Normal: 3}}

	t.Run("Default", func(t *testing.T) {
		s, l := *small, *large
		s.Stock, l.Stock = map[string]int{Normal: 5}, map[string]int{Normal: 50}
		m := &Matcher{}
		plans, _, _, err := m.Match([]*Restaurant{&s, &l}, []*Team{{Name: team.Name, Demand: map[string]int{Normal: 3}}})
		assert.NoError(t, err)
		assert.Equal(t, "small", plans[0].Orders[0].Restaurant)
	})

	t.Run("PreferLarger", func(t *testing.T) {
		s, l := *small, *large
		s.Stock, l.Stock = map[string]int{Normal: 5}, map[string]int{Normal: 50}
		m := &Matcher{PreferLarger: true}
		plans, _, _, err := m.Match([]*Restaurant{&s, &l}, []*Team{{Name: team.Name, Demand: map[string]int{Normal: 3}}})
		assert.NoError(t, err)
		assert.Equal(t, "large", plans[0].Orders[0].Restaurant)
	})
}

func TestMatchShortfall(t *testing.T) {
	rest := &Restaurant{
		Name: "rest1", Rate: 4,
		Stock: map[string]int{Normal: 10},
	}
	team := &Team{
		Name:   "t1",
		Demand: map[string]int{Normal: 12, Vegetarian: 2},
	}

	m := &Matcher{}
	plans, perfect, summ, err := m.Match([]*Restaurant{rest}, []*Team{team})
	assert.NoError(t, err)
	assert.False(t, perfect)
	assert.Equal(t, map[string]int{Normal: 2, Vegetarian: 2}, plans[0].Unfilled)
	assert.Equal(t, 4, summ.MealsUnfilled)
	assert.Equal(t, 0, summ.MealsRemaining)
}

func TestMatchErrors(t *testing.T) {
	t.Run("DuplicateTeam", func(t *testing.T) {
		rest := &Restaurant{Name: "rest1", Rate: 4, Stock: map[string]int{Normal: 10}}
		teams := []*Team{
			{Name: "t1", Demand: map[string]int{Normal: 1}},
			{Name: "t1", Demand: map[string]int{Normal: 1}},
		}
		m := &Matcher{}
		_, _, _, err := m.Match([]*Restaurant{rest}, teams)
		assert.ErrorAs(t, err, new(*teamalloc.DuplicateTeamError))
	})

	t.Run("InvalidRate", func(t *testing.T) {
		rest := &Restaurant{Name: "rest1", Rate: -2, Stock: map[string]int{Normal: 10}}
		teams := []*Team{{Name: "t1", Demand: map[string]int{Normal: 1}}}
		m := &Matcher{}
		_, _, _, err := m.Match([]*Restaurant{rest}, teams)
		assert.ErrorAs(t, err, new(*teamalloc.InvalidRateError))
	})
}
