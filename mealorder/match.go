// Copyright 2023 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mealorder

import (
	"fmt"
	"sort"

	"github.com/golang-collections/collections/queue"

	"github.com/someonegg/teamalloc"
)

// Match processes teams strictly in slice order (FIFO) and splits each
// team's demand greedily across restaurants in rate order. Restaurant
// stock is consumed as orders are placed and never restored within a
// run, so earlier teams eat from better-rated restaurants first.
//
// perfect reports whether every team's demand was fully filled; the
// shortfall per team is recorded in its Plan. Match fails with the core
// error taxonomy on malformed rates or duplicate team names.
func (m *Matcher) Match(restaurants []*Restaurant, teams []*Team) (plans []*Plan, perfect bool, summ Summary, err error) {
	summ.RestaurantsCount = len(restaurants)
	summ.TeamsCount = len(teams)
	for _, r := range restaurants {
		summ.MealsStocked += stockTotal(r.Stock)
	}
	for _, t := range teams {
		summ.MealsDemanded += stockTotal(t.Demand)
	}

	if m.Verbose {
		fmt.Printf("restaurants: %v, teams: %v, demand: %v, stock: %v\n",
			summ.RestaurantsCount, summ.TeamsCount, summ.MealsDemanded, summ.MealsStocked)
		fmt.Println("")
	}

	fifo := queue.New()
	seen := make(map[string]bool, len(teams))
	for _, t := range teams {
		if seen[t.Name] {
			return nil, false, summ, &teamalloc.DuplicateTeamError{ID: t.Name}
		}
		seen[t.Name] = true
		fifo.Enqueue(t)
	}

	perfect = true
	for fifo.Len() > 0 {
		team := fifo.Dequeue().(*Team)

		plan, perr := m.orderFor(team, restaurants)
		if perr != nil {
			return nil, false, summ, perr
		}
		if len(plan.Unfilled) > 0 {
			perfect = false
			summ.MealsUnfilled += stockTotal(plan.Unfilled)
		}
		plans = append(plans, plan)
	}

	for _, r := range restaurants {
		summ.MealsRemaining += stockTotal(r.Stock)
	}

	if m.Verbose {
		for _, r := range restaurants {
			if rest := stockTotal(r.Stock); rest > 0 {
				fmt.Println(r.Name, "rate:", r.Rate, "stock_rest:", rest)
			}
		}
		fmt.Println("")
	}

	return plans, perfect, summ, nil
}

// orderFor places one team's order, splitting its demand across
// restaurants in ranked order and recording the order lines on both
// sides.
func (m *Matcher) orderFor(team *Team, restaurants []*Restaurant) (*Plan, error) {
	ranked, err := m.rank(restaurants)
	if err != nil {
		return nil, err
	}

	demand := make(map[string]int, len(team.Demand))
	for class, n := range team.Demand {
		demand[class] = n
	}

	plan := &Plan{Team: team.Name}

	for _, view := range ranked {
		if stockTotal(demand) == 0 {
			break
		}
		rest := view.Info.(*Restaurant)
		if stockTotal(rest.Stock) == 0 {
			continue
		}

		meals := make(map[string]int)
		for _, class := range MealClasses {
			n := minInt(demand[class], rest.Stock[class])
			if n <= 0 {
				continue
			}
			meals[class] = n
			demand[class] -= n
			rest.Stock[class] -= n
		}
		if len(meals) == 0 {
			continue
		}

		order := Order{Team: team.Name, Restaurant: rest.Name, Meals: meals}
		rest.Orders = append(rest.Orders, order)
		team.Orders = append(team.Orders, order)
		plan.Orders = append(plan.Orders, order)

		if m.Verbose {
			fmt.Println("  ", team.Name, "->", rest.Name, "rate:", rest.Rate, "meals:", stockTotal(meals))
		}
	}

	for class, n := range demand {
		if n > 0 {
			if plan.Unfilled == nil {
				plan.Unfilled = make(map[string]int)
			}
			plan.Unfilled[class] = n
		}
	}

	return plan, nil
}

// rank orders restaurant views by rate descending using the core
// ranker. PreferLarger is realised as a stable presort by remaining
// stock, so equal rates resolve larger stock first, matching the
// original ordering behavior exactly rather than bucketed size classes.
func (m *Matcher) rank(restaurants []*Restaurant) ([]teamalloc.Restaurant, error) {
	views := make([]teamalloc.Restaurant, len(restaurants))
	for i, r := range restaurants {
		views[i] = teamalloc.Restaurant{
			ID:   r.Name,
			Rate: r.Rate,
			Cap:  int64(stockTotal(r.Stock)),
			Info: r,
		}
	}

	if m.PreferLarger {
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Cap > views[j].Cap
		})
	}

	return teamalloc.RankRestaurants(views, teamalloc.OriginalOrder)
}

func stockTotal(stock map[string]int) int {
	total := 0
	for _, n := range stock {
		total += n
	}
	return total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
