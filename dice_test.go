// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docstringer_test

import (
	"golang.org/x/exp/rand"
)

const rollDoc = `
An individual die roll.

Parameters:
- sides (int) - the number of sides on the dice

Returns:
- the value of the die roll
`

const rollTheDiceDoc = `
Roll a number of dice.

Parameters:
- rolls (int) - the number of dice to roll
- sides (int) - the number of sides on the dice

Returns:
- total score on all dice
- a list of the dice rolls
`

var dice = rand.New(rand.NewSource(1))

func roll(sides int) int {
	return dice.Intn(sides) + 1
}

func rollTheDice(rolls, sides int) (int, []int) {
	results := make([]int, 0, rolls)
	total := 0
	for i := 0; i < rolls; i++ {
		r := roll(sides)
		results = append(results, r)
		total += r
	}
	return total, results
}
