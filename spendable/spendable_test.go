// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spendable

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zcash-community/shieldedplan/pool"
)

func notes(amounts ...pool.Amount) []SaplingNote {
	out := make([]SaplingNote, len(amounts))
	for i, a := range amounts {
		out[i] = SaplingNote{Amount: a}
	}
	return out
}

// TestScenarioS6InsufficientFundsByExactlyDust covers spec.md scenario S6:
// the spendable total falls short of target by precisely the dust
// threshold, and selection must fail rather than succeed with a dust
// change.
func TestScenarioS6InsufficientFundsByExactlyDust(t *testing.T) {
	dust := feeDustThreshold()
	in := &Inputs{Sapling: notes(100000)}
	target := pool.Amount(100000) + dust
	require.False(t, in.LimitToAmount(target, dust, pool.NewSet(pool.Sapling)),
		"selection must fail when short by exactly the dust threshold")
}

// TestScenarioS7DustChangeAvoidedByPullingExtraInput covers spec.md scenario
// S7: a second input is pulled in to avoid leaving dust change, when one is
// available.
func TestScenarioS7DustChangeAvoidedByPullingExtraInput(t *testing.T) {
	dust := feeDustThreshold()
	in := &Inputs{Sapling: notes(100000+dust/2, 50000)}
	target := pool.Amount(100000)
	require.True(t, in.LimitToAmount(target, dust, pool.NewSet(pool.Sapling)),
		"selection should succeed by pulling in the extra note")
	require.Len(t, in.Sapling, 2, "both notes should be pulled in to avoid dust change")
}

func TestLimitToAmountPrefersPreferredPool(t *testing.T) {
	in := &Inputs{
		UTXOs:   []UTXO{{Amount: 200000}},
		Sapling: notes(150000),
	}
	require.True(t, in.LimitToAmount(100000, 1000, pool.NewSet(pool.Sapling)))
	require.Len(t, in.Sapling, 1)
	require.Empty(t, in.UTXOs, "the smaller preferred-pool note should be chosen over the larger transparent UTXO")
}

func TestLimitToAmountFailsWhenInsufficient(t *testing.T) {
	in := &Inputs{Sapling: notes(100)}
	require.False(t, in.LimitToAmount(1000, 10, pool.NewSet(pool.Sapling)))
	require.Len(t, in.Sapling, 1, "inputs should be left unmodified on failure")
}

func TestHasTransparentCoinbase(t *testing.T) {
	in := &Inputs{UTXOs: []UTXO{{Amount: 1}, {Amount: 2, FromCoinbase: true}}}
	require.True(t, in.HasTransparentCoinbase())
}

func TestTotals(t *testing.T) {
	in := &Inputs{
		UTXOs:   []UTXO{{Amount: 10}},
		Sprout:  []SproutNote{{Amount: 20}},
		Sapling: notes(30),
		Orchard: []OrchardNote{{Amount: 40}},
	}
	require.Equal(t, pool.Amount(100), in.Total())
}

// feeDustThreshold avoids importing feeaction directly to keep this test
// focused on selection mechanics rather than the dust formula itself.
func feeDustThreshold() pool.Amount {
	return 1000
}
