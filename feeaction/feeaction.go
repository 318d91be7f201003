// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package feeaction is the pure-function fee and logical-action calculator.
// It has no dependency on wallet state, the chain, or the builder: every
// function here is a deterministic computation over sizes and counts.
package feeaction

import "github.com/zcash-community/shieldedplan/pool"

// ZIP-317 conventional-fee parameters.
const (
	// MarginalFee is the fee, in zatoshi, charged per logical action.
	MarginalFee pool.Amount = 5000

	// GraceActions is the minimum logical action count a conventional fee
	// is computed against, regardless of how few actions a transaction
	// actually has.
	GraceActions = 2

	// P2PKHStandardInputSize and P2PKHStandardOutputSize are the
	// worst-case serialized sizes, in bytes, of a standard P2PKH input and
	// output respectively. The logical action formula normalizes
	// transparent input/output byte sizes against these.
	P2PKHStandardInputSize  = 148
	P2PKHStandardOutputSize = 34

	// DefaultMaxOrchardActions is the default per-side cap on Orchard
	// actions a plan may contain.
	DefaultMaxOrchardActions = 50

	// DefaultRelayFeePerKb is the default minimum relay fee policy used to
	// compute the dust threshold.
	DefaultRelayFeePerKb pool.Amount = 1000
)

// LogicalActionCount computes the ZIP-317 logical action count of a
// transaction shape:
//
//	logical = max(ceil(inSize/P2PKHStandardInputSize), ceil(outSize/P2PKHStandardOutputSize))
//	        + 2*joinSplitCount
//	        + max(saplingSpendCount, saplingOutputCount)
//	        + orchardActionCount
func LogicalActionCount(transparentInSize, transparentOutSize, joinSplitCount, saplingSpendCount, saplingOutputCount, orchardActionCount int) int {
	logical := max(
		ceilDiv(transparentInSize, P2PKHStandardInputSize),
		ceilDiv(transparentOutSize, P2PKHStandardOutputSize),
	)
	logical += 2 * joinSplitCount
	logical += max(saplingSpendCount, saplingOutputCount)
	logical += orchardActionCount
	return logical
}

// ConventionalFee returns the conventional fee for a transaction with the
// given logical action count.
func ConventionalFee(actionCount int) pool.Amount {
	return MarginalFee * pool.Amount(max(actionCount, GraceActions))
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// isDustAmount mirrors the standard Bitcoin-derived dust test: an output is
// dust if the relay fee for spending it (its own size plus the worst-case
// size of an input that redeems it) exceeds a third of its amount.
func isDustAmount(amount int64, scriptSize int, relayFeePerKb pool.Amount) bool {
	totalSize := int64(8 + 2 + varIntSize(scriptSize) + scriptSize + P2PKHStandardInputSize)
	return amount*1000/(3*totalSize) < int64(relayFeePerKb)
}

func varIntSize(v int) int {
	switch {
	case v < 0xfd:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// p2pkhScriptSize is the serialized size, in bytes, of a standard P2PKH
// scriptPubKey.
const p2pkhScriptSize = 25

// DustThreshold returns the minimum zatoshi value a transparent output may
// carry and still be worth relaying, defined as the dust threshold of a
// hypothetical 1-zatoshi P2PKH output at relayFeePerKb.
func DustThreshold(relayFeePerKb pool.Amount) pool.Amount {
	amt := pool.Amount(1)
	for isDustAmount(int64(amt), p2pkhScriptSize, relayFeePerKb) {
		amt++
	}
	return amt
}
