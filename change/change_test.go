// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package change

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zcash-community/shieldedplan/policy"
	"github.com/zcash-community/shieldedplan/pool"
)

type fakeWallet struct {
	account  pool.AccountID
	hasAcct  bool
	receiver pool.Receiver
	canGen   bool
	ufvk     pool.UFVK
	hasUFVK  bool
}

func (w fakeWallet) FindAccountForSelector(pool.Selector) (pool.AccountID, bool) {
	return w.account, w.hasAcct
}

func (w fakeWallet) GenerateChangeAddressForAccount(pool.AccountID, pool.Set) (pool.Receiver, bool) {
	return w.receiver, w.canGen
}

func (w fakeWallet) GetUFVKForAddress(*pool.UnifiedAddress) (pool.UFVK, bool) {
	return w.ufvk, w.hasUFVK
}

// TestScenarioS1TransparentChangeGenerated covers spec.md scenario S1: a
// transparent selector with revealed recipients allowed gets a generated
// transparent change address.
func TestScenarioS1TransparentChangeGenerated(t *testing.T) {
	wallet := fakeWallet{canGen: true, receiver: pool.P2PKHReceiver{Hash: [20]byte{9}}}
	selector := pool.TransparentKeyHashSelector{Hash: [20]byte{1}}

	result, err := Plan(selector, wallet, pool.NewSet(pool.Transparent), InputPresence{Transparent: true}, false, policy.AllowFullyTransparent, 1000)
	require.NoError(t, err)
	require.NotNil(t, result.Payment)
	require.Equal(t, pool.Transparent, result.Payment.Pool())
}

func TestSproutSelectorReturnsAddressWithoutPayment(t *testing.T) {
	addr := pool.SproutAddress{Raw: [64]byte{7}}
	selector := pool.SproutAddressSelector{Addr: addr}

	result, err := Plan(selector, fakeWallet{}, pool.NewSet(), InputPresence{}, false, policy.FullPrivacy, 1000)
	require.NoError(t, err)
	require.Nil(t, result.Payment, "no ResolvedPayment should be appended for Sprout change")
	require.Equal(t, pool.ChangeAddress(addr), result.Address)
}

func TestSaplingLegacyAccountReturnsOriginatingAddress(t *testing.T) {
	addr := pool.SaplingReceiver{Raw: [43]byte{3}}
	selector := pool.SaplingAddressSelector{Addr: addr}

	result, err := Plan(selector, fakeWallet{hasAcct: true, account: pool.LegacyAccount}, pool.NewSet(pool.Sapling), InputPresence{Sapling: true}, false, policy.FullPrivacy, 500)
	require.NoError(t, err)
	require.NotNil(t, result.Payment)
	require.Equal(t, pool.Receiver(addr), result.Payment.Receiver, "change should return to the originating Sapling address")
}
