// Copyright (c) 2026 The shieldedplan developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pool

// Memo is the fixed-length opaque byte string carried by shielded outputs.
type Memo [512]byte

// NoMemo is the canonical "no memo" byte pattern: a leading 0xF6 byte
// followed by zeroes. A missing memo on a Sapling output is encoded this
// way rather than left unset, since the Sapling output format has no
// separate presence bit.
var NoMemo = Memo{0xF6}
