// Package network defines the supported network variants and the parameters
// each one fixes: the proving curve the circuits are compiled over, the hash
// committing to circuit identities, and whether the network supports a
// standalone universal reference string.
package network

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
)

// ID selects a network variant.
type ID int

const (
	Testnet1 ID = iota + 1
	Testnet2
)

// ParseID maps a CLI selector to a network ID.
func ParseID(s string) (ID, error) {
	switch s {
	case "testnet1":
		return Testnet1, nil
	case "testnet2":
		return Testnet2, nil
	default:
		return 0, fmt.Errorf("unknown network %q", s)
	}
}

func (id ID) String() string {
	switch id {
	case Testnet1:
		return "testnet1"
	case Testnet2:
		return "testnet2"
	default:
		return fmt.Sprintf("network(%d)", int(id))
	}
}

// Curve returns the proving curve of the network.
func (id ID) Curve() ecc.ID {
	switch id {
	case Testnet1:
		return ecc.BN254
	case Testnet2:
		return ecc.BLS12_381
	default:
		panic(fmt.Sprintf("unrecognized network %v", id))
	}
}

// SupportsUniversalSetup reports whether the network supports generating a
// standalone universal SRS. Testnet1 pins its universal parameters to
// imported powers-of-tau ceremony output instead (see cmd/ptauimport).
func (id ID) SupportsUniversalSetup() bool {
	return id == Testnet2
}
