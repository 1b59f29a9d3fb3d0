package circuits

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// PoSWTreeLeaves is the arity of the block-header subtree the PoSW circuit
// commits to.
const PoSWTreeLeaves = 8

// PoSWCircuit proves the work behind a block header: the prover knows the
// header subtree leaves and a nonce whose masked Merkle root equals the
// public block root.
type PoSWCircuit struct {
	BlockRoot frontend.Variable `gnark:",public"`

	Nonce  frontend.Variable
	Leaves [PoSWTreeLeaves]frontend.Variable
}

func (c *PoSWCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}

	// fold the leaves pairwise up to the subtree root
	level := make([]frontend.Variable, PoSWTreeLeaves)
	copy(level, c.Leaves[:])
	for len(level) > 1 {
		next := make([]frontend.Variable, len(level)/2)
		for i := range next {
			h.Reset()
			h.Write(level[2*i], level[2*i+1])
			next[i] = h.Sum()
		}
		level = next
	}

	// mask the root with the nonce
	h.Reset()
	h.Write(level[0], c.Nonce)
	api.AssertIsEqual(c.BlockRoot, h.Sum())

	return nil
}
