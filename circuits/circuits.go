// Package circuits defines the blank circuit descriptors the parameter
// pipeline runs setups against: uninstantiated constraint systems, one per
// parameter kind, sufficient to derive keys without witness data.
//
// All circuits hash with MiMC, which is zk-SNARK friendly and keeps the
// constraint systems small on both supported curves.
package circuits

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
)

// Compile builds the sparse constraint system for a blank circuit over the
// scalar field of curve.
func Compile(circuit frontend.Circuit, curve ecc.ID) (constraint.ConstraintSystem, error) {
	ccs, err := frontend.Compile(curve.ScalarField(), scs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("error compiling circuit: %v", err)
	}
	return ccs, nil
}
