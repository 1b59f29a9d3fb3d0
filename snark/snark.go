// Package snark adapts the gnark PLONK backend to the parameter pipeline:
// universal and circuit-specific setups over KZG, and canonical byte
// serialization of the resulting artifacts.
package snark

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	kzg_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"
	kzg_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/kzg"
	"github.com/consensys/gnark-crypto/kzg"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/constraint"
)

// srsSlack is the number of extra SRS elements PLONK needs beyond the gate
// count.
const srsSlack = 5

// MaxDegree returns the reference-string degree bound able to support
// constraint systems with up to a, b, and c terms in their respective
// matrices, rounded up to the next power of two.
func MaxDegree(a, b, c uint64) uint64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return ecc.NextPowerOfTwo(m) + srsSlack
}

// UniversalSetup generates a fresh structured reference string of the given
// degree for curve. The toxic waste is drawn from the process's
// non-deterministic randomness and never persisted; reproducibility comes
// from the checksums over the resulting artifact, not from re-running setup.
func UniversalSetup(maxDegree uint64, curve ecc.ID) (kzg.SRS, error) {
	tau, err := randomScalar(curve)
	if err != nil {
		return nil, fmt.Errorf("error sampling SRS randomness: %v", err)
	}
	switch curve {
	case ecc.BN254:
		return kzg_bn254.NewSRS(maxDegree, tau)
	case ecc.BLS12_381:
		return kzg_bls12381.NewSRS(maxDegree, tau)
	default:
		return nil, fmt.Errorf("unsupported curve: %v", curve)
	}
}

// Setup runs a circuit-specific setup: it sizes a reference string to the
// constraint system and derives the proving and verifying keys.
func Setup(ccs constraint.ConstraintSystem, curve ecc.ID) (plonk.ProvingKey, plonk.VerifyingKey, error) {
	numGates := uint64(ccs.GetNbConstraints() + ccs.GetNbPublicVariables())
	srs, err := UniversalSetup(ecc.NextPowerOfTwo(numGates)+srsSlack, curve)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating SRS: %v", err)
	}
	return plonk.Setup(ccs, srs)
}

// SetupWithSRS derives proving and verifying keys from a previously
// generated reference string, re-read from its canonical bytes.
func SetupWithSRS(ccs constraint.ConstraintSystem, curve ecc.ID, srsBytes []byte) (plonk.ProvingKey, plonk.VerifyingKey, error) {
	srs, err := emptySRS(curve)
	if err != nil {
		return nil, nil, err
	}
	if _, err := srs.ReadFrom(bytes.NewReader(srsBytes)); err != nil {
		return nil, nil, fmt.Errorf("error reading SRS: %v", err)
	}
	return plonk.Setup(ccs, srs)
}

// KeyBytes returns the canonical byte serialization of a key or reference
// string. A serialization failure is fatal to the invocation, not retried.
func KeyBytes(artifact io.WriterTo) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := artifact.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("error serializing artifact: %v", err)
	}
	return buf.Bytes(), nil
}

func emptySRS(curve ecc.ID) (kzg.SRS, error) {
	switch curve {
	case ecc.BN254:
		return &kzg_bn254.SRS{}, nil
	case ecc.BLS12_381:
		return &kzg_bls12381.SRS{}, nil
	default:
		return nil, fmt.Errorf("unsupported curve: %v", curve)
	}
}

// randomScalar samples a uniform non-trivial element of the curve's scalar
// field.
func randomScalar(curve ecc.ID) (*big.Int, error) {
	for {
		tau, err := rand.Int(rand.Reader, curve.ScalarField())
		if err != nil {
			return nil, err
		}
		if tau.Cmp(big.NewInt(1)) > 0 {
			return tau, nil
		}
	}
}
