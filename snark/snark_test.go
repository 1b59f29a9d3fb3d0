package snark

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/scs"
)

// squareCircuit proves knowledge of a root of a public square.
type squareCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (c *squareCircuit) Define(api frontend.API) error {
	api.AssertIsEqual(api.Mul(c.X, c.X), c.Y)
	return nil
}

func TestMaxDegree(t *testing.T) {
	tests := []struct {
		a, b, c uint64
		want    uint64
	}{
		{1, 2, 3, 4 + srsSlack},
		{40000, 40000, 60000, 65536 + srsSlack},
		{2000000, 4000000, 8000000, 8388608 + srsSlack},
	}
	for _, tt := range tests {
		if got := MaxDegree(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("MaxDegree(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestSetup(t *testing.T) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &squareCircuit{})
	if err != nil {
		t.Fatalf("unexpected error compiling circuit: %v", err)
	}
	pk, vk, err := Setup(ccs, ecc.BN254)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pkBytes, err := KeyBytes(pk)
	if err != nil {
		t.Fatalf("unexpected error serializing proving key: %v", err)
	}
	vkBytes, err := KeyBytes(vk)
	if err != nil {
		t.Fatalf("unexpected error serializing verifying key: %v", err)
	}
	if len(pkBytes) == 0 || len(vkBytes) == 0 {
		t.Errorf("empty key serialization: pk %d bytes, vk %d bytes", len(pkBytes), len(vkBytes))
	}
	if len(pkBytes) <= len(vkBytes) {
		t.Errorf("expected proving key (%d bytes) to dominate verifying key (%d bytes)",
			len(pkBytes), len(vkBytes))
	}
}

func TestSetupWithSRS(t *testing.T) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &squareCircuit{})
	if err != nil {
		t.Fatalf("unexpected error compiling circuit: %v", err)
	}

	numGates := uint64(ccs.GetNbConstraints() + ccs.GetNbPublicVariables())
	srs, err := UniversalSetup(ecc.NextPowerOfTwo(numGates)+srsSlack, ecc.BN254)
	if err != nil {
		t.Fatalf("unexpected error generating SRS: %v", err)
	}
	srsBytes, err := KeyBytes(srs)
	if err != nil {
		t.Fatalf("unexpected error serializing SRS: %v", err)
	}

	pk, vk, err := SetupWithSRS(ccs, ecc.BN254, srsBytes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pk == nil || vk == nil {
		t.Error("expected non-nil keys from SRS-fed setup")
	}
}

func TestSetupWithSRSRejectsGarbage(t *testing.T) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), scs.NewBuilder, &squareCircuit{})
	if err != nil {
		t.Fatalf("unexpected error compiling circuit: %v", err)
	}
	if _, _, err := SetupWithSRS(ccs, ecc.BN254, []byte("not an srs")); err == nil {
		t.Error("expected an error for malformed SRS bytes")
	}
}

func TestUniversalSetupUnsupportedCurve(t *testing.T) {
	if _, err := UniversalSetup(16, ecc.BW6_761); err == nil {
		t.Error("expected an error for unsupported curve")
	}
}
