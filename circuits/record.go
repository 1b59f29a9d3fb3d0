package circuits

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// InnerCircuit binds a state transition to its records: it proves that the
// prover owns the secret key behind the old record commitment, that the
// public serial number is correctly derived from that key, and that the new
// record commitment opens over the same transition.
type InnerCircuit struct {
	SerialNumber        frontend.Variable `gnark:",public"`
	OldRecordCommitment frontend.Variable `gnark:",public"`
	NewRecordCommitment frontend.Variable `gnark:",public"`

	SecretKey     frontend.Variable
	OldPayload    frontend.Variable
	OldRandomness frontend.Variable
	NewPayload    frontend.Variable
	NewRandomness frontend.Variable
}

func (c *InnerCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}

	// old commitment opens under the prover's secret key
	h.Write(c.SecretKey, c.OldPayload, c.OldRandomness)
	api.AssertIsEqual(c.OldRecordCommitment, h.Sum())

	// serial number is a deterministic function of key and old commitment
	h.Reset()
	h.Write(c.SecretKey, c.OldRecordCommitment)
	api.AssertIsEqual(c.SerialNumber, h.Sum())

	// new commitment opens over the new payload
	h.Reset()
	h.Write(c.SecretKey, c.NewPayload, c.NewRandomness)
	api.AssertIsEqual(c.NewRecordCommitment, h.Sum())

	return nil
}

// InputCircuit proves that a consumed record exists behind a public
// commitment and that its serial number, revealed on consumption, is the one
// derived from the record's secret key.
type InputCircuit struct {
	RecordCommitment frontend.Variable `gnark:",public"`
	SerialNumber     frontend.Variable `gnark:",public"`

	SecretKey  frontend.Variable
	Value      frontend.Variable
	Payload    frontend.Variable
	Randomness frontend.Variable
}

func (c *InputCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}

	assertValueInRange(api, c.Value)

	h.Write(c.SecretKey, c.Value, c.Payload, c.Randomness)
	api.AssertIsEqual(c.RecordCommitment, h.Sum())

	h.Reset()
	h.Write(c.SecretKey, c.RecordCommitment)
	api.AssertIsEqual(c.SerialNumber, h.Sum())

	return nil
}

// OutputCircuit proves that a created record's public commitment opens to a
// well-formed record addressed to the recipient's public key.
type OutputCircuit struct {
	RecordCommitment frontend.Variable `gnark:",public"`

	RecipientKey frontend.Variable
	Value        frontend.Variable
	Payload      frontend.Variable
	Randomness   frontend.Variable
}

func (c *OutputCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}

	assertValueInRange(api, c.Value)

	h.Write(c.RecipientKey, c.Value, c.Payload, c.Randomness)
	api.AssertIsEqual(c.RecordCommitment, h.Sum())

	return nil
}
