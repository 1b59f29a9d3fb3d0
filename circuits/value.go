package circuits

import (
	"math"

	"github.com/consensys/gnark/frontend"
	"github.com/holiman/uint256"
)

// Records consumed and created by a single transition.
const (
	InputRecords  = 2
	OutputRecords = 2
)

// maxRecordValue bounds every record value to the 64-bit monetary range.
var maxRecordValue = uint256.NewInt(math.MaxUint64)

// ValueCheckCircuit proves value balance for a transition: the consumed
// record values cover the created record values plus the public fee, with
// every value inside the monetary range.
type ValueCheckCircuit struct {
	Fee frontend.Variable `gnark:",public"`

	InputValues  [InputRecords]frontend.Variable
	OutputValues [OutputRecords]frontend.Variable
}

func (c *ValueCheckCircuit) Define(api frontend.API) error {
	bound := maxRecordValue.ToBig()

	consumed := frontend.Variable(0)
	for _, v := range c.InputValues {
		assertValueInRange(api, v)
		consumed = api.Add(consumed, v)
	}

	created := c.Fee
	for _, v := range c.OutputValues {
		assertValueInRange(api, v)
		created = api.Add(created, v)
	}

	api.AssertIsLessOrEqual(c.Fee, bound)
	api.AssertIsEqual(consumed, created)

	return nil
}

// assertValueInRange constrains a record value to the monetary range.
func assertValueInRange(api frontend.API, v frontend.Variable) {
	api.AssertIsLessOrEqual(v, maxRecordValue.ToBig())
}
