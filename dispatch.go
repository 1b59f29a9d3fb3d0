package paramgen

import (
	"fmt"
	"os"

	"github.com/dpcnet/paramgen/network"
)

const usage = `usage: paramgen [parameter] [network]
  parameter: universal | inner | input | output | value_check | posw
  network:   testnet1 | testnet2`

// Dispatch parses the two selector tokens and runs the matching setup.
// Fewer than two tokens prints the usage diagnostic and does nothing, by
// policy a no-op rather than an error. Unrecognized selectors and
// unsupported kind/network combinations are reported as errors.
func Dispatch(args []string) error {
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Invalid number of arguments. Given: %d - Required: 2\n%s\n",
			len(args), usage)
		return nil
	}
	kind, err := ParseKind(args[0])
	if err != nil {
		return err
	}
	net, err := network.ParseID(args[1])
	if err != nil {
		return err
	}
	return Generate(kind, net)
}
