// Package paramgen generates the proving-system parameter artifacts for the
// ledger circuits: it runs the setup for a parameter kind on a network,
// checksums the serialized keys, emits a JSON manifest, and persists a
// distribution-ready proving artifact next to a local verifying artifact.
package paramgen

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/rs/zerolog"

	"github.com/dpcnet/paramgen/artifact"
	"github.com/dpcnet/paramgen/circuits"
	"github.com/dpcnet/paramgen/network"
	"github.com/dpcnet/paramgen/snark"
)

// Progress goes to stderr; stdout is reserved for the metadata manifest.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// Kind names a parameter set the pipeline can generate.
type Kind int

const (
	Universal Kind = iota + 1
	Inner
	Input
	Output
	ValueCheck
	PoSW
)

// ParseKind maps a CLI selector to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "universal":
		return Universal, nil
	case "inner":
		return Inner, nil
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	case "value_check":
		return ValueCheck, nil
	case "posw":
		return PoSW, nil
	default:
		return 0, fmt.Errorf("unknown parameter kind %q", s)
	}
}

func (k Kind) String() string {
	switch k {
	case Universal:
		return "universal"
	case Inner:
		return "inner"
	case Input:
		return "input"
	case Output:
		return "output"
	case ValueCheck:
		return "value_check"
	case PoSW:
		return "posw"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Backend is the proving-system capability the pipeline drives. The
// production implementation wraps gnark PLONK; tests substitute a stub
// returning fixed artifacts.
type Backend interface {
	// UniversalSetup generates a structured reference string of the given
	// degree.
	UniversalSetup(maxDegree uint64, curve ecc.ID) (io.WriterTo, error)

	// Setup runs a circuit-specific setup and returns the proving and
	// verifying keys.
	Setup(ccs constraint.ConstraintSystem, curve ecc.ID) (pk, vk io.WriterTo, err error)

	// SetupWithSRS runs a setup consuming a previously generated reference
	// string.
	SetupWithSRS(ccs constraint.ConstraintSystem, curve ecc.ID, srs []byte) (pk, vk io.WriterTo, err error)
}

// plonkBackend is the gnark-backed Backend used outside of tests.
type plonkBackend struct{}

func (plonkBackend) UniversalSetup(maxDegree uint64, curve ecc.ID) (io.WriterTo, error) {
	return snark.UniversalSetup(maxDegree, curve)
}

func (plonkBackend) Setup(ccs constraint.ConstraintSystem, curve ecc.ID) (io.WriterTo, io.WriterTo, error) {
	return snark.Setup(ccs, curve)
}

func (plonkBackend) SetupWithSRS(ccs constraint.ConstraintSystem, curve ecc.ID, srs []byte) (io.WriterTo, io.WriterTo, error) {
	return snark.SetupWithSRS(ccs, curve, srs)
}

// Degree bounds for the polynomial-commitment scheme. The universal SRS must
// support the largest circuits the ledger programs can compile to; posw's
// reference string only covers its own circuit.
var (
	universalDegrees = [3]uint64{2_000_000, 4_000_000, 8_000_000}
	poswDegrees      = [3]uint64{40_000, 40_000, 60_000}
)

// kindConfig is the per-kind record driving the generic pipeline: the output
// name triple, the blank descriptor, and which setup path runs.
type kindConfig struct {
	metadataName  string
	provingName   string
	verifyingName string
	srsName       string
	blank         func() frontend.Circuit
	identity      bool
	degrees       [3]uint64
}

var kinds = map[Kind]kindConfig{
	Universal: {
		metadataName: "universal.metadata",
		srsName:      "universal.srs",
		degrees:      universalDegrees,
	},
	Inner: {
		metadataName:  "inner.metadata",
		provingName:   "inner.proving",
		verifyingName: "inner.verifying",
		blank:         func() frontend.Circuit { return &circuits.InnerCircuit{} },
		identity:      true,
	},
	Input: {
		metadataName:  "input.metadata",
		provingName:   "input.proving",
		verifyingName: "input.verifying",
		blank:         func() frontend.Circuit { return &circuits.InputCircuit{} },
		identity:      true,
	},
	Output: {
		metadataName:  "output.metadata",
		provingName:   "output.proving",
		verifyingName: "output.verifying",
		blank:         func() frontend.Circuit { return &circuits.OutputCircuit{} },
		identity:      true,
	},
	ValueCheck: {
		metadataName:  "value_check.metadata",
		provingName:   "value_check.proving",
		verifyingName: "value_check.verifying",
		blank:         func() frontend.Circuit { return &circuits.ValueCheckCircuit{} },
		identity:      true,
	},
	PoSW: {
		metadataName:  "posw.metadata",
		provingName:   "posw.proving",
		verifyingName: "posw.verifying",
		blank:         func() frontend.Circuit { return &circuits.PoSWCircuit{} },
		degrees:       poswDegrees,
	},
}

// Generate runs the parameter pipeline for kind on net, writing the key
// artifacts and the metadata manifest to the working directory. Any failure
// aborts the invocation; partially written files are not cleaned up.
func Generate(kind Kind, net network.ID) error {
	return generate(plonkBackend{}, kind, net)
}

func generate(b Backend, kind Kind, net network.ID) error {
	cfg, ok := kinds[kind]
	if !ok {
		return fmt.Errorf("unknown parameter kind %v", kind)
	}
	switch kind {
	case Universal:
		return generateUniversal(b, cfg, net)
	case PoSW:
		return generateTwoPhase(b, cfg, kind, net)
	default:
		return generateCircuit(b, cfg, kind, net)
	}
}

// generateUniversal produces the circuit-independent reference string.
func generateUniversal(b Backend, cfg kindConfig, net network.ID) error {
	if !net.SupportsUniversalSetup() {
		return fmt.Errorf("%v does not support a universal SRS", net)
	}

	maxDegree := snark.MaxDegree(cfg.degrees[0], cfg.degrees[1], cfg.degrees[2])
	log.Info().Uint64("max_degree", maxDegree).Stringer("network", net).
		Msg("running universal setup")

	srs, err := b.UniversalSetup(maxDegree, net.Curve())
	if err != nil {
		return fmt.Errorf("universal setup failed: %w", err)
	}
	srsBytes, err := snark.KeyBytes(srs)
	if err != nil {
		return err
	}

	srsChecksum := artifact.Checksum(srsBytes)
	meta := &artifact.Metadata{
		SRSChecksum: srsChecksum,
		SRSSize:     len(srsBytes),
	}
	if err := emit(cfg.metadataName, meta); err != nil {
		return err
	}
	return artifact.WriteRemote(cfg.srsName, srsChecksum, srsBytes)
}

// generateCircuit produces proving/verifying keys for a circuit-specific
// kind, deriving the circuit identity from the structured verifying key
// before it is reduced to bytes.
func generateCircuit(b Backend, cfg kindConfig, kind Kind, net network.ID) error {
	log.Info().Stringer("kind", kind).Stringer("network", net).
		Msg("compiling blank circuit")
	ccs, err := circuits.Compile(cfg.blank(), net.Curve())
	if err != nil {
		return fmt.Errorf("error compiling blank %v circuit: %v", kind, err)
	}

	log.Info().Int("constraints", ccs.GetNbConstraints()).Msg("running setup")
	pk, vk, err := b.Setup(ccs, net.Curve())
	if err != nil {
		return fmt.Errorf("%v setup failed: %w", kind, err)
	}

	var circuitID string
	if cfg.identity {
		circuitID, err = net.CircuitID(vk)
		if err != nil {
			return fmt.Errorf("error deriving %v circuit id: %v", kind, err)
		}
	}

	return persistKeys(cfg, pk, vk, circuitID)
}

// generateTwoPhase produces posw's keys: a kind-specific reference string is
// generated first, then a second setup consumes it.
func generateTwoPhase(b Backend, cfg kindConfig, kind Kind, net network.ID) error {
	maxDegree := snark.MaxDegree(cfg.degrees[0], cfg.degrees[1], cfg.degrees[2])
	log.Info().Uint64("max_degree", maxDegree).Stringer("network", net).
		Msg("generating posw reference string")

	srs, err := b.UniversalSetup(maxDegree, net.Curve())
	if err != nil {
		return fmt.Errorf("posw reference string setup failed: %w", err)
	}
	srsBytes, err := snark.KeyBytes(srs)
	if err != nil {
		return err
	}
	log.Info().Int("srs_size", len(srsBytes)).Msg("reference string generated")

	ccs, err := circuits.Compile(cfg.blank(), net.Curve())
	if err != nil {
		return fmt.Errorf("error compiling blank %v circuit: %v", kind, err)
	}

	pk, vk, err := b.SetupWithSRS(ccs, net.Curve(), srsBytes)
	if err != nil {
		return fmt.Errorf("%v setup failed: %w", kind, err)
	}

	return persistKeys(cfg, pk, vk, "")
}

// persistKeys checksums the serialized keys, emits the manifest, and writes
// the proving artifact under its distribution name and the verifying
// artifact under its local name. Proving keys are large and fetched by
// checksum-pinned name; verifying keys ship alongside the consuming binary.
func persistKeys(cfg kindConfig, pk, vk io.WriterTo, circuitID string) error {
	pkBytes, err := snark.KeyBytes(pk)
	if err != nil {
		return err
	}
	vkBytes, err := snark.KeyBytes(vk)
	if err != nil {
		return err
	}

	provingChecksum := artifact.Checksum(pkBytes)
	meta := &artifact.Metadata{
		ProvingChecksum:   provingChecksum,
		ProvingSize:       len(pkBytes),
		VerifyingChecksum: artifact.Checksum(vkBytes),
		VerifyingSize:     len(vkBytes),
		CircuitID:         circuitID,
	}
	if err := emit(cfg.metadataName, meta); err != nil {
		return err
	}
	if err := artifact.WriteRemote(cfg.provingName, provingChecksum, pkBytes); err != nil {
		return err
	}
	return artifact.WriteLocal(cfg.verifyingName, vkBytes)
}

// emit prints the manifest to stdout and persists it to name. The printed
// and persisted forms are byte-identical, so the operator summary stands on
// its own even if the file write fails.
func emit(name string, m *artifact.Metadata) error {
	data, err := m.MarshalPretty()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return artifact.WriteMetadata(name, m)
}
