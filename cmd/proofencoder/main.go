// Command proofencoder encodes prover artifacts into the verifier wire
// format, compares encoder outputs against a reference, and inspects
// receipt journals.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	proofencoder "github.com/deaddrop-labs/go-proof-encoder"
	"github.com/deaddrop-labs/go-proof-encoder/compare"
	"github.com/deaddrop-labs/go-proof-encoder/journal"
	"github.com/deaddrop-labs/go-proof-encoder/loaders"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "encode":
		cmd := flag.NewFlagSet("encode", flag.ContinueOnError)
		cmd.SetOutput(stderr)
		var proofPath, publicPath string
		var selftest bool
		cmd.StringVar(&proofPath, "proof", "", "path to proof.json")
		cmd.StringVar(&publicPath, "public", "", "path to public.json")
		cmd.BoolVar(&selftest, "selftest", false, "encode the embedded fixture instead of files")
		if err := cmd.Parse(args[1:]); err != nil {
			return 2
		}

		var loader loaders.ArtifactLoader
		if selftest {
			loader = loaders.EmbeddedLoader{}
		} else {
			if proofPath == "" || publicPath == "" {
				fmt.Fprintln(stderr, "error: -proof and -public are required")
				cmd.Usage()
				return 2
			}
			loader = loaders.FSLoader{ProofPath: proofPath, PublicPath: publicPath}
		}

		artifacts, err := loader.Load()
		if err != nil {
			log.Error().Err(err).Msg("load artifacts")
			return 1
		}
		proofHex, publicHex, err := proofencoder.Encode(artifacts)
		if err != nil {
			log.Error().Err(err).Msg("encode")
			return 1
		}
		fmt.Fprintln(stdout, proofHex)
		fmt.Fprintln(stdout, publicHex)
		return 0

	case "compare":
		cmd := flag.NewFlagSet("compare", flag.ContinueOnError)
		cmd.SetOutput(stderr)
		var ours, reference string
		cmd.StringVar(&ours, "ours", "", "our encoder output (hex string or @file)")
		cmd.StringVar(&reference, "reference", "", "reference encoder output (hex string or @file)")
		if err := cmd.Parse(args[1:]); err != nil {
			return 2
		}
		if ours == "" || reference == "" {
			fmt.Fprintln(stderr, "error: -ours and -reference are required")
			cmd.Usage()
			return 2
		}

		oursHex, err := hexArg(ours)
		if err != nil {
			log.Error().Err(err).Msg("read -ours")
			return 1
		}
		refHex, err := hexArg(reference)
		if err != nil {
			log.Error().Err(err).Msg("read -reference")
			return 1
		}

		report, err := compare.Compare(oursHex, refHex)
		if err != nil {
			log.Error().Err(err).Msg("compare")
			return 1
		}
		fmt.Fprintf(stdout, "ours:      sha256=%x len=%d\n", report.OursDigest, report.OursLen)
		fmt.Fprintf(stdout, "reference: sha256=%x len=%d\n", report.ReferenceDigest, report.ReferenceLen)
		if report.Identical() {
			fmt.Fprintln(stdout, "outputs are identical")
			return 0
		}
		fmt.Fprintf(stdout, "outputs diverge at byte %d\n", report.Divergence)
		return 1

	case "journal":
		cmd := flag.NewFlagSet("journal", flag.ContinueOnError)
		cmd.SetOutput(stderr)
		var in string
		cmd.StringVar(&in, "in", "", "path to the raw 84-byte journal")
		if err := cmd.Parse(args[1:]); err != nil {
			return 2
		}
		if in == "" {
			fmt.Fprintln(stderr, "error: -in is required")
			cmd.Usage()
			return 2
		}

		raw, err := os.ReadFile(in)
		if err != nil {
			log.Error().Err(err).Msg("read journal")
			return 1
		}
		j, err := journal.Decode(raw)
		if err != nil {
			log.Error().Err(err).Msg("decode journal")
			return 1
		}
		digest := j.Digest()
		out := map[string]any{
			"session_id":   j.SessionID,
			"turn":         j.Turn,
			"distance":     j.Distance,
			"x":            j.X,
			"y":            j.Y,
			"commitment_a": hex.EncodeToString(j.CommitmentA[:]),
			"commitment_b": hex.EncodeToString(j.CommitmentB[:]),
			"sha256":       hex.EncodeToString(digest[:]),
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Error().Err(err).Msg("write journal JSON")
			return 1
		}
		return 0

	default:
		usage(stderr)
		return 2
	}
}

// hexArg resolves a hex argument: @path reads the (hex text) file, anything
// else is the hex string itself.
func hexArg(arg string) (string, error) {
	if len(arg) > 1 && arg[0] == '@' {
		b, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", err
		}
		return string(bytes.TrimSpace(b)), nil
	}
	return arg, nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: proofencoder <encode|compare|journal> [flags]")
	fmt.Fprintln(w, "  encode  -proof proof.json -public public.json | -selftest")
	fmt.Fprintln(w, "  compare -ours <hex|@file> -reference <hex|@file>")
	fmt.Fprintln(w, "  journal -in <file>")
}
