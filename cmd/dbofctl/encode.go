package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joshuapare/dbof/pkg/dbof"
	"github.com/joshuapare/dbof/pkg/object"
	"github.com/joshuapare/dbof/pkg/stream"
	"github.com/spf13/cobra"
)

var (
	encodeKind      string
	encodeOut       string
	encodeNoHeader  bool
	encodeVersion16 uint16
)

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().StringVar(&encodeKind, "kind", "", "Scalar kind to encode (signed-integer, unsigned-integer, signed-long, unsigned-long, signed-byte, unsigned-byte, boolean, single-float, double-float, character, string, null)")
	cmd.Flags().StringVar(&encodeOut, "out", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&encodeNoHeader, "no-header", false, "Omit the magic+version header")
	cmd.Flags().Uint16Var(&encodeVersion16, "version", 0, "Force a specific format version (0 = DefaultVersion)")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <value>",
		Short: "Encode a single scalar value to a DBOF stream",
		Long: `The encode command builds one scalar DBOF object from a kind/value
pair and writes its DBOF-1 encoding. It covers the twelve value kinds only;
building containers is left to callers composing the pkg/object and
pkg/dbof APIs directly.

Example:
  dbofctl encode --kind signed-integer 42
  dbofctl encode --kind string "hello" --out greeting.dbof
  dbofctl encode --kind boolean true --no-header --version 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0])
		},
	}
}

func runEncode(raw string) error {
	o, err := scalarFromFlag(encodeKind, raw)
	if err != nil {
		return err
	}

	out := os.Stdout
	if encodeOut != "" {
		f, err := os.Create(encodeOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", encodeOut, err)
		}
		defer f.Close()
		out = f
	}

	w := stream.NewWriter(stream.FromIOWriter(out), nil)
	if encodeNoHeader {
		w = w.WithNoHeader()
	}
	if encodeVersion16 != 0 {
		w = w.WithVersion(encodeVersion16)
	}

	if err := dbof.Write(w, o); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if encodeOut != "" {
		printVerbose("Wrote %s (%s)\n", encodeOut, o.Kind())
	}
	return nil
}

func scalarFromFlag(kindName, raw string) (object.Object, error) {
	switch kindName {
	case "null":
		return &object.Null{}, nil
	case "signed-byte":
		v, err := strconv.ParseInt(raw, 10, 8)
		return object.NewSignedByte(int8(v)), wrapParseErr(err, kindName)
	case "unsigned-byte":
		v, err := strconv.ParseUint(raw, 10, 8)
		return object.NewUnsignedByte(uint8(v)), wrapParseErr(err, kindName)
	case "signed-integer":
		v, err := strconv.ParseInt(raw, 10, 32)
		return object.NewSignedInteger(int32(v)), wrapParseErr(err, kindName)
	case "unsigned-integer":
		v, err := strconv.ParseUint(raw, 10, 32)
		return object.NewUnsignedInteger(uint32(v)), wrapParseErr(err, kindName)
	case "signed-long":
		v, err := strconv.ParseInt(raw, 10, 64)
		return object.NewSignedLongInteger(v), wrapParseErr(err, kindName)
	case "unsigned-long":
		v, err := strconv.ParseUint(raw, 10, 64)
		return object.NewUnsignedLongInteger(v), wrapParseErr(err, kindName)
	case "boolean":
		v, err := strconv.ParseBool(raw)
		return object.NewBoolean(v), wrapParseErr(err, kindName)
	case "single-float":
		v, err := strconv.ParseFloat(raw, 32)
		return object.NewSingleFloat(float32(v)), wrapParseErr(err, kindName)
	case "double-float":
		v, err := strconv.ParseFloat(raw, 64)
		return object.NewDoubleFloat(v), wrapParseErr(err, kindName)
	case "character":
		runes := []rune(raw)
		if len(runes) != 1 {
			return nil, fmt.Errorf("--kind character requires exactly one codepoint, got %q", raw)
		}
		return object.NewCharacterStrict(runes[0])
	case "string":
		return object.NewString([]byte(raw)), nil
	case "":
		return nil, fmt.Errorf("--kind is required")
	default:
		return nil, fmt.Errorf("unknown --kind %q", kindName)
	}
}

func wrapParseErr(err error, kindName string) error {
	if err != nil {
		return fmt.Errorf("parsing value for --kind %s: %w", kindName, err)
	}
	return nil
}
