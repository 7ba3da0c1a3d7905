package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/dbof/pkg/dbof"
	"github.com/joshuapare/dbof/pkg/object"
	"github.com/joshuapare/dbof/pkg/stream"
	"github.com/spf13/cobra"
)

var inspectNoHeader bool

func init() {
	cmd := newInspectCmd()
	cmd.Flags().BoolVar(&inspectNoHeader, "no-header", false, "Treat input as headerless DBOF-1 (version 1)")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode a DBOF file and print its object tree",
		Long: `The inspect command decodes a DBOF-encoded file and prints a
human-readable tree of its kinds, values, and hashes.

Example:
  dbofctl inspect sample.dbof
  dbofctl inspect --no-header raw.dbof1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	printVerbose("Reading DBOF stream from %s\n", path)

	r := stream.NewReader(stream.FromIOReader(f), nil)
	if inspectNoHeader {
		r = r.WithVersion(1).WithNoHeader()
	}

	root, err := dbof.Read(r)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if jsonOut {
		return printJSON(describe(root))
	}

	printInfo("%s\n", renderTree(root, 0))
	return nil
}

// describe builds a JSON-friendly summary, recursing into containers.
func describe(o object.Object) map[string]interface{} {
	if o == nil {
		return map[string]interface{}{"kind": "null-reference"}
	}
	out := map[string]interface{}{
		"kind": o.Kind().String(),
		"hash": o.Hash(),
	}
	switch v := o.(type) {
	case *object.SignedByte:
		out["value"] = v.Value
	case *object.UnsignedByte:
		out["value"] = v.Value
	case *object.SignedInteger:
		out["value"] = v.Value
	case *object.UnsignedInteger:
		out["value"] = v.Value
	case *object.SignedLongInteger:
		out["value"] = v.Value
	case *object.UnsignedLongInteger:
		out["value"] = v.Value
	case *object.Boolean:
		out["value"] = v.Value
	case *object.SingleFloat:
		out["value"] = v.Value
	case *object.DoubleFloat:
		out["value"] = v.Value
	case *object.Character:
		out["value"] = string(v.Value)
	case *object.String:
		out["value"] = v.String()
	case *object.TypedArray:
		elems := make([]interface{}, v.Len())
		v.Each(func(i int, e object.Object) { elems[i] = describe(e) })
		out["elementKind"] = v.ElementKind().String()
		out["elements"] = elems
	case *object.UntypedArray:
		elems := make([]interface{}, v.Len())
		v.Each(func(i int, e object.Object) { elems[i] = describe(e) })
		out["elements"] = elems
	case *object.TypedMap:
		entries := make([]map[string]interface{}, 0, v.Size())
		v.Each(func(k, val object.Object) {
			entries = append(entries, map[string]interface{}{"key": describe(k), "value": describe(val)})
		})
		out["keyKind"] = v.KeyKind().String()
		out["valueKind"] = v.ValueKind().String()
		out["entries"] = entries
	case *object.UntypedMap:
		entries := make([]map[string]interface{}, 0, v.Size())
		v.Each(func(k, val object.Object) {
			entries = append(entries, map[string]interface{}{"key": describe(k), "value": describe(val)})
		})
		out["entries"] = entries
	}
	return out
}

func renderTree(o object.Object, depth int) string {
	indent := strings.Repeat("  ", depth)
	if o == nil {
		return indent + "<null reference>"
	}
	var b strings.Builder
	switch v := o.(type) {
	case *object.TypedArray:
		fmt.Fprintf(&b, "%sTypedArray<%s> (len=%d, hash=%d)\n", indent, v.ElementKind(), v.Len(), v.Hash())
		v.Each(func(_ int, e object.Object) {
			b.WriteString(renderTree(e, depth+1))
			b.WriteString("\n")
		})
	case *object.UntypedArray:
		fmt.Fprintf(&b, "%sUntypedArray (len=%d, hash=%d)\n", indent, v.Len(), v.Hash())
		v.Each(func(_ int, e object.Object) {
			b.WriteString(renderTree(e, depth+1))
			b.WriteString("\n")
		})
	case *object.TypedMap:
		fmt.Fprintf(&b, "%sTypedMap<%s,%s> (size=%d, hash=%d)\n", indent, v.KeyKind(), v.ValueKind(), v.Size(), v.Hash())
		v.Each(func(k, val object.Object) {
			fmt.Fprintf(&b, "%s  -\n", indent)
			b.WriteString(renderTree(k, depth+2))
			b.WriteString("\n")
			b.WriteString(renderTree(val, depth+2))
			b.WriteString("\n")
		})
	case *object.UntypedMap:
		fmt.Fprintf(&b, "%sUntypedMap (size=%d, hash=%d)\n", indent, v.Size(), v.Hash())
		v.Each(func(k, val object.Object) {
			fmt.Fprintf(&b, "%s  -\n", indent)
			b.WriteString(renderTree(k, depth+2))
			b.WriteString("\n")
			b.WriteString(renderTree(val, depth+2))
			b.WriteString("\n")
		})
	case *object.String:
		fmt.Fprintf(&b, "%sUtf8String %q (hash=%d)", indent, v.String(), v.Hash())
	default:
		fmt.Fprintf(&b, "%s%s %v (hash=%d)", indent, o.Kind(), scalarValue(o), o.Hash())
	}
	return strings.TrimRight(b.String(), "\n")
}

func scalarValue(o object.Object) interface{} {
	switch v := o.(type) {
	case *object.SignedByte:
		return v.Value
	case *object.UnsignedByte:
		return v.Value
	case *object.SignedInteger:
		return v.Value
	case *object.UnsignedInteger:
		return v.Value
	case *object.SignedLongInteger:
		return v.Value
	case *object.UnsignedLongInteger:
		return v.Value
	case *object.Boolean:
		return v.Value
	case *object.SingleFloat:
		return v.Value
	case *object.DoubleFloat:
		return v.Value
	case *object.Character:
		return fmt.Sprintf("%c (U+%04X)", v.Value, v.Value)
	case *object.Null:
		return nil
	default:
		return "<unsupported>"
	}
}
