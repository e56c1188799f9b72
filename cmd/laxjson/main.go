// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Command laxjson reads a JSON (or near-JSON) document and reports the
// diagnostics a laxjson.Reader collects while parsing it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/containerd/log"
	"github.com/spf13/cobra"

	"github.com/laxjson/laxjson"
	"github.com/laxjson/laxjson/value"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		tolerant     bool
		comments     bool
		storeComms   bool
		caseInsens   bool
		missingClose bool
		multiline    bool
		commentsAft  bool
		noUTF8       bool
		memBuf       bool
		maxErrors    int
		maxDepth     int
		trace        bool
		dump         bool
		format       bool
	)

	cmd := &cobra.Command{
		Use:   "laxjson [file]",
		Short: "Parse a JSON document with tolerant, best-effort recovery",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace {
				if err := log.SetLevel("trace"); err != nil {
					return err
				}
			}
			ctx := log.WithLogger(context.Background(), log.L)

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			r := laxjson.NewReader()
			flags := laxjson.Strict
			if tolerant {
				flags |= laxjson.Tolerant
			}
			if comments {
				flags |= laxjson.AllowComments
			}
			if storeComms {
				flags |= laxjson.StoreComments
			}
			if caseInsens {
				flags |= laxjson.CaseInsensitiveLiterals
			}
			if missingClose {
				flags |= laxjson.TolerateMissingClose
			}
			if multiline {
				flags |= laxjson.MultilineStrings
			}
			if commentsAft {
				flags |= laxjson.CommentsAfter
			}
			if noUTF8 {
				flags |= laxjson.NoUTF8Stream
			}
			if memBuf {
				flags |= laxjson.AllowMemBuf
			}
			r.SetFlags(flags)
			if maxErrors > 0 {
				r.SetMaxErrors(maxErrors)
			}
			if maxDepth > 0 {
				r.SetMaxDepth(maxDepth)
			}

			log.G(ctx).WithField("flags", flags.String()).Trace("parsing with flags")

			root := value.New()
			n, err := r.ParseStream(in, root)
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}

			log.G(ctx).WithField("depth", r.Depth()).WithField("errors", n).Trace("parse complete")
			errs, warns := r.Diagnostics()
			for _, ds := range [][]laxjson.Diagnostic{warns, errs} {
				for _, d := range ds {
					log.G(ctx).WithField("kind", d.Kind.String()).WithField("line", d.Line).WithField("col", d.Col).Trace(d.Message)
				}
			}

			for _, w := range r.Warnings() {
				fmt.Fprintln(os.Stderr, w)
			}
			for _, e := range r.Errors() {
				fmt.Fprintln(os.Stderr, e)
			}
			if dump {
				dumpNode(os.Stdout, root, 0)
			}
			if format {
				if err := value.Format(os.Stdout, root); err != nil {
					return fmt.Errorf("format: %w", err)
				}
				fmt.Fprintln(os.Stdout)
			}
			if n > 0 {
				return fmt.Errorf("%d error(s)", n)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&tolerant, "tolerant", false, "enable the standard tolerant preset")
	flags.BoolVar(&comments, "comments", false, "accept C/C++ style comments")
	flags.BoolVar(&storeComms, "store-comments", false, "attach accepted comments to the values they annotate")
	flags.BoolVar(&caseInsens, "case-insensitive", false, "accept mixed-case null/true/false")
	flags.BoolVar(&missingClose, "missing-close", false, "tolerate a missing or mismatched closing bracket")
	flags.BoolVar(&multiline, "multiline-strings", false, "accept implicit adjacent string concatenation")
	flags.BoolVar(&commentsAft, "comments-after", false, "attach floating comments to the preceding value")
	flags.BoolVar(&noUTF8, "no-utf8", false, "treat stream input as raw bytes instead of UTF-8")
	flags.BoolVar(&memBuf, "membuf", false, "accept single-quoted hex-pair memory buffers")
	flags.IntVar(&maxErrors, "max-errors", 0, "maximum error/warning messages to collect (0 uses the default)")
	flags.IntVar(&maxDepth, "max-depth", 0, "maximum object/array nesting depth (0 uses the default)")
	flags.BoolVar(&trace, "trace", false, "emit structured trace logs while parsing")
	flags.BoolVar(&dump, "dump", false, "print the parsed value tree to stdout")
	flags.BoolVar(&format, "format", false, "re-render the parsed value as indented JSON")

	return cmd
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, func() { f.Close() }, nil
}

func dumpNode(w io.Writer, n *value.Node, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}
	switch n.Kind() {
	case laxjson.Object:
		fmt.Fprintf(w, "%s{\n", prefix)
		for _, m := range n.Members() {
			fmt.Fprintf(w, "%s  %q:\n", prefix, m.Key)
			dumpNode(w, m.Value, indent+2)
		}
		fmt.Fprintf(w, "%s}\n", prefix)
	case laxjson.Array:
		fmt.Fprintf(w, "%s[\n", prefix)
		for _, it := range n.Items() {
			dumpNode(w, it, indent+1)
		}
		fmt.Fprintf(w, "%s]\n", prefix)
	case laxjson.String:
		fmt.Fprintf(w, "%s%q\n", prefix, n.Text())
	case laxjson.MemBuf:
		fmt.Fprintf(w, "%s<%d bytes>\n", prefix, len(n.MemBuf()))
	case laxjson.Bool:
		fmt.Fprintf(w, "%s%v\n", prefix, n.Bool())
	case laxjson.Signed:
		fmt.Fprintf(w, "%s%d\n", prefix, n.Int64())
	case laxjson.Unsigned:
		fmt.Fprintf(w, "%s%d\n", prefix, n.Uint64())
	case laxjson.Double:
		fmt.Fprintf(w, "%s%g\n", prefix, n.Float64())
	case laxjson.Null:
		fmt.Fprintf(w, "%snull\n", prefix)
	default:
		fmt.Fprintf(w, "%s<invalid>\n", prefix)
	}
}
