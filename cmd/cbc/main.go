package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ipfs/go-cid"

	"xdao.co/cbc/barcode"
	"xdao.co/cbc/cidutil"
	"xdao.co/cbc/compliance"
	"xdao.co/cbc/grpcsvc"
	"xdao.co/cbc/label"
	"xdao.co/cbc/storage"
	"xdao.co/cbc/storage/localfs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "encode":
		return cmdEncode(args[1:], out, errOut)
	case "glyphs":
		return cmdGlyphs(args[1:], out, errOut)
	case "label":
		return cmdLabel(args[1:], out, errOut)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "verify":
		return cmdVerify(args[1:], out, errOut)
	case "put":
		return cmdPut(args[1:], out, errOut)
	case "get":
		return cmdGet(args[1:], out, errOut)
	case "ls":
		return cmdList(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "cbc: Japan Post customer barcode encoder")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cbc encode --postal <code> --address <text> [--format tokens|json|canonical]")
	fmt.Fprintln(w, "  cbc glyphs --postal <code> --address <text> [--out <dir>]")
	fmt.Fprintln(w, "  cbc label --postal <code> --address <text>")
	fmt.Fprintln(w, "  cbc cid <label-file>")
	fmt.Fprintln(w, "  cbc verify [--mode strict|permissive] <label-file>")
	fmt.Fprintln(w, "  cbc put (--store <dir> | --grpc <addr>) (<label-file> | --postal <code> --address <text>)")
	fmt.Fprintln(w, "  cbc get (--store <dir> | --grpc <addr>) <cid>")
	fmt.Fprintln(w, "  cbc ls --store <dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - postal codes keep only ASCII digits and must have exactly 7")
	fmt.Fprintln(w, "  - glyphs prints one base64 GIF per token, or writes NN_<token>.gif files with --out")
	fmt.Fprintln(w, "  - label writes canonical label bytes to stdout (no trailing newline)")
	fmt.Fprintln(w, "  - verify accepts CRLF, BOM and trailing newlines unless --mode strict; cid requires canonical bytes")
}

// inputFlags registers the --postal/--address pair shared by several commands.
type inputFlags struct {
	postal  string
	address string
}

func (f *inputFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.postal, "postal", "", "Postal code (e.g. 263-0023)")
	fs.StringVar(&f.address, "address", "", "Address text")
}

func (f *inputFlags) set() bool { return f.postal != "" || f.address != "" }

func (f *inputFlags) encode(errOut io.Writer) (*barcode.Barcode, bool) {
	b, err := barcode.New(f.postal, f.address)
	if err != nil {
		fmt.Fprintf(errOut, "encode: %v (%s)\n", err, barcode.RuleID(err))
		return nil, false
	}
	return b, true
}

type encodeOutput struct {
	PostalCode       string   `json:"postal_code"`
	Address          string   `json:"address"`
	CanonicalAddress string   `json:"canonical_address"`
	Tokens           []string `json:"tokens"`
	CheckDigit       string   `json:"check_digit"`
}

func cmdEncode(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var in inputFlags
	in.register(fs)
	format := fs.String("format", "tokens", "Output format: tokens, json or canonical")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if in.postal == "" || fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: cbc encode --postal <code> --address <text> [--format tokens|json|canonical]")
		return 2
	}
	b, ok := in.encode(errOut)
	if !ok {
		return 1
	}

	switch *format {
	case "tokens":
		_, _ = fmt.Fprintln(out, b.String())
	case "canonical":
		_, _ = fmt.Fprintln(out, b.CanonicalAddress())
	case "json":
		o := encodeOutput{
			PostalCode:       b.PostalCode(),
			Address:          b.Address(),
			CanonicalAddress: b.CanonicalAddress(),
			CheckDigit:       string(b.CheckDigit()),
		}
		for _, t := range b.Tokens() {
			o.Tokens = append(o.Tokens, string(t))
		}
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(o); err != nil {
			fmt.Fprintf(errOut, "write json: %v\n", err)
			return 1
		}
	default:
		fmt.Fprintf(errOut, "unknown --format %q\n", *format)
		return 2
	}
	return 0
}

func cmdGlyphs(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("glyphs", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var in inputFlags
	in.register(fs)
	dir := fs.String("out", "", "Write one GIF file per token into this directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if in.postal == "" || fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: cbc glyphs --postal <code> --address <text> [--out <dir>]")
		return 2
	}
	b, ok := in.encode(errOut)
	if !ok {
		return 1
	}

	if *dir == "" {
		for _, s := range b.Base64Glyphs() {
			_, _ = fmt.Fprintln(out, s)
		}
		return 0
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		fmt.Fprintf(errOut, "create --out: %v\n", err)
		return 1
	}
	tokens := b.Tokens()
	for i, g := range b.Glyphs() {
		path := filepath.Join(*dir, glyphFileName(i, tokens[i]))
		if err := os.WriteFile(path, g, 0o644); err != nil {
			fmt.Fprintf(errOut, "write %s: %v\n", filepath.Base(path), err)
			return 1
		}
		_, _ = fmt.Fprintln(out, path)
	}
	return 0
}

func glyphFileName(i int, t barcode.Token) string {
	name := string(t)
	if t == barcode.Hyphen {
		name = "HY"
	}
	return fmt.Sprintf("%02d_%s.gif", i, name)
}

func cmdLabel(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("label", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var in inputFlags
	in.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if in.postal == "" || in.address == "" || fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: cbc label --postal <code> --address <text>")
		return 2
	}
	b, ok := in.encode(errOut)
	if !ok {
		return 1
	}
	raw, err := label.Render(b)
	if err != nil {
		fmt.Fprintf(errOut, "render label: %v\n", err)
		return 1
	}
	_, _ = out.Write(raw)
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: cbc cid <label-file>")
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read label: %v\n", err)
		return 1
	}
	id, err := label.CID(b)
	if err != nil {
		fmt.Fprintf(errOut, "invalid label: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, id)
	return 0
}

func cmdVerify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(errOut)
	modeStr := fs.String("mode", "permissive", "Compliance mode: strict or permissive")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: cbc verify [--mode strict|permissive] <label-file>")
		return 2
	}
	mode, err := compliance.ParseMode(*modeStr)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "read label: %v\n", err)
		return 1
	}
	l, err := label.Read(b, mode)
	if err != nil {
		fmt.Fprintf(errOut, "invalid: %v (%s)\n", err, barcode.RuleID(err))
		return 1
	}
	id, err := l.CID()
	if err != nil {
		fmt.Fprintf(errOut, "cid: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(out, "OK %s\n", id)
	return 0
}

// storeFlags selects a local directory or a remote daemon.
type storeFlags struct {
	dir     string
	addr    string
	timeout time.Duration
}

func (f *storeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.dir, "store", "", "LocalFS label store directory")
	fs.StringVar(&f.addr, "grpc", "", "cbc-grpcd address (host:port)")
	fs.DurationVar(&f.timeout, "timeout", 5*time.Second, "Per-RPC timeout for --grpc")
}

func (f *storeFlags) open() (storage.CAS, func() error, error) {
	switch {
	case f.dir != "" && f.addr != "":
		return nil, nil, errors.New("use only one of --store and --grpc")
	case f.dir != "":
		cas, err := localfs.New(f.dir)
		return cas, nil, err
	case f.addr != "":
		c, err := grpcsvc.Dial(f.addr, grpcsvc.DialOptions{Timeout: f.timeout})
		if err != nil {
			return nil, nil, err
		}
		c.Timeout = f.timeout
		return c, c.Close, nil
	default:
		return nil, nil, errors.New("one of --store or --grpc is required")
	}
}

func cmdPut(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("put", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var sf storeFlags
	sf.register(fs)
	var in inputFlags
	in.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if in.set() == (fs.NArg() == 1) || fs.NArg() > 1 {
		fmt.Fprintln(errOut, "usage: cbc put (--store <dir> | --grpc <addr>) (<label-file> | --postal <code> --address <text>)")
		return 2
	}

	cas, closeFn, err := sf.open()
	if err != nil {
		fmt.Fprintf(errOut, "open store: %v\n", err)
		return 2
	}
	if closeFn != nil {
		defer closeFn()
	}
	store := storage.LabelStore{CAS: cas}

	var id cid.Cid
	if in.set() {
		b, ok := in.encode(errOut)
		if !ok {
			return 1
		}
		id, err = store.PutLabel(b)
	} else {
		var raw []byte
		raw, err = os.ReadFile(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(errOut, "read label: %v\n", err)
			return 1
		}
		id, err = store.PutRaw(raw)
	}
	if err != nil {
		fmt.Fprintf(errOut, "put: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, id)
	return 0
}

func cmdGet(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var sf storeFlags
	sf.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: cbc get (--store <dir> | --grpc <addr>) <cid>")
		return 2
	}
	id, err := cidutil.Parse(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "invalid cid: %v\n", err)
		return 2
	}

	cas, closeFn, err := sf.open()
	if err != nil {
		fmt.Fprintf(errOut, "open store: %v\n", err)
		return 2
	}
	if closeFn != nil {
		defer closeFn()
	}
	l, err := storage.LabelStore{CAS: cas}.GetLabel(id)
	if err != nil {
		fmt.Fprintf(errOut, "get: %v\n", err)
		return 1
	}
	_, _ = out.Write(l.Raw)
	return 0
}

func cmdList(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(errOut)
	dir := fs.String("store", "", "LocalFS label store directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *dir == "" || fs.NArg() != 0 {
		fmt.Fprintln(errOut, "usage: cbc ls --store <dir>")
		return 2
	}
	cas, err := localfs.New(*dir)
	if err != nil {
		fmt.Fprintf(errOut, "open store: %v\n", err)
		return 2
	}
	ids, err := cas.List()
	if err != nil {
		fmt.Fprintf(errOut, "list: %v\n", err)
		return 1
	}
	for _, id := range ids {
		_, _ = fmt.Fprintln(out, id)
	}
	return 0
}
