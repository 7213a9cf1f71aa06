// cbc_vector_gen prints conformance vector lines for postal/address pairs.
//
// Input is tab-separated "postal<TAB>address" per line (blank lines and lines
// starting with '#' are skipped); output appends the encoded tokens as a third
// column, in the format of testdata/conformance/cbc/*.tsv.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"xdao.co/cbc/barcode"
)

func main() {
	in := io.Reader(os.Stdin)
	if len(os.Args) == 2 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "open: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	} else if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "usage: cbc_vector_gen [pairs.tsv]")
		os.Exit(2)
	}

	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			fmt.Fprintf(os.Stderr, "line %d: want postal<TAB>address\n", lineNo)
			os.Exit(1)
		}
		b, err := barcode.New(cols[0], cols[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\t%s\n", cols[0], cols[1], b.String())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}
}
