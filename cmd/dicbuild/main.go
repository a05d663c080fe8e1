package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"dicbrowse/internal/store/sqlite"
)

func main() {
	var inPath, outPath string
	flag.StringVar(&inPath, "in", "", "Tab-separated word list to read (default stdin)")
	flag.StringVar(&outPath, "out", "", "Dictionary database to write")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: dicbuild -out <file.db> [-in <words.tsv>]")
		os.Exit(2)
	}

	if err := run(inPath, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string) error {
	var in io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	entries, err := sqlite.ParseTSV(in)
	if err != nil {
		return err
	}
	if err := sqlite.Build(outPath, entries); err != nil {
		return err
	}
	fmt.Printf("Wrote %d words to %s\n", len(entries), outPath)
	return nil
}
