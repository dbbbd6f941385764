// Copyright 2024, Santiago von Straussburg

package main

import (
	"flag"
	"fmt"
	"io"
	"iter"
	"log"
	"os"

	"github.com/svonstrauss/mipsdis/disasm"
	"github.com/svonstrauss/mipsdis/internal"
	"github.com/svonstrauss/mipsdis/lines"
)

func main() {
	var input string
	var output string
	var profile string
	var strict bool
	var verbose bool

	flag.StringVar(&input, "i", "", "Binary text input ('-' for stdin)")
	flag.StringVar(&output, "o", "-", "Disassembly output ('-' for stdout)")
	flag.StringVar(&profile, "c", "", ".star profile overriding base/data/terminator")
	flag.BoolVar(&strict, "strict", false, "Abort on malformed input lines")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	config := disasm.DefaultConfig()
	if len(profile) != 0 {
		var err error
		config, err = disasm.LoadConfig(profile)
		if err != nil {
			log.Fatalf("%v: %v", profile, err)
		}
	}

	// Extra positional arguments are further inputs, decoded as one
	// continuous stream.
	inputs := flag.Args()
	if len(input) != 0 {
		inputs = append([]string{input}, inputs...)
	}

	if len(inputs) == 0 {
		chosen, name, err := interactive(os.Stdin, os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
		inputs = []string{chosen}
		output = name
	}

	var seqs []iter.Seq[lines.Line]
	for _, name := range inputs {
		reader := io.Reader(os.Stdin)
		if name != "-" {
			inf, err := os.Open(name)
			if err != nil {
				log.Fatalf("%v: %v", name, err)
			}
			defer inf.Close()
			reader = inf
		}
		seqs = append(seqs, lines.Scan(reader))
	}

	out := io.Writer(os.Stdout)
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	dis := disasm.New(config)
	dis.Verbose = verbose
	writer := &lines.Writer{Output: out}

	count := 0
	for line := range internal.IterSeqConcat(seqs...) {
		if line.Err != nil {
			if strict {
				log.Fatal(line.Err)
			}
			log.Printf("mipsdis: %v", line.Err)
			continue
		}

		rec := dis.Step(line.Word)
		err := writer.WriteLine(rec.String())
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		count++
	}

	err := writer.Flush()
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	fmt.Fprintf(os.Stderr, "%d words processed -> %v\n", count, output)
}
