package main

import (
	"flag"
	"log"
	"os"

	"gobf/bf"
	"gobf/vm"
)

func main() {
	var input string
	var output string

	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: no filename provided", os.Args[0])
	}

	filename := flag.Arg(0)
	source, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("%v: failed to load file: %v", filename, err)
	}

	prog := bf.Lex(string(source))
	err = prog.Resolve()
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	mach := vm.NewMachine(prog)
	mach.Input = os.Stdin
	mach.Output = os.Stdout

	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		mach.Input = inf
	}

	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		mach.Output = ouf
	}

	err = mach.Run()
	if err != nil {
		log.Fatal(err)
	}
}
