package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"syscall"

	"github.com/unixdj/dm"
	"github.com/unixdj/dm/placement"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	fn     string // output filename
	pretty bool   // human-readable output
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "ECC200 placement map generator\nUsage: ",
		cl.UsageLine(), `
Prints which codeword and bit occupies each module of the data region
of a Data Matrix symbol.  The region is given either as its row and
column counts, or as a symbol size such as "12x12" or "8x32", whose
data region is used.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`dmplace version 0.1.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{"ref", "pretty"}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.SetParameters("rows cols | size")
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.fn, "output", 'o',
		`output file, or "-" for standard output`, "file")
	ff := getopt.Enum('t', formats, "",
		`output format: "ref" matches the output of the ISO/IEC `+
			`16022 Annex F reference program, "pretty" prints `+
			`an aligned table; if no -o is given and standard `+
			`output is a TTY, default is pretty, otherwise ref`,
		"type")

	getopt.Parse()
	if g.fn == "-" {
		g.fn = ""
	}
	if *ff == "" {
		if g.fn == "" && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "pretty"
		} else {
			*ff = "ref"
		}
	}
	g.pretty = *ff == "pretty"
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var rows, cols int
	switch args := getopt.Args(); len(args) {
	case 1:
		s, err := dm.ParseSize(args[0])
		if err != nil {
			log.Fatalln(err)
		}
		rows, cols = s.Region()
	case 2:
		var err error
		if rows, err = strconv.Atoi(args[0]); err != nil {
			log.Fatalf("%q: bad row count", args[0])
		}
		if cols, err = strconv.Atoi(args[1]); err != nil {
			log.Fatalf("%q: bad column count", args[1])
		}
	default:
		printUsage(os.Stdout)
		return
	}

	grid, err := placement.New(rows, cols)
	if err != nil {
		// the reference program prints nothing for invalid
		// dimensions
		return
	}

	var f = os.Stdout
	if g.fn != "" {
		if f, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	w := bufio.NewWriter(f)
	if g.pretty {
		writePretty(w, grid)
	} else {
		writeRef(w, grid)
	}
	if err = w.Flush(); err == nil && g.fn != "" {
		err = f.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// writeRef writes the map in the format of the Annex F reference
// program: each module as "(codeword,bit), ", the fixed pattern as
// (0,1) and uncovered modules as (0,0).
func writeRef(w *bufio.Writer, grid *placement.Grid) {
	w.WriteByte('\n')
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			p := grid.At(row, col)
			fmt.Fprintf(w, "(%d,%d), ", p.Codeword(), p.Bit())
		}
		w.WriteByte('\n')
	}
}

// writePretty writes the map as an aligned table, the fixed pattern
// as "##" and uncovered modules as "..".
func writePretty(w *bufio.Writer, grid *placement.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			switch p := grid.At(row, col); {
			case p == placement.Fixed:
				w.WriteString("     ##")
			case p == 0:
				w.WriteString("     ..")
			default:
				fmt.Fprintf(w, "%5d.%d", p.Codeword(), p.Bit())
			}
		}
		w.WriteByte('\n')
	}
}
