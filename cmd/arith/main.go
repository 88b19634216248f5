package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/arith"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		ast          bool
		prec         int
	)
	flag.StringVar(&inname, "in", "", "input file (default interactive stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&ast, "ast", false, "print the syntax tree of each expression")
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	ctx := arith.NewContext(arith.Prec(uint(prec)))
	verb += "\n"
	do := func(src string) {
		a, err := arith.Parse(strings.NewReader(src))
		if err != nil {
			fmt.Println("err>", err)
			return
		}
		if ast {
			fmt.Println("ast>")
			fmt.Print(a.Tree())
		}
		r := ctx.Eval(a)
		if r == nil {
			fmt.Println("err>", ctx.Err())
			return
		}
		fmt.Printf("out> "+verb, r)
	}

	switch {
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			do(arg)
		}
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		lines(bufio.NewReader(f), do, false)
	default:
		lines(bufio.NewReader(os.Stdin), do, true)
	}
}

// lines feeds each nonempty input line to do. In interactive mode it prompts
// before each line and stops at a blank line or an exit keyword.
func lines(in *bufio.Reader, do func(string), interactive bool) {
	for {
		if interactive {
			fmt.Print("in> ")
		}
		line, err := in.ReadString('\n')
		s := strings.TrimSpace(line)
		switch {
		case s == "":
			if interactive && err == nil {
				return
			}
		case interactive && (s == "exit" || s == "quit"):
			return
		default:
			do(s)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Fatal(err)
			}
			return
		}
	}
}
