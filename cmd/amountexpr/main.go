package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/moneyfield/amountexpr"
)

func main() {
	log.SetFlags(0)
	var inname string
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.Parse()

	ok := true
	eval := func(s string) {
		r := amountexpr.Eval(s)
		if !r.Ok() {
			log.Printf("%s: %v", r.Expression, r.Err)
			ok = false
			return
		}
		fmt.Println(amountexpr.FormatAmount(r.Value))
	}

	for _, arg := range flag.Args() {
		eval(arg)
	}
	if flag.NArg() == 0 || inname != "" {
		f, err := infile(inname)
		if err != nil {
			log.Fatal(err)
		}
		if f != os.Stdin {
			defer f.Close()
		}
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) == "" {
				continue
			}
			eval(sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}
	if !ok {
		os.Exit(1)
	}
}

func infile(inname string) (*os.File, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}
