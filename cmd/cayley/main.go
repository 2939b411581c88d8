// Command cayley prints the multiplication table of the basis blades of the
// Euclidean geometric algebra of dimension n.
//
// Rows are left factors and columns right factors; blades are ordered by
// grade. With -reverse and -dual the reverse and the dual of every blade are
// listed after the table. With -expand the products of two general symbolic
// vectors a and b are printed instead:
//
//	cayley -n 3 -expand
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
)

var (
	flagN       = flag.Int("n", 3, "dimension of the algebra, 0 through 8.")
	flagDual    = flag.Bool("dual", false, "list the dual of every blade.")
	flagReverse = flag.Bool("reverse", false, "list the reverse of every blade.")
	flagExpand  = flag.Bool("expand", false, "print symbolic products of two general vectors instead of the table.")
)

const maxN = 8

func usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cayley: ")
	flag.Usage = usage
	flag.Parse()

	if *flagN < 0 || *flagN > maxN {
		log.Fatalf("dimension %v out of range [0, %v]", *flagN, maxN)
	}
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	w := bufio.NewWriter(os.Stdout)
	var err error
	if *flagExpand {
		err = writeExpansion(w, *flagN)
	} else {
		err = writeTable(w, *flagN, *flagDual, *flagReverse)
	}
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		log.Fatal(err)
	}
}
