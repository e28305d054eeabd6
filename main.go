/*
File    : go-lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// go-lox is a tree-walking interpreter for the Lox language.
// With a file argument it runs the script; with no arguments it starts
// the interactive REPL.
package main

import (
	"os"

	"github.com/akashmaji946/go-lox/file"
	"github.com/akashmaji946/go-lox/repl"
)

// Visual configuration for the REPL session.
const (
	BANNER = `
   ____  ___        _     ___  __  __
  / ___|/ _ \      | |   / _ \ \ \/ /
 | |  _| | | |_____| |  | | | | \  /
 | |_| | |_| |_____| |__| |_| | /  \
  \____|\___/      |_____\___/ /_/\_\
`
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LINE    = "--------------------------------------------------------------"
	LICENSE = "MIT"
	PROMPT  = ">>> "
)

func main() {
	// A file argument selects script mode; otherwise run the REPL
	if len(os.Args) > 1 {
		if !file.Run(os.Args[1]) {
			os.Exit(1)
		}
		return
	}

	r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	r.Start(os.Stdout)
}
