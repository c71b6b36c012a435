// Package demo embeds the built-in program the REPL loads when invoked
// without a program-file argument (§6.3).
package demo

import _ "embed"

//go:embed demo.pl
var Program string
