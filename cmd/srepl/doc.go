/*
Command srepl provides an interactive command line tool (S.REPL) for set
expressions over integers. S.REPL serves as a sandbox for experiments with
copying and in-place ordered sets, and for watching how often the set
operations look at each element.

Usage:

	srepl [-trace Debug|Info|Error] [-init file] [-mode copy|inplace] [statement]

Statements follow the syntax of package calc, one per line:

	srepl> A = [1 2 3 5]
	srepl> visits diff A [2 3]

Enter `vars` to list the variables and quit with <ctrl>D or `quit`.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkset.calc'
func tracer() tracing.Trace {
	return tracing.Select("linkset.calc")
}
