/*
Package slrgen is an SLR(1) parser generator with a tracing parse engine.

slrgen takes a small, line-oriented grammar description, computes FIRST and
FOLLOW sets, builds the canonical collection of LR(0) item sets and derives an
SLR(1) ACTION/GOTO table from it. A table-driven shift-reduce parser then runs
token strings against the table and records every step it takes. Conflicts are
reported, never resolved. Package structure is as follows:

■ lr: Package lr implements grammars, grammar analysis (FIRST/FOLLOW), the
characteristic finite state machine and SLR(1) table construction.

■ lr/notation: Package notation reads and writes the textual grammar format.

■ lr/slr: Package slr implements the tracing parse engine and a compact API
for clients presenting grammars, tables and parse traces.

■ lr/scanner: Package scanner adapts lexmachine lexers to a Tokenizer interface.

■ config: Package config reads TOML configuration and sets up tracing.

■ cmd/slrgen: Command slrgen is a CLI printing tables, parse traces and exports.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slrgen
