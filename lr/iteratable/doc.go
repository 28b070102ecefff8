/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around scanners, parsers, etc. These kinds of algorithms are often more straightforward
to describe as set constructions and operations.

A Set remembers the order in which elements have been inserted. An iteration
started with IterateOnce will visit elements which are added while the
iteration is running. This turns a Set into a worklist for fixpoint
computations like LR(0) closures:

    C.IterateOnce()
    for C.Next() {
        x := C.Item()
        C.Add(more(x)...)    // will be visited by this very loop
    }

Unusually, all set operations are destructive!

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iteratable
