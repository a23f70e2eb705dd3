/*
Package nock is the evaluation core of a minimal combinator interpreter
for a homoiconic language whose sole datum is a binary tree of
unsigned integers ("nouns"). It implements the canonical twelve-rule
reduction calculus of that language: three structural predicates
(is-cell, equal, increment), two tree-addressing primitives (slot read
and slot edit), and the universal reducer that interprets an
opcode-tagged formula against a subject.

Package structure is as follows:

■ noun: Package noun defines the recursive datum type (Atom/Cell), its
structural equality, and the stuck-value error shape shared by every
reducer.

■ reduce: Package reduce implements the tree-addressing primitives
(Net, Hax) and the universal reducer (Tar), the mutually recursive
rewrite system that interprets formulas against subjects.

The base package re-exports noun's addressing type (Slot — Net and Hax
in package reduce operate on it directly) and provides a thin façade
(Reduce).

This package consumes datums produced by a caller and returns reduced
datums (or a stuck Error) for a caller to consume; it has no surface
syntax, no REPL, and no display formatter of its own — those are
external collaborators.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package nock
