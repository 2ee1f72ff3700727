// Command fac computes a small factorial two ways, with a naive recursive
// definition and with an accumulator-passing (tail-recursive) variant, and
// prints both results.
//
// The accumulator variant runs as a loop since Go does not eliminate tail
// calls. The dot and shape subcommands show the difference in stack usage.
package main
