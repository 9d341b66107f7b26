// Package textio reads line records into memory and writes them back out.
//
// Reading is strict: the whole input is buffered before any processing, and
// a single read or decode failure aborts the load. No partial input is ever
// returned.
//
// Writing distinguishes two kinds of failure. When the consumer has gone
// away (a broken pipe, as with `sortn < big.txt | head`), writing stops and
// the write is reported as successful. Any other failure is returned to the
// caller.
package textio
