// Package main provides the entry point for the sortn CLI.
//
// sortn sorts lines naturally: runs of digits are compared by numeric value,
// so "file2" sorts before "file10". It reads standard input (or the named
// files) and writes the sorted lines to standard output.
//
// Usage:
//
//	sortn [flags] [file...]
//	ls | sortn -i -u
//
// See --help for all available options.
package main

func main() {
	Execute()
}
