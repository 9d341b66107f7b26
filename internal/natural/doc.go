// Package natural implements natural ("alphanumeric") string ordering.
//
// A string is viewed as a sequence of tokens. A token is either a maximal
// run of ASCII decimal digits (a numeric token) or a maximal run of any other
// bytes (a literal token). Two strings are compared token by token:
//
//   - numeric tokens compare by value, so "2" sorts before "10"; tokens with
//     the same value compare by length, so "1" sorts before "01"
//   - literal tokens compare byte-wise, so "B" sorts before "a"
//   - a numeric token sorts before a literal token at the same position
//   - a string that runs out of tokens first sorts first
//
// # Usage
//
//	lines := []string{"item10", "item2", "item1"}
//	slices.SortFunc(lines, natural.Compare)
//	// lines is now ["item1", "item2", "item10"]
//
// Numeric tokens are compared without converting them to integers, so digit
// runs of any length are ordered correctly.
package natural
