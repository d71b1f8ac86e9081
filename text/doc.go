// Package text provides the string normalization used for matching and
// sorting records: diacritic removal, case folding and tokenization.
//
// RemoveDiacritics and Lower are length preserving: the i-th rune of the
// output always corresponds to the i-th rune of the input. The highlight
// package relies on this to map match positions back onto the original text.
package text
