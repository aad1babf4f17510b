// Package vntext folds Vietnamese text to plain ASCII lowercase so it can be
// compared and used in identifiers regardless of diacritics.
package vntext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and removes diacritic marks ("Quản trị viên" -> "quan tri vien").
// đ/Đ do not decompose to combining marks, so they are replaced explicitly.
func Fold(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("đ", "d", "Đ", "d").Replace(s)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return folded
}

// FoldKey folds s and drops everything that is not a letter or digit.
// Used for generated usernames ("Trần Thị Bích Ngọc" -> "tranthibichngoc").
func FoldKey(s string) string {
	var b strings.Builder
	for _, r := range Fold(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
