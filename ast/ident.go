package ast

import (
	"strings"
	"unicode"
)

// ContentName is the name given to anonymous tags, tags that start with a
// value instead of a name.
const ContentName = "content"

// IsValidIdentifier reports whether name is a valid tag or attribute name:
// either a bare identifier or ns:identifier. An identifier starts with a
// letter or underscore followed by letters, digits, '_', '-', '.' or '$'.
func IsValidIdentifier(name string) bool {
	ns, local, found := strings.Cut(name, ":")
	if !found {
		return isIdent(name)
	}
	return isIdent(ns) && isIdent(local)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("_-.$", r) {
			return false
		}
	}
	return true
}
