package models

import "strings"

// genreSeparator is the only place the genre delimiter is spelled out.
// A multi-select form submission is stored as a single delimited
// string column; the pair below is the sole encode/decode point.
const genreSeparator = ", "

// JoinGenres encodes a genre selection into the stored column value.
func JoinGenres(genres []string) string {
	return strings.Join(genres, genreSeparator)
}

// SplitGenres decodes a stored genres column back into a list.
// Values written by older clients may lack the space after the comma,
// so each element is trimmed.
func SplitGenres(stored string) []string {
	if stored == "" {
		return nil
	}
	parts := strings.Split(stored, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
