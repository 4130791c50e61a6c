package repository

import "strings"

// likeEscaper escapes LIKE wildcards so that user text matches literally.
// Queries pair it with ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns search text into a lower-case substring pattern.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}
