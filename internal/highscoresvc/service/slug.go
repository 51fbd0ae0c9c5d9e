package service

import "strings"

// GenerateSlug derives the url slug of a game from its title: the first "-"
// is dropped, the first " " becomes "-", and the result is lower-cased. Only
// the first occurrence of each is touched; stored slugs depend on it.
func GenerateSlug(title string) string {
	slug := strings.Replace(title, "-", "", 1)
	slug = strings.Replace(slug, " ", "-", 1)
	return strings.ToLower(slug)
}
