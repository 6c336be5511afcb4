package emit

import (
	"strconv"
	"strings"
	"unicode"
)

// className builds the test class name from a scenario's human name:
// strip characters outside letters, digits and spaces, split on whitespace,
// capitalize each word, and prefix Test.
func className(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, name)

	var b strings.Builder
	b.WriteString("Test")
	for _, word := range strings.Fields(cleaned) {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// fileBase builds the per-scenario file stem from the lower-cased scenario
// identifier, replacing anything outside [a-z0-9_] with underscores. A
// leading digit gets a t prefix so the stem stays a valid identifier.
func fileBase(id string) string {
	lowered := strings.ToLower(id)
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, lowered)

	if mapped == "" {
		mapped = "scenario"
	}
	if mapped[0] >= '0' && mapped[0] <= '9' {
		mapped = "t" + mapped
	}
	return mapped
}

// uniqueNames hands out collision-free class and file names. The second
// occupant of a name gets a numeric suffix, reported through the warning
// callback.
type uniqueNames struct {
	classes map[string]int
	files   map[string]int
}

func newUniqueNames() *uniqueNames {
	return &uniqueNames{
		classes: make(map[string]int),
		files:   make(map[string]int),
	}
}

func (u *uniqueNames) class(base string) (string, bool) {
	return claim(u.classes, base)
}

func (u *uniqueNames) file(base string) (string, bool) {
	return claim(u.files, base)
}

func claim(used map[string]int, base string) (string, bool) {
	if _, taken := used[base]; !taken {
		used[base] = 1
		return base, false
	}
	for {
		used[base]++
		suffixed := base + strconv.Itoa(used[base])
		if _, taken := used[suffixed]; !taken {
			used[suffixed] = 1
			return suffixed, true
		}
	}
}
