package places

import (
	"regexp"
	"strings"
)

var (
	apostrophes = strings.NewReplacer("'", "", "’", "", "‘", "", "`", "")
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercases name, drops apostrophes and backticks, and turns every
// run of other non-alphanumeric characters into a single hyphen.
//
//	Slugify("O'Fallon")      == "ofallon"
//	Slugify("Winston-Salem") == "winston-salem"
//	Slugify("St. Louis")     == "st-louis"
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = apostrophes.Replace(slug)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Normalizer turns census place names ("Springfield city") into display
// names ("Springfield") and slugs.
type Normalizer struct {
	exceptions      []string       // as configured
	foldedException []string       // lowercased, same order
	suffix          *regexp.Regexp // nil when no suffixes are configured
}

// NewNormalizer builds a normalizer. Suffixes are tried in the given order
// at each position, so multi-word suffixes must come before their prefixes.
func NewNormalizer(exceptions, suffixes []string) *Normalizer {
	n := &Normalizer{
		exceptions:      exceptions,
		foldedException: make([]string, len(exceptions)),
	}
	for i, e := range exceptions {
		n.foldedException[i] = strings.ToLower(e)
	}

	if len(suffixes) > 0 {
		quoted := make([]string, len(suffixes))
		for i, s := range suffixes {
			quoted[i] = regexp.QuoteMeta(s)
		}
		n.suffix = regexp.MustCompile(`(?i)\s+(?:` + strings.Join(quoted, "|") + `).*$`)
	}

	return n
}

// Clean returns the display name for a raw place name. Names starting with
// an exception entry ("Kansas City city, Missouri") return that entry;
// otherwise the first place-type suffix and everything after it is removed.
func (n *Normalizer) Clean(raw string) string {
	folded := strings.ToLower(raw)
	for i, e := range n.foldedException {
		if strings.HasPrefix(folded, e) {
			return n.exceptions[i]
		}
	}

	name := raw
	if n.suffix != nil {
		if loc := n.suffix.FindStringIndex(name); loc != nil {
			name = name[:loc[0]]
		}
	}
	return strings.TrimSpace(name)
}

// Normalize returns the cleaned name and its slug.
func (n *Normalizer) Normalize(raw string) (string, string) {
	name := n.Clean(raw)
	return name, Slugify(name)
}
