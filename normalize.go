package recipeclip

import (
	"regexp"
	"strconv"
	"strings"
)

// Default section names substituted when a recipe has a single unnamed
// section.
const (
	DefaultIngredientsSection = "Ingredients"
	DefaultStepsSection       = "Steps"
)

// NormalizeRecipe fills derived fields and enforces invariants in place.
// Time fields that are negative are treated as absent, section items are
// trimmed and empty ones dropped, a single unnamed section gets a default
// name, and TotalTime is derived from PrepTime+CookTime when absent. An
// explicit TotalTime is never overwritten.
//
// Returns EINCOMPLETE if the normalized record has no title or no
// ingredient items; the caller must not write anything in that case.
func NormalizeRecipe(rec *RecipeRecord) error {
	rec.Title = strings.TrimSpace(rec.Title)
	rec.Author = strings.TrimSpace(rec.Author)
	rec.Servings = strings.TrimSpace(rec.Servings)

	if rec.PrepTime < 0 {
		rec.PrepTime = 0
	}
	if rec.CookTime < 0 {
		rec.CookTime = 0
	}
	if rec.TotalTime < 0 {
		rec.TotalTime = 0
	}

	rec.Ingredients = ApplyDefaultSectionName(cleanSections(rec.Ingredients), DefaultIngredientsSection)
	rec.Steps = ApplyDefaultSectionName(cleanSections(rec.Steps), DefaultStepsSection)

	if rec.TotalTime == 0 {
		rec.TotalTime = rec.PrepTime + rec.CookTime
	}

	return rec.Validate()
}

// ApplyDefaultSectionName substitutes name for the section name when the
// sequence consists of a single unnamed section. Multi-section sequences are
// left untouched.
func ApplyDefaultSectionName(sections []Section, name string) []Section {
	if len(sections) == 1 && strings.TrimSpace(sections[0].Name) == "" {
		sections[0].Name = name
	}
	return sections
}

// cleanSections trims item whitespace, drops empty items, and drops sections
// left without items. Order is preserved.
func cleanSections(sections []Section) []Section {
	var out []Section
	for _, s := range sections {
		items := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			if t := strings.TrimSpace(item); t != "" {
				items = append(items, t)
			}
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, Section{Name: strings.TrimSpace(s.Name), Items: items})
	}
	return out
}

var (
	isoDurationRe = regexp.MustCompile(`^P(?:T(?:(\d+)H)?(?:(\d+)M)?)`)
	proseTimeRe   = regexp.MustCompile(`(\d+(?:\s*\d+/\d+)?|\d+\.\d+)\s*(hour|hr|h|minute|min|m)s?`)
)

// ParseMinutes converts a human or ISO-8601 time expression into whole
// minutes. It understands durations like "PT1H30M", "1 hour 20 minutes",
// "1 1/2 hrs" and "90 min". Unparseable input yields 0, never an error.
func ParseMinutes(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	if m := isoDurationRe.FindStringSubmatch(strings.ToUpper(text)); m != nil {
		hours, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return hours*60 + mins
	}

	total := 0
	for _, m := range proseTimeRe.FindAllStringSubmatch(strings.ToLower(text), -1) {
		amount := parseAmount(strings.TrimSpace(m[1]))
		switch {
		case strings.HasPrefix(m[2], "hour"), m[2] == "h", m[2] == "hr":
			total += int(amount * 60)
		default:
			total += int(amount)
		}
	}
	return total
}

// parseAmount handles plain numbers, decimals, fractions ("1/2") and mixed
// numbers ("1 1/2").
func parseAmount(s string) float64 {
	if whole, frac, ok := strings.Cut(s, " "); ok && strings.Contains(frac, "/") {
		w, _ := strconv.ParseFloat(whole, 64)
		return w + parseFraction(strings.TrimSpace(frac))
	}
	if strings.Contains(s, "/") {
		return parseFraction(s)
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseFraction(s string) float64 {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0
	}
	n, _ := strconv.ParseFloat(strings.TrimSpace(num), 64)
	d, _ := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if d == 0 {
		return 0
	}
	return n / d
}
