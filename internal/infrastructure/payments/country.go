package payments

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"financier/internal/usecase/interfaces"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// countryAliases covers common spellings CLDR does not use as display names.
var countryAliases = map[string]string{
	"america":                  "US",
	"united states of america": "US",
	"usa":                      "US",
	"uk":                       "GB",
	"great britain":            "GB",
	"england":                  "GB",
	"britain":                  "GB",
	"czech republic":           "CZ",
	"republic of korea":        "KR",
	"korea":                    "KR",
	"holland":                  "NL",
	"the netherlands":          "NL",
	"uae":                      "AE",
	"hong kong sar china":      "HK",
}

var (
	countryNamesOnce sync.Once
	countryNames     map[string]string
)

// ResolveCountry turns a free-text country (English name, alpha-2 or alpha-3
// code) into an upper-case ISO-3166 alpha-2 code.
func ResolveCountry(input string) (string, error) {
	const op = "ResolveCountry"

	key := normalizeCountryName(input)
	if key == "" {
		return "", interfaces.NewGatewayError(op, interfaces.ErrResolution, errEmptyCountry)
	}
	if code, ok := countryAliases[key]; ok {
		return code, nil
	}

	compact := strings.ToUpper(strings.ReplaceAll(key, " ", ""))
	if len(compact) == 2 || len(compact) == 3 {
		if region, err := language.ParseRegion(compact); err == nil && region.IsCountry() {
			return strings.ToUpper(region.Canonicalize().String()), nil
		}
	}

	if code, ok := countryNameIndex()[key]; ok {
		return code, nil
	}
	return "", interfaces.NewGatewayError(op, interfaces.ErrResolution, fmt.Errorf("unknown country %q", input))
}

func countryNameIndex() map[string]string {
	countryNamesOnce.Do(func() {
		namer := display.English.Regions()
		countryNames = make(map[string]string, 256)
		for a := 'A'; a <= 'Z'; a++ {
			for b := 'A'; b <= 'Z'; b++ {
				region, err := language.ParseRegion(string([]rune{a, b}))
				if err != nil || !region.IsCountry() {
					continue
				}
				name := normalizeCountryName(namer.Name(region))
				if name == "" {
					continue
				}
				if _, taken := countryNames[name]; !taken {
					countryNames[name] = region.String()
				}
			}
		}
	})
	return countryNames
}

// normalizeCountryName lower-cases and collapses punctuation and whitespace.
func normalizeCountryName(s string) string {
	var b strings.Builder
	space := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		case r == '&':
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("and")
			space = true
		default:
			space = true
		}
	}
	return b.String()
}
