package headline

import (
	"regexp"
	"strconv"
	"strings"
)

// Entities holds whatever could be pulled out of a headline. Extraction is
// best effort: any field may be empty and generators substitute placeholders.
type Entities struct {
	Company string
	Person  string
	Money   string
	Numbers []int
	Action  string
	Tech    string
}

var knownCompanyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Google|Apple|Amazon|Microsoft|Meta|Facebook|Netflix|Tesla|Twitter|OpenAI|Nvidia|Intel|AMD|IBM|Oracle|Salesforce|Adobe|Spotify|Uber|Lyft|Airbnb|PayPal|Square|Stripe|Zoom|Slack)`),
	regexp.MustCompile(`(?i)(Goldman Sachs|Morgan Stanley|JP Morgan|JPMorgan|Bank of America|Wells Fargo|Citigroup|BlackRock|Visa|Mastercard|American Express)`),
	regexp.MustCompile(`(?i)(Walmart|Target|Costco|Home Depot|Starbucks|McDonald|Nike|Adidas|Disney|Coca-Cola|PepsiCo)`),
}

var knownPersonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Trump|Biden|Harris|Kamala|Putin|Zelensky|Netanyahu|Musk|Bezos|Gates|Cook|Pichai|Nadella)`),
	regexp.MustCompile(`(?i)(David Sacks|Elon Musk|Jeff Bezos|Tim Cook|Sundar Pichai|Satya Nadella)`),
}

var (
	leadingArticle = regexp.MustCompile(`(?i)^(The|A|An)\s+`)
	moneyPattern   = regexp.MustCompile(`(?i)\$[\d.]+[MBK]?(?:illion)?`)
	numberPattern  = regexp.MustCompile(`\d+`)
	actionPattern  = regexp.MustCompile(`(?i)(announces|launches|raises|reports|reveals|unveils|opens|expands|acquires|releases|celebrates|completes|introduces|partners|debuts|starts)`)
	techPattern    = regexp.MustCompile(`(?i)(AI|app|platform|software|cloud|data|digital|cyber|quantum|blockchain|metaverse|iPhone|Android|GPU|chip)`)
	capitalWord    = regexp.MustCompile(`^[A-Z]`)
	nounPhrase     = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)
)

var stopWords = map[string]bool{
	"The": true, "A": true, "An": true, "In": true, "On": true, "At": true,
	"For": true, "And": true, "But": true, "Or": true, "As": true, "Of": true,
	"To": true, "From": true, "New": true, "Old": true,
}

// Extract parses company/person names and salient terms out of a headline.
// It never fails; fields are left empty when nothing matches.
func Extract(text string) Entities {
	e := Entities{
		Money:   firstMatch(moneyPattern, text),
		Action:  firstMatch(actionPattern, text),
		Tech:    firstMatch(techPattern, text),
		Numbers: extractNumbers(text),
	}

	for _, p := range knownPersonPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			e.Person = m[1]
			break
		}
	}

	// Known entities win over anything heuristic.
	for _, p := range knownCompanyPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			e.Company = m[1]
			return e
		}
	}

	clean := leadingArticle.ReplaceAllString(text, "")

	// Generic capitalized phrase, skipping sentence-leading stop words.
	if m := nounPhrase.FindStringSubmatch(clean); m != nil {
		if first := strings.Fields(m[1])[0]; !stopWords[first] {
			e.Company = m[1]
			return e
		}
	}

	// First capitalized word that is not a stop word.
	for _, w := range strings.Fields(clean) {
		if capitalWord.MatchString(w) && !stopWords[w] {
			e.Company = w
			return e
		}
	}

	// Last resort: the first few meaningful words of the headline.
	var words []string
	for _, w := range strings.Fields(clean) {
		if len(w) > 2 && !stopWords[w] {
			words = append(words, w)
			if len(words) == 3 {
				break
			}
		}
	}
	e.Company = strings.Join(words, " ")

	return e
}

func firstMatch(p *regexp.Regexp, text string) string {
	return p.FindString(text)
}

func extractNumbers(text string) []int {
	var nums []int
	for _, m := range numberPattern.FindAllString(text, -1) {
		if n, err := strconv.Atoi(m); err == nil {
			nums = append(nums, n)
		}
	}
	return nums
}
