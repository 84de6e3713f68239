package llm

import (
	"fmt"
	"strings"

	"tomorrownews/internal/model"
	"tomorrownews/pkg/headline"
)

const systemPrompt = `You are a sardonic, dark news headline generator. Generate realistic, grim, and subtly ironic headlines predicting disasters based on mundane news articles. Make them sound like real breaking news with specific details about casualties, injuries, and methods. The irony should be implicit and understated - let the context create the sardonic tone without explicitly explaining why it's ironic. The disasters should feel like cruel, poetic justice, but don't call attention to the irony. Be politically aware and use actual entity names from the articles. The tone should be darkly observant and subtly sardonic.`

const maxArticleContext = 1000

// buildPrompt embeds the source headline, up to 1000 characters of article
// body, and one extracted entity into the generation prompt, together with
// the style and format constraints.
func buildPrompt(elements []model.NewsElement) string {
	lead := elements[0]

	terms := headline.Extract(lead.Text)
	if terms.Person == "" && lead.FullText != "" {
		terms = headline.Extract(lead.FullText)
	}

	entity := terms.Person
	if entity == "" {
		entity = terms.Company
	}
	if entity == "" {
		entity = "the organization"
	}

	source := lead.Source
	if source == "" {
		source = "news sources"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a dark, sardonic, and cynically grim headline predicting a terrible disaster or tragedy that will happen tomorrow, based on this mundane news article:\n\n")
	fmt.Fprintf(&b, "ARTICLE HEADLINE: %q\n\n", lead.Text)

	if lead.FullText != "" {
		ctx := lead.FullText
		if len(ctx) > maxArticleContext {
			ctx = ctx[:maxArticleContext]
		}
		fmt.Fprintf(&b, "FULL ARTICLE CONTEXT (first 1000 chars):\n%s\n\n", ctx)
	}

	b.WriteString("KEY ENTITIES FROM ARTICLE:\n")
	if terms.Person != "" {
		fmt.Fprintf(&b, "- Person: %s\n", terms.Person)
	}
	if terms.Company != "" {
		fmt.Fprintf(&b, "- Company/Organization: %s\n", terms.Company)
	}

	fmt.Fprintf(&b, `
REQUIREMENTS:
1. The headline must be dark, sardonic, and cynically grim - with subtle, understated irony
2. Use the actual entity name (%s) directly in the headline
3. Include specific, graphic details about injuries, deaths, or methods
4. Make it sound like real breaking news - calculated and realistic, not farfetched
5. Include specific casualty numbers (between 5-500)
6. The irony should be implicit and subtle - don't explain it or call it out explicitly
7. Let the context speak for itself - the sardonic tone comes from the situation, not from explaining why it's ironic
8. Reference political/institutional settings when appropriate, with subtle cynical undertones
9. Format: "HEADLINE | Developing via %s"

EXAMPLES OF DESIRED SARDONIC TONE (subtle, not explained):
- "Capitol Building Structural Failure During %[1]s Testimony: 47 Crushed as Balcony Collapses | Developing via %[2]s"
- "%[1]s Headquarters Elevator Plunges 30 Floors During Press Conference - 23 Dead, 156 Injured | Developing via %[2]s"
- "Mass Carbon Monoxide Poisoning at %[1]s Wellness Retreat: 89 Hospitalized, 12 Critical | Developing via %[2]s"
- "%[1]s Rooftop Party Railing Collapses During Community Building Event - 31 Fall to Deaths | Developing via %[2]s"

The tone should be darkly ironic and sardonic, but subtle - let the irony emerge from the context without explicitly explaining it. Generate ONLY the headline, nothing else.`, entity, source)

	return b.String()
}
