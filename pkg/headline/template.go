package headline

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"tomorrownews/internal/model"
)

// Casualty pools used when the source headline carries no usable numbers.
var (
	smallCasualties = []int{3, 5, 7, 8, 9, 11, 13, 14, 16, 17, 18, 19, 21, 23, 24, 26, 28, 31, 34, 37, 42, 43, 47, 51, 56}
	largeCasualties = []int{67, 73, 89, 94, 112, 127, 134, 147, 156, 178, 189, 203, 234, 267, 289, 312, 347, 389, 412, 456}
)

var weatherTermPattern = regexp.MustCompile(`(?i)\d+\s*degrees?|rain|snow|wind|fog`)

// TemplateGenerator renders satirical disaster headlines from parsed entities.
// It is the infallible fallback behind the AI chain: given at least one
// element with non-empty text it always produces a headline ending in the
// source attribution suffix.
type TemplateGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewTemplateGenerator builds a generator around the given random source so
// tests can seed it.
func NewTemplateGenerator(rng *rand.Rand) *TemplateGenerator {
	return &TemplateGenerator{rng: rng}
}

type templateInput struct {
	entity  string // extracted company/person, may be empty
	action  string
	tech    string
	money   string
	source  string
	weather *model.NewsElement
	small   int
	big     int
}

// Generate produces one templated headline from the element sequence. Only
// the first element drives extraction; a weather-typed element anywhere in the
// sequence can flavor the weather template.
func (g *TemplateGenerator) Generate(elements []model.NewsElement) string {
	if len(elements) == 0 {
		return ""
	}

	lead := elements[0]
	terms := Extract(lead.Text)

	var weather *model.NewsElement
	for i := range elements {
		if elements[i].Type == model.TypeWeather {
			weather = &elements[i]
			break
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	small, big := g.casualties(terms.Numbers)

	action := terms.Action
	if action == "" {
		action = "event"
	}

	source := lead.Source
	if source == "" {
		source = "Wire Services"
	}

	in := templateInput{
		entity:  terms.Company,
		action:  action,
		tech:    terms.Tech,
		money:   terms.Money,
		source:  source,
		weather: weather,
		small:   small,
		big:     big,
	}

	templates := []func(templateInput) string{
		g.gasLeak, g.fire, g.stampede, g.elevator, g.poisoning, g.techFailure,
		g.collapse, g.vehicleCrash, g.bizarre, g.moneyIrony, g.massIllness, g.weatherDisaster,
	}

	return templates[g.rng.Intn(len(templates))](in)
}

// casualties blends numbers found in the headline with the fixed pools so the
// output stays plausible but varied. Occasionally swapped so the small value
// does not always come first.
func (g *TemplateGenerator) casualties(found []int) (small, big int) {
	if len(found) > 0 {
		real := found[g.rng.Intn(len(found))]
		small = min(real, smallCasualties[g.rng.Intn(len(smallCasualties))])
		big = max(real, largeCasualties[g.rng.Intn(len(largeCasualties))])
	} else {
		small = smallCasualties[g.rng.Intn(len(smallCasualties))]
		big = largeCasualties[g.rng.Intn(len(largeCasualties))]
	}

	if g.rng.Float64() > 0.7 {
		small, big = big, small
	}
	return small, big
}

func (g *TemplateGenerator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

func orPlaceholder(entity, placeholder string) string {
	if entity == "" {
		return placeholder
	}
	return entity
}

func (g *TemplateGenerator) gasLeak(in templateInput) string {
	gas := g.pick([]string{"Carbon Monoxide", "Toxic Gas", "Chemical Vapor", "Unknown Fumes"})
	entity := orPlaceholder(in.entity, "Headquarters")
	return fmt.Sprintf("%s %s Deaths: %d Dead From %s Leak in Ventilation System | Developing via %s",
		entity, in.action, in.small, gas, in.source)
}

func (g *TemplateGenerator) fire(in templateInput) string {
	cause := g.pick([]string{"Electrical Fire", "Server Room Blaze", "Kitchen Fire", "HVAC Explosion"})
	entity := orPlaceholder(in.entity, "Headquarters")
	return fmt.Sprintf("%s During %s %s Event Kills %d, Hundreds Evacuated | Developing via %s",
		cause, entity, in.action, in.small, in.source)
}

func (g *TemplateGenerator) stampede(in templateInput) string {
	entity := orPlaceholder(in.entity, "Event")
	return fmt.Sprintf("Stampede at %s %s Announcement: %d Injured in Crowd Surge, %d Critical | Developing via %s",
		entity, in.action, in.big, in.small, in.source)
}

func (g *TemplateGenerator) elevator(in templateInput) string {
	failure := g.pick([]string{"Elevator Plunges 40 Floors", "Escalator Suddenly Reverses", "Elevator Cables Snap"})
	entity := "Headquarters"
	if in.entity != "" {
		entity = in.entity + " Headquarters"
	}
	return fmt.Sprintf("%s: %s During %s Event - %d Dead | Developing via %s",
		entity, failure, in.action, in.small, in.source)
}

func (g *TemplateGenerator) poisoning(in templateInput) string {
	entity := orPlaceholder(in.entity, "Event")
	return fmt.Sprintf("Mass Poisoning at %s %s Celebration: %d Hospitalized After Catered Lunch | Developing via %s",
		entity, in.action, in.big, in.source)
}

func (g *TemplateGenerator) techFailure(in templateInput) string {
	if in.tech != "" {
		entity := orPlaceholder(in.entity, "System")
		return fmt.Sprintf("%s's %s System Malfunction Causes Fatal Power Surge - %d Electrocuted | Developing via %s",
			entity, in.tech, in.small, in.source)
	}
	entity := orPlaceholder(in.entity, "Data Center")
	return fmt.Sprintf("%s Cooling Failure: %d Die from Heat Stroke Trapped Inside | Developing via %s",
		entity, in.small, in.source)
}

func (g *TemplateGenerator) collapse(in templateInput) string {
	structure := g.pick([]string{"Ceiling", "Glass Skylight", "Floor", "Parking Garage"})
	entity := orPlaceholder(in.entity, "Building")
	return fmt.Sprintf("%s Collapse at %s Kills %d During %q Ceremony | Developing via %s",
		structure, entity, in.small, in.action, in.source)
}

func (g *TemplateGenerator) vehicleCrash(in templateInput) string {
	entity := orPlaceholder(in.entity, "Event")
	return fmt.Sprintf("%s Shuttle Bus Crash After %s Event: %d Dead, %d Injured | Developing via %s",
		entity, in.action, in.small, in.big, in.source)
}

func (g *TemplateGenerator) bizarre(in templateInput) string {
	entity := orPlaceholder(in.entity, "Headquarters")
	variants := []string{
		fmt.Sprintf("Giant LED Display Falls During %s %s Presentation - %d Crushed | Developing via %s",
			entity, in.action, in.small, in.source),
		fmt.Sprintf("%s Aquarium Explodes, %d Drown in Lobby Flash Flood | Developing via %s",
			entity, in.small, in.source),
		fmt.Sprintf("Industrial Robot Malfunctions at %s Demo, %d Fatal Injuries | Developing via %s",
			entity, in.small, in.source),
		fmt.Sprintf("%s Rooftop Party Railing Collapse During %s Toast - %d Fall to Deaths | Developing via %s",
			entity, in.action, in.small, in.source),
	}
	return g.pick(variants)
}

func (g *TemplateGenerator) moneyIrony(in templateInput) string {
	if in.money != "" {
		entity := orPlaceholder(in.entity, "Founder")
		return fmt.Sprintf("%q Were His Last Words: %s Among %d Dead in Champagne Explosion | Developing via %s",
			"We Just Raised "+in.money, entity, in.small, in.source)
	}
	entity := orPlaceholder(in.entity, "Building")
	return fmt.Sprintf("%s IPO Bell Ringing Triggers Structural Resonance - Building Evacuated, %d Missing | Developing via %s",
		entity, in.small, in.source)
}

func (g *TemplateGenerator) massIllness(in templateInput) string {
	cause := g.pick([]string{"Legionnaires Disease", "Mass Hallucinations", "Severe Allergic Reactions", "Mystery Illness"})
	entity := orPlaceholder(in.entity, "Campus")
	return fmt.Sprintf("%s Strikes %s After %s - %d Hospitalized | Developing via %s",
		cause, entity, in.action, in.big, in.source)
}

func (g *TemplateGenerator) weatherDisaster(in templateInput) string {
	if in.weather != nil {
		term := weatherTermPattern.FindString(in.weather.Text)
		if term == "" {
			term = "conditions"
		}
		entity := orPlaceholder(in.entity, "Building")
		return fmt.Sprintf("%s Glass Facade Shatters in %s, Shards Rain on %s Attendees - %d Dead | Developing via %s",
			entity, strings.ToLower(term), in.action, in.small, in.source)
	}
	entity := orPlaceholder(in.entity, "Building")
	return fmt.Sprintf("Lightning Strikes %s During %s Speech - Entire Executive Team Killed | Developing via %s",
		entity, in.action, in.source)
}
