// Package showcase defines the two tab sets of the landing page: the feature
// showcase and the code example. Both are closed enumerations over fixed
// content.
package showcase

import "github.com/nfrund/actorkit-site/internal/tabs"

// StatelyEmbedURL is the visualiser shown for the state machine feature.
const StatelyEmbedURL = "https://stately.ai/viz/embed/83bf2e88-4f2a-4dc4-9a72-d29679fd2019?machineId=83bf2e88-4f2a-4dc4-9a72-d29679fd2019&mode=viz"

// Feature enumerates the feature showcase entries.
type Feature int

const (
	FeatureSSR Feature = iota
	FeatureRealtime
	FeatureTypeSafety
	FeatureEventDriven
	FeatureStateMachine
	FeatureAccessControl
	featureCount
)

var featureSlugs = [featureCount]string{
	"server-side-rendering",
	"real-time-updates",
	"type-safety",
	"event-driven-architecture",
	"state-machine-logic",
	"access-control",
}

var featureIcons = [featureCount]string{"server", "globe", "code", "workflow", "cpu", "lock"}

var featureEntries = [featureCount]tabs.Entry{
	{
		Title:       "Server-Side Rendering",
		Description: "Fetch initial state server-side for optimal performance and SEO. Works seamlessly with Next.js, Remix, and other modern frameworks.",
		Body:        ssrSource,
		Language:    "tsx",
	},
	{
		Title:       "Real-time Updates",
		Description: "Changes are immediately reflected across all connected clients, ensuring a responsive user experience. WebSockets handled for you.",
		Body:        realtimeSource,
		Language:    "tsx",
	},
	{
		Title:       "Type Safety",
		Description: "Leverage TypeScript and Zod for robust type checking and runtime validation, preventing runtime errors and improving developer experience.",
		Body:        typeSafetySource,
		Language:    "typescript",
	},
	{
		Title:       "Event-Driven Architecture",
		Description: "All state changes are driven by events, providing a clear and predictable data flow with full audit trail capabilities.",
		Body:        eventDrivenSource,
		Language:    "typescript",
	},
	{
		Title:       "State Machine Logic",
		Description: "Powered by XState, making complex state management more manageable and visualizable, with tools for debugging and state inspection.",
		Body:        stateMachineSource,
		Language:    "tsx",
		Embed:       StatelyEmbedURL,
	},
	{
		Title:       "Access Control",
		Description: "Powerful built-in access control with public and private data. Control what data is shared across clients and what stays private.",
		Body:        accessControlSource,
		Language:    "typescript",
	},
}

// Slug is the identifier used in fragment URLs.
func (f Feature) Slug() string { return featureSlugs[f] }

// Icon names the icon shown next to the feature title.
func (f Feature) Icon() string { return featureIcons[f] }

func (f Feature) String() string { return f.Slug() }

// Features returns every feature in display order.
func Features() []Feature {
	return enumerate[Feature](int(featureCount))
}

// ParseFeature resolves a slug to a feature.
func ParseFeature(slug string) (Feature, bool) {
	return parse(slug, Features())
}

// FeatureEntries returns the feature content in display order.
func FeatureEntries() []tabs.Entry {
	return append([]tabs.Entry(nil), featureEntries[:]...)
}

// NewFeatureSelector returns a selector over the features, first one active.
func NewFeatureSelector(opts ...tabs.Option[Feature]) *tabs.Selector[Feature] {
	return tabs.New(FeatureEntries(), opts...)
}

// Snippet enumerates the code example tabs.
type Snippet int

const (
	SnippetMachine Snippet = iota
	SnippetServer
	SnippetWorker
	SnippetClient
	snippetCount
)

var snippetSlugs = [snippetCount]string{"machine", "server", "worker", "client"}

var snippetEntries = [snippetCount]tabs.Entry{
	{Title: "Machine", Description: "game.machine.ts", Body: machineSource, Language: "typescript"},
	{Title: "Server", Description: "game.server.ts", Body: serverSource, Language: "typescript"},
	{Title: "Worker", Description: "worker.ts", Body: workerSource, Language: "typescript"},
	{Title: "Client", Description: "GameLobby.tsx", Body: clientSource, Language: "tsx"},
}

// Slug is the identifier used in fragment URLs.
func (s Snippet) Slug() string { return snippetSlugs[s] }

func (s Snippet) String() string { return s.Slug() }

// Snippets returns every snippet in display order.
func Snippets() []Snippet {
	return enumerate[Snippet](int(snippetCount))
}

// ParseSnippet resolves a slug to a snippet.
func ParseSnippet(slug string) (Snippet, bool) {
	return parse(slug, Snippets())
}

// SnippetEntries returns the code example content in display order.
func SnippetEntries() []tabs.Entry {
	return append([]tabs.Entry(nil), snippetEntries[:]...)
}

// NewSnippetSelector returns a selector over the snippets, first one active.
func NewSnippetSelector(opts ...tabs.Option[Snippet]) *tabs.Selector[Snippet] {
	return tabs.New(SnippetEntries(), opts...)
}

type slugged interface {
	~int
	Slug() string
}

func enumerate[K ~int](n int) []K {
	out := make([]K, n)
	for i := range out {
		out[i] = K(i)
	}
	return out
}

func parse[K slugged](slug string, all []K) (K, bool) {
	for _, k := range all {
		if k.Slug() == slug {
			return k, true
		}
	}
	var zero K
	return zero, false
}
