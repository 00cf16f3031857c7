package routes

// External destinations linked from the site.
const (
	DocsURL       = "https://github.com/jonmumm/actor-kit#readme"
	ExamplesURL   = "https://github.com/jonmumm/actor-kit/tree/main/examples"
	CommunityURL  = "https://github.com/jonmumm/actor-kit/discussions"
	RepositoryURL = "https://github.com/jonmumm/actor-kit"
)

// Default returns the site's route table.
func Default() *Table {
	return MustTable(
		Entry{Pattern: "/", Outcome: Page(PageIndex)},
		Entry{Pattern: "/docs", Outcome: ExternalRedirect(DocsURL)},
		Entry{Pattern: "/examples", Outcome: ExternalRedirect(ExamplesURL)},
		Entry{Pattern: "/community", Outcome: ExternalRedirect(CommunityURL)},
		Entry{Pattern: Wildcard, Outcome: NotFound()},
	)
}
