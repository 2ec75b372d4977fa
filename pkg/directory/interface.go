package directory

type Client interface {
	GetEntries(listingURL string) ([]Entry, error)
	Search(listingURL string, keyword string) ([]Entry, error)
}
