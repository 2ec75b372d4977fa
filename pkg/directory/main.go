package directory

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"golang.org/x/net/html"
)

type client struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) Client {
	return client{
		logger: logger,
	}
}

func (client client) GetEntries(listingURL string) ([]Entry, error) {
	c := colly.NewCollector()

	entries := []Entry{}
	c.OnHTML(".supplier-listing .supplier-card", func(h *colly.HTMLElement) {
		entry := Entry{
			CompanyName: strings.TrimSpace(h.ChildText(".supplier-name")),
			Country:     strings.TrimSpace(h.ChildText(".supplier-country")),
			Category:    strings.TrimSpace(h.ChildText(".supplier-category")),
			Keywords:    getKeywords(h),
		}

		if entry.CompanyName == "" {
			return
		}

		entries = append(entries, entry)
	})

	err := c.Visit(listingURL)
	if err != nil {
		return nil, err
	}

	client.logger.Debug(
		fmt.Sprintf("fetched %d directory entries", len(entries)),
	)

	return entries, nil
}

func (client client) Search(
	listingURL string,
	keyword string,
) ([]Entry, error) {
	return client.GetEntries(
		fmt.Sprintf("%s?q=%s", listingURL, url.QueryEscape(keyword)),
	)
}

func getKeywords(h *colly.HTMLElement) []string {
	keywords := []string{}

	nodes := h.DOM.Find(".supplier-keywords").Nodes
	if len(nodes) == 0 {
		return keywords
	}

	var child *html.Node
	for child = nodes[0].FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		if child.FirstChild == nil || child.FirstChild.Type != html.TextNode {
			continue
		}

		keyword := strings.TrimSpace(child.FirstChild.Data)
		if keyword == "" {
			continue
		}

		keywords = append(keywords, keyword)
	}

	return keywords
}
