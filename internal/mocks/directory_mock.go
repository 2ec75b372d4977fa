package mocks

import (
	"strings"

	"procuroid.app/pkg/directory"
)

type MockedDirectoryClient struct {
	Entries []directory.Entry
}

func NewMockedDirectoryClient() *MockedDirectoryClient {
	return &MockedDirectoryClient{
		Entries: []directory.Entry{
			{
				CompanyName: "Nordic Steel Works",
				Country:     "Sweden",
				Category:    "Raw Materials",
				Keywords:    []string{"steel", "sheet metal"},
			},
			{
				CompanyName: "Pacific Components Ltd",
				Country:     "Taiwan",
				Category:    "Electronics",
				Keywords:    []string{"pcb", "connectors"},
			},
		},
	}
}

func (client *MockedDirectoryClient) GetEntries(
	_ string,
) ([]directory.Entry, error) {
	return client.Entries, nil
}

func (client *MockedDirectoryClient) Search(
	_ string,
	keyword string,
) ([]directory.Entry, error) {
	matches := []directory.Entry{}
	for _, entry := range client.Entries {
		for _, entryKeyword := range entry.Keywords {
			if strings.Contains(
				strings.ToLower(keyword),
				strings.ToLower(entryKeyword),
			) || strings.Contains(
				strings.ToLower(entryKeyword),
				strings.ToLower(keyword),
			) {
				matches = append(matches, entry)
				break
			}
		}
	}

	return matches, nil
}
