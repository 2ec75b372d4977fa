package directory_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"procuroid.app/pkg/directory"
)

const listingPage = `<html><body>
<div class="supplier-listing">
	<div class="supplier-card">
		<h2 class="supplier-name">Nordic Steel Works</h2>
		<span class="supplier-country">Sweden</span>
		<span class="supplier-category">Raw Materials</span>
		<ul class="supplier-keywords">
			<li>steel</li>
			<li>sheet metal</li>
			<li> </li>
		</ul>
	</div>
	<div class="supplier-card">
		<h2 class="supplier-name">Pacific Components Ltd</h2>
		<span class="supplier-country">Taiwan</span>
		<span class="supplier-category">Electronics</span>
	</div>
	<div class="supplier-card">
		<span class="supplier-country">Unknown</span>
	</div>
</div>
</body></html>`

func newDirectoryServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("q") == "steel" {
				//nolint:errcheck //test fixture
				w.Write([]byte(`<html><body>
<div class="supplier-listing">
	<div class="supplier-card">
		<h2 class="supplier-name">Nordic Steel Works</h2>
		<span class="supplier-country">Sweden</span>
		<span class="supplier-category">Raw Materials</span>
	</div>
</div>
</body></html>`))
				return
			}

			//nolint:errcheck //test fixture
			w.Write([]byte(listingPage))
		}),
	)
	t.Cleanup(ts.Close)

	return ts
}

func TestGetEntries(t *testing.T) {
	ts := newDirectoryServer(t)
	client := directory.New(logging.NewNopLogger())

	entries, err := client.GetEntries(ts.URL)
	require.Nil(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Nordic Steel Works", entries[0].CompanyName)
	assert.Equal(t, "Sweden", entries[0].Country)
	assert.Equal(t, "Raw Materials", entries[0].Category)
	assert.Equal(t, []string{"steel", "sheet metal"}, entries[0].Keywords)

	assert.Equal(t, "Pacific Components Ltd", entries[1].CompanyName)
	assert.Empty(t, entries[1].Keywords)
}

func TestSearch(t *testing.T) {
	ts := newDirectoryServer(t)
	client := directory.New(logging.NewNopLogger())

	entries, err := client.Search(ts.URL, "steel")
	require.Nil(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Nordic Steel Works", entries[0].CompanyName)
}

func TestGetEntriesUnreachable(t *testing.T) {
	client := directory.New(logging.NewNopLogger())

	_, err := client.GetEntries("http://127.0.0.1:1/listing")
	assert.NotNil(t, err)
}
