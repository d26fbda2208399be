package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, ds := range All() {
		assert.False(t, seen[ds.ID], "duplicate id %s", ds.ID)
		seen[ds.ID] = true
	}
	assert.Equal(t, 8, Size())
}

func TestByID(t *testing.T) {
	ds := ByID("seifa-2021")
	require.NotNil(t, ds)
	assert.Equal(t, "Socio-Economic Indexes for Areas (SEIFA), Australia, 2021", ds.Title)
	assert.Contains(t, ds.JoinKeys, "SA2_CODE_2021")

	assert.Nil(t, ByID("no-such-dataset"))
}

func TestSearchOrdersByMatchCount(t *testing.T) {
	results := Search([]string{"demographics", "sa2", "population"})
	require.NotEmpty(t, results)
	// census matches all three tags, seifa only two
	assert.Equal(t, "census-2021", results[0].ID)

	for _, ds := range results {
		matched := false
		for _, tag := range ds.Tags {
			if tag == "demographics" || tag == "sa2" || tag == "population" {
				matched = true
			}
		}
		assert.True(t, matched, "dataset %s has no matching tag", ds.ID)
	}
}

func TestSearchNoMatches(t *testing.T) {
	assert.Empty(t, Search([]string{"quantum"}))
}

func TestUseCasesReferenceKnownDatasets(t *testing.T) {
	cases := UseCases()
	require.Len(t, cases, 5)
	for _, uc := range cases {
		for _, id := range uc.DatasetsUsed {
			assert.NotNil(t, ByID(id), "use case %s references unknown dataset %s", uc.ID, id)
		}
	}
}
