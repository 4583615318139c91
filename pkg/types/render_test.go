package types

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestItemString(t *testing.T) {
	test := Location{LocationID: "loc-1", Name: "Test", NumBins: 4}
	tiny := Location{LocationID: "loc-2", Name: "Tiny", NumBins: 1}

	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "multi-bin location shows the bin",
			item: Item{Location: test, BinNo: 4, Name: "Test item", Size: SizeSmall},
			want: "Test/4: Test item (S)",
		},
		{
			name: "single-bin location contracts to the bare name",
			item: Item{Location: tiny, BinNo: 1, Name: "Pocket knife", Size: SizeMedium},
			want: "Tiny: Pocket knife (M)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.String())
		})
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "Test (4 bins)", Location{Name: "Test", NumBins: 4}.String())
	assert.Equal(t, "Tiny", Location{Name: "Tiny", NumBins: 1}.String())
}

// Golden file pins the rendered listing formats so they cannot drift: the
// browser client and the quickadd echo both rely on them.
func TestRenderedListings_Golden(t *testing.T) {
	test := Location{LocationID: "loc-1", Name: "Test", NumBins: 4}
	huge := Location{LocationID: "loc-2", Name: "Huge", NumBins: 16}
	tiny := Location{LocationID: "loc-3", Name: "Tiny", NumBins: 1}

	items := []Item{
		{Location: huge, BinNo: 6, Name: "Test item", Size: SizeMedium},
		{Location: test, BinNo: 3, Name: "Test item", Size: SizeMedium},
		{Location: test, BinNo: 4, Name: "Test blight'em", Size: SizeMedium},
		{Location: test, BinNo: 4, Name: "Test item", Size: SizeMedium},
		{Location: tiny, BinNo: 1, Name: "Pocket knife", Size: SizeSmall},
	}

	var sb strings.Builder
	for _, loc := range []Location{huge, test, tiny} {
		sb.WriteString(loc.String())
		sb.WriteString("\n")
	}
	for _, item := range items {
		sb.WriteString(item.String())
		sb.WriteString("\n")
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "listings", []byte(sb.String()))
}
