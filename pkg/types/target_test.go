package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantLoc string
		wantBin int // 0 means no bin
		wantErr bool
	}{
		{name: "bare location", in: "Garage", wantLoc: "Garage"},
		{name: "location with bin", in: "Garage/3", wantLoc: "Garage", wantBin: 3},
		{name: "zero bin rejected", in: "Garage/0", wantErr: true},
		{name: "negative bin rejected", in: "Garage/-1", wantErr: true},
		{name: "non-numeric bin rejected", in: "Garage/three", wantErr: true},
		{name: "too many slashes rejected", in: "a/b/c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLoc, got.Location)
			if tt.wantBin == 0 {
				assert.Nil(t, got.Bin)
			} else {
				require.NotNil(t, got.Bin)
				assert.Equal(t, tt.wantBin, *got.Bin)
			}
		})
	}
}

func TestTargetString(t *testing.T) {
	bin := 2
	assert.Equal(t, "Garage", Target{Location: "Garage"}.String())
	assert.Equal(t, "Garage/2", Target{Location: "Garage", Bin: &bin}.String())
}
