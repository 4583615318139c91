package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{in: "S", want: SizeSmall},
		{in: "M", want: SizeMedium},
		{in: "L", want: SizeLarge},
		{in: "X", want: SizeExtra},
		{in: "s", wantErr: true},
		{in: "XL", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeWeightsStrictlyIncrease(t *testing.T) {
	order := []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtra}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, order[i].Weight(), order[i-1].Weight(),
			"%s must weigh more than %s", order[i], order[i-1])
	}
}

func TestSizeValid(t *testing.T) {
	assert.True(t, SizeSmall.Valid())
	assert.False(t, Size("Q").Valid())
	assert.Zero(t, Size("Q").Weight())
}
