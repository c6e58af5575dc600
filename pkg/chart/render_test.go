package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Line ")
	require.NoError(t, err)
	assert.Equal(t, KindLine, k)

	_, err = ParseKind("scatter")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRenderPNGProducesImage(t *testing.T) {
	points := []Point{{"Q1", 5000}, {"Q2", 10000}, {"Q3", 7500}}

	for _, kind := range []Kind{KindBar, KindLine, KindPie} {
		t.Run(string(kind), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderPNG(&buf, kind, "Revenue", points))

			img, err := png.Decode(&buf)
			require.NoError(t, err)
			assert.Greater(t, img.Bounds().Dx(), 0)
		})
	}
}

func TestRenderDegenerateRanges(t *testing.T) {
	cases := map[string][]Point{
		"single point": {{"Only", 3}},
		"flat":         {{"a", 7}, {"b", 7}, {"c", 7}},
		"zeros":        {{"a", 0}, {"b", 0}},
		"negative":     {{"a", -4}, {"b", -4}},
		"mixed sign":   {{"a", -2}, {"b", 5}, {"c", 0}},
	}

	for name, points := range cases {
		for _, kind := range []Kind{KindBar, KindLine} {
			t.Run(name+"/"+string(kind), func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, RenderPNG(&buf, kind, "Series", points))

				_, err := png.Decode(&buf)
				require.NoError(t, err)
			})
		}
	}
}

func TestValueRange(t *testing.T) {
	lo, hi := valueRange([]Point{{"a", 3}, {"b", -1}, {"c", 9}})
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 9.0, hi)
}

func TestRenderRejectsEmptyData(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, RenderPNG(&buf, KindBar, "x", nil), ErrNoData)
	assert.ErrorIs(t, RenderPNG(&buf, KindPie, "x", []Point{{"a", 0}, {"b", -2}}), ErrNoData)
	assert.ErrorIs(t, RenderPNG(&buf, Kind("radar"), "x", []Point{{"a", 1}}), ErrUnknownKind)
}
