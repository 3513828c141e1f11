package hwvl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorMod(t *testing.T) {
	assert.Equal(t, int64(3), floorMod(-91, 94))
	assert.Equal(t, int64(0), floorMod(-94, 94))
	assert.Equal(t, int64(5), floorMod(99, 94))
	assert.Equal(t, int64(-89), floorMod(5, -94))
}

func TestCodec(t *testing.T) {
	assert.Equal(t, int64('@'), Encode('@'))
	assert.Equal(t, int64(0x1F600), Encode('😀'))
	assert.Equal(t, '!', Decode(0))
	assert.Equal(t, '~', Decode(93))
	assert.Equal(t, '!', Decode(94))
	assert.Equal(t, '~', Decode(-1))
	assert.Equal(t, 'y', Decode(88))
	for v := int64(-500); v < 500; v++ {
		c := Decode(v)
		assert.True(t, c >= '!' && c <= '~')
	}
}

func TestSplit(t *testing.T) {
	blocks := split([]rune("abcde"), 3)
	assert.Equal(t, [][]float64{{'a', 'b', 'c'}, {'d', 'e', '@'}}, blocks)
	assert.Len(t, split([]rune("abcdef"), 3), 2)
	assert.Equal(t, 0, padding(6, 3))
	assert.Equal(t, 31, padding(1, 32))
}

func TestSmooth(t *testing.T) {
	assert.Equal(t, []float64{1.5, 2.5, 2}, smooth([]float64{1, 2, 3}))
	assert.Equal(t, []float64{7}, smooth([]float64{7}))
}

func TestRotate(t *testing.T) {
	v, tmp := []float64{1, 2, 3, 4, 5}, make([]float64, 5)
	rotate(v, tmp, 2)
	assert.Equal(t, []float64{4, 5, 1, 2, 3}, v)
	rotate(v, tmp, 5)
	assert.Equal(t, []float64{4, 5, 1, 2, 3}, v)
	rotate(v, tmp, -2)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, v)
}

func TestMix(t *testing.T) {
	v := []float64{2, 3, 4, 0, 0}
	mix(v, 32)
	assert.Equal(t, []float64{1.5, 32, 32, 0, 0}, v)
}

func TestAggregate(t *testing.T) {
	/* 97.5 and 98.5 both round to 98. */
	assert.Equal(t, []int64{98, 98}, aggregate([][]float64{{97, 98}, {98, 99}}, 2))
	assert.Equal(t, "y", assemble([]int64{88}))
}
