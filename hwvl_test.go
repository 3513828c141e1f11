package hwvl

import (
	"math/bits"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Known-good digests. Any change to these is a compatibility break.
var golden = []struct {
	text   string
	width  uint
	digest string
}{
	{"The quick brown fox jumps over t", 32, `76(N:LKNMMMF;9>;9;;::.#"$$$$##""`},
	{"abcdefghijklmnopqrstuvwxyz012345", 32, `=;}VTdeddc^Z]^]\\\[XUVUUUU#!!!!!`},
	{"hello", 32, `1/d1*54655555555555421110*'(&%%"`},
	{"hello world", 8, `4.cEFGF.`},
	{"X", 1, `y`},
	{"ab", 1, `%`},
	{"hi", 2, `++`},
	{"hello", 3, `/#h`},
	{"The quick brown fox jumps over the lazy dog", 32, `93_:7A@@???<657656665.(()(((('&$`},
	{"héllo wörld ✓", 16, `UEp!!!!!!!!!!!!!`},
	{"@@@@", 4, `aaaa`},
	{"a", 32, `qqaA5;;5;511..++))''&&%%$$$$####`},
	{"aaaa", 4, `$$$$`},
}

func TestSum_Golden(t *testing.T) {
	for _, g := range golden {
		assert.Equal(t, g.digest, Sum(g.text, g.width), "Sum(%q, %d)", g.text, g.width)
	}
}

func TestSum_Degenerate(t *testing.T) {
	assert.Equal(t, "", Sum("", 32))
	assert.Equal(t, "", Sum("", 1))
	assert.Equal(t, "", Sum("X", 0))
	assert.Equal(t, "", Sum32(""))
}

func TestSum_WidthAndAlphabet(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		text := randomText(r, 1+r.Intn(100))
		width := uint(1 + r.Intn(64))
		sum := Sum(text, width)
		require.Len(t, []rune(sum), int(width))
		require.Len(t, sum, int(width), "digest characters are single bytes")
		for _, c := range sum {
			require.True(t, c >= '!' && c <= '~', "character %q of %q out of range", c, sum)
		}
	}
}

func TestSum_WidthLimit(t *testing.T) {
	assert.PanicsWithValue(t, "invalid input: block width", func() { Sum("abc", ^uint(0)) })
	assert.PanicsWithValue(t, "invalid input: block width", func() { Sum("abc", MaxWidth+1) })
	assert.PanicsWithValue(t, "invalid input: block width", func() { New(MaxWidth + 1) })
	assert.NotPanics(t, func() { New(MaxWidth) })
}

func TestSum_Deterministic(t *testing.T) {
	text := "determinism is the whole point"
	first := Sum32(text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Sum32(text))
	}
}

func TestSum_Padding(t *testing.T) {
	assert.Equal(t, Sum("hello"+strings.Repeat("@", 27), 32), Sum("hello", 32))
	assert.Equal(t, Sum("hello w@", 4), Sum("hello w", 4))
	assert.Equal(t, Sum("abcdefgh", 4), Sum("abcdefgh", 4), "multiples of the width are not padded")
}

func TestSum_SingleColumn(t *testing.T) {
	for _, text := range []string{"X", "ab", "\x00", "zzzzzzzz"} {
		assert.Len(t, Sum(text, 1), 1)
	}
	/* A zero code point must not trip the zero-divisor fallback in a one-wide block. */
	assert.Equal(t, "!", Sum("\x00", 1))
}

func TestDiffuse_BlockIndependence(t *testing.T) {
	a, b := []rune("0123456789abcdef"), []rune("fedcba9876543210")
	ab, ba := split(append(append([]rune{}, a...), b...), 16), split(append(append([]rune{}, b...), a...), 16)
	dab, dba := diffuseAll(ab, 16), diffuseAll(ba, 16)
	assert.Equal(t, dab[0], dba[1])
	assert.Equal(t, dab[1], dba[0])
	assert.Equal(t, Sum(string(a)+string(b), 16), Sum(string(b)+string(a), 16),
		"column means do not depend on block order")
}

func TestSum_ManyBlocksMatchesSerial(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 40)
	old := threads
	threads = 1
	serial := Sum(text, 16)
	threads = old
	assert.Equal(t, serial, Sum(text, 16))
}

// TestSum_Avalanche records the mean share of differing digest bits when one input character
// changes. The figure is logged for comparison between revisions, never asserted.
func TestSum_Avalanche(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const trials = 500
	var total float64
	for i := 0; i < trials; i++ {
		text := []rune(randomText(r, 16))
		mod := append([]rune{}, text...)
		last := len(mod) - 1
		mod[last] = (mod[last]+1)%printableRange + printableStart
		h1, h2 := Sum32(string(text)), Sum32(string(mod))
		var diff int
		for j := 0; j < len(h1); j++ {
			diff += bits.OnesCount8(h1[j] ^ h2[j])
		}
		total += float64(diff) / float64(len(h1)*8) * 100
	}
	t.Logf("mean avalanche over %d trials: %.2f%%", trials, total/trials)
}

func BenchmarkSum32(b *testing.B) {
	text := strings.Repeat("x", 1<<10)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum32(text)
	}
}

func randomText(r *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[r.Intn(len(alphabet))])
	}
	return sb.String()
}
