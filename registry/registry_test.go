package registry

import (
	"testing"

	"github.com/p7r0x7/hwvl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_KnownVectors(t *testing.T) {
	want := map[string]string{
		"MD5":      "900150983cd24fb0d6963f7d28e17f72",
		"SHA1":     "a9993e364706816aba3e25717850c26c9cd0d89d",
		"SHA224":   "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
		"SHA256":   "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		"SHA384":   "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
		"SHA512":   "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		"BLAKE2b":  "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		"BLAKE2s":  "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982",
		"SHA3_224": "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf",
		"SHA3_256": "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		"SHA3_384": "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25",
		"SHA3_512": "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
	}
	for name, sum := range want {
		a, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, sum, a.Digest.Compute("abc"), name)
	}
}

func TestDefault_EmptyInput(t *testing.T) {
	for name, sum := range map[string]string{
		"BLAKE3": "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		"XXH3":   "2d06800538d394c2",
		"XXH64":  "ef46db3751d8e999",
		"HWVL1":  "",
	} {
		a, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, sum, a.Digest.Compute(""), name)
	}
}

func TestHWVL(t *testing.T) {
	a, err := Lookup("HWVL1")
	require.NoError(t, err)
	assert.Equal(t, hwvl.Sum32("hello"), a.Digest.Compute("hello"))
	assert.Equal(t, "++", HWVL(2).Compute("hi"))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("HWVL2")
	assert.ErrorIs(t, err, ErrUnknown)
	_, err = Select([]string{"MD5", "nope"})
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(Names()))
	assert.Equal(t, "HWVL1", Names()[0])

	some, err := Select([]string{"SHA256", "HWVL1"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "SHA256", some[0].Name)
	assert.Equal(t, "HWVL1", some[1].Name)
}
