package lesspass_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/p7r0x7/lesspass"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reference = "dc33d431bce2b01182c613382483ccdb0e2f66482cbba5e9d07dab34acc7eb1e"

func mustEntropy(t testing.TB, s string) lesspass.Entropy {
	t.Helper()
	e, err := lesspass.ParseEntropy(s)
	require.NoError(t, err)
	return e
}

func TestRender_KnownAnswers(t *testing.T) {
	t.Parallel()
	ref := mustEntropy(t, reference)
	var ones lesspass.Entropy
	for i := range ones {
		ones[i] = 0xff
	}

	tests := []struct {
		name    string
		entropy lesspass.Entropy
		cs      lesspass.CharacterSet
		length  int
		want    string
	}{
		{"reference", ref, lesspass.All, 16, "WHLpUL)e00[iHR+w"},
		{"alphanumeric", ref, lesspass.Letters | lesspass.Numbers, 16, "Jyd57m7Ctw2695ks"},
		{"numbers", ref, lesspass.Numbers, 16, "8742368585200667"},
		{"shortest", ref, lesspass.All, 6, "[CqW0H"},
		{"longest lowercase", ref, lesspass.Lowercase, 64, "asmboeketjenuxvfiyumvbmundzzbgpllisjjauhuetfqmbnykmkdcxdaaaaaaaa"},
		{"zero", lesspass.Entropy{}, lesspass.All, 16, "!0Aaaaaaaaaaaaaa"},
		{"all ones", ones, lesspass.All, 16, `hCF%o"jX-SvYf7/y`},
		{"sha384", mustEntropy(t, "b9efeb0e8af7106e4eb22c8b0988b9a62bda0b91cd55df0aa023b9928aef4ec5"), lesspass.All, 16, "bo8KvI2+l/A5-/JL"},
		{"sha512", mustEntropy(t, "e27a0887034252ece239f83363a82d02fa8f6677314fe20cc1fc9aec7d243502"), lesspass.All, 16, "81sPAR0;$J(Kn9.("},
		{"counter 26", mustEntropy(t, "80a18089ffb76d4d52af590bbbcb456a9ef65a8f4800ecd3f5a0e8ad815f4604"), lesspass.All, 16, "](DSRmO$8m5o6>Cv"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			password, err := lesspass.Render(tt.entropy, tt.cs, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.want, password)
		})
	}
}

func TestRender_Coverage(t *testing.T) {
	t.Parallel()
	alphabets := map[lesspass.CharacterSet]string{
		lesspass.Lowercase: lesspass.LowercaseChars,
		lesspass.Uppercase: lesspass.UppercaseChars,
		lesspass.Numbers:   lesspass.NumberChars,
		lesspass.Symbols:   lesspass.SymbolChars,
	}
	entropies := []lesspass.Entropy{{}, mustEntropy(t, reference)}
	for i := range entropies[0] {
		entropies[0][i] = byte(31 * i)
	}

	for cs := lesspass.CharacterSet(1); cs <= lesspass.All; cs++ {
		cs := cs
		t.Run(cs.String(), func(t *testing.T) {
			t.Parallel()
			for _, e := range entropies {
				for length := lesspass.MinLength; length <= lesspass.MaxLength; length++ {
					password, err := lesspass.Render(e, cs, length)
					require.NoError(t, err)
					require.Len(t, password, length)

					for flag, chars := range alphabets {
						if cs.Has(flag) {
							assert.True(t, strings.ContainsAny(password, chars), "%q lacks %v", password, flag)
						} else {
							assert.False(t, strings.ContainsAny(password, chars), "%q contains %v", password, flag)
						}
					}
				}
			}
		})
	}
}

func TestRender_Pure(t *testing.T) {
	t.Parallel()
	e := mustEntropy(t, reference)
	before := e

	first, err := lesspass.Render(e, lesspass.All, 32)
	require.NoError(t, err)
	second, err := lesspass.Render(e, lesspass.All, 32)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, bytes.Equal(before[:], e[:]))
}

func TestRender_InvalidArguments(t *testing.T) {
	t.Parallel()
	e := mustEntropy(t, reference)

	for _, length := range []int{-1, 0, 4, 5, 65, 255} {
		_, err := lesspass.Render(e, lesspass.All, length)
		require.ErrorIs(t, err, lesspass.ErrLength, "length %d", length)
		require.ErrorIs(t, err, lesspass.ErrInvalidArgument, "length %d", length)
	}

	_, err := lesspass.Render(e, 0, 16)
	require.ErrorIs(t, err, lesspass.ErrCharset)
	require.ErrorIs(t, err, lesspass.ErrInvalidArgument)
}
