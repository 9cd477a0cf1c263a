package lesspass_test

import (
	"testing"

	"github.com/p7r0x7/lesspass"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{"empty", "", "b613679a0814d9ec772f95d778c35fc5ff1697c493715653c6c712144292c5ad"},
		{"short key is zero-padded", "foo", "683716d9d7f82eed174c6caebe086ee93376c79d7c61dd670ea00f7f8d6eb0a8"},
		{"block-sized key is used as-is",
			"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
			"081247dc68bb7fafbf13220013a0ab71db8b628d679161f87b5e5bd9e19b1494"},
		{"long key is hashed first",
			"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef" + "larger than SHA256's block size",
			"2e37200ce8a23dd1b6e3c8b7d3b906ab48b6ef97c4d584826a5f6a479c0067ea"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lesspass.Sum(tt.secret).String())
		})
	}
}

func TestFingerprint_Equal(t *testing.T) {
	t.Parallel()
	assert.True(t, lesspass.Sum("foo").Equal(lesspass.Sum("foo")))
	assert.False(t, lesspass.Sum("foo").Equal(lesspass.Sum("bar")))
	assert.Equal(t, byte(104), lesspass.Sum("foo")[0])
}
