package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hqxbrute.dev/pkg/hqxbrute/pkg/binhex"
)

func TestBinHexCodec(t *testing.T) {
	codec := NewBinHexCodec()
	ctx := context.Background()

	data := []byte("The quick brown fox jumps over the lazy dog.\n")

	container, err := codec.EncodeFile(ctx, "fox.txt", data, "\n")
	require.NoError(t, err)

	decoded := codec.Validate(container)
	require.True(t, decoded.Valid)
	assert.Equal(t, "fox.txt", decoded.Name)
	assert.Equal(t, data, decoded.Payload)

	f, err := codec.DecodeFile(ctx, container)
	require.NoError(t, err)
	assert.Equal(t, data, f.Data)
	assert.Empty(t, f.Resource)
}

func TestBinHexCodec_ValidateRejectsDamage(t *testing.T) {
	codec := NewBinHexCodec()

	container, err := codec.EncodeFile(context.Background(), "fox.txt", []byte("some payload worth checking"), "\n")
	require.NoError(t, err)

	assert.False(t, codec.Validate(nil).Valid)
	assert.False(t, codec.Validate([]byte("no container here")).Valid)

	// Swap one armored character for another alphabet character.
	idx := len(binhex.Banner) + 10
	for _, c := range []byte(binhex.Alphabet) {
		if c == container[idx] {
			continue
		}

		damaged := append([]byte(nil), container...)
		damaged[idx] = c

		assert.False(t, codec.Validate(damaged).Valid, "replacement %q validated", c)

		break
	}
}

func TestBinHexCodec_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	codec := NewBinHexCodec()

	_, err := codec.DecodeFile(ctx, []byte(":"))
	require.ErrorIs(t, err, context.Canceled)

	_, err = codec.EncodeFile(ctx, "x", nil, "\n")
	require.ErrorIs(t, err, context.Canceled)
}
