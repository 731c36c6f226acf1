package binhex

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressRuns(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"empty", nil, []byte{}},
		{"short run kept literal", []byte{7, 7, 7}, []byte{7, 7, 7}},
		{"long run", []byte{7, 7, 7, 7, 7}, []byte{7, runChar, 5}},
		{"marker escaped", []byte{runChar}, []byte{runChar, 0}},
		{"marker run escaped per byte", []byte{runChar, runChar}, []byte{runChar, 0, runChar, 0}},
		{"run capped", bytes.Repeat([]byte{1}, 300), []byte{1, runChar, 255, 1, runChar, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compressRuns(tt.in))
		})
	}
}

func TestExpandRuns(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    []byte
		wantErr error
	}{
		{"literal", []byte{1, 2, 3}, []byte{1, 2, 3}, nil},
		{"run", []byte{'a', runChar, 4}, []byte("aaaa"), nil},
		{"escaped marker", []byte{runChar, 0}, []byte{runChar}, nil},
		{"run after escaped marker", []byte{runChar, 0, runChar, 3}, []byte{runChar, runChar, runChar}, nil},
		{"dangling marker", []byte{'x', runChar}, []byte{'x'}, nil},
		{"orphaned run", []byte{runChar, 3}, nil, ErrOrphanedRun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandRuns(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSixBit_RoundTrip(t *testing.T) {
	for n := range 10 {
		in := make([]byte, n)
		for i := range in {
			in[i] = byte(i*37 + n)
		}

		armored := append([]byte(":"), encode6(in)...)
		armored = append(armored, ':')

		out, err := decode6(armored)
		require.NoError(t, err)
		assert.Equal(t, in, out, "length %d", n)
	}
}

func TestDecode6_SkipsLineBreaks(t *testing.T) {
	chars := encode6([]byte("line breaks"))
	armored := []byte("banner\r\n:")
	armored = append(armored, chars[:5]...)
	armored = append(armored, '\r', '\n')
	armored = append(armored, chars[5:]...)
	armored = append(armored, ':')

	out, err := decode6(armored)
	require.NoError(t, err)
	assert.Equal(t, "line breaks", string(out))
}
