package adapter

import (
	"bytes"
	"context"
	"log/slog"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
	"hqxbrute.dev/pkg/hqxbrute/pkg/binhex"
)

// Codec wraps the container format: a cheap validity oracle for the search
// loop plus full decode and encode for the file commands.
type Codec interface {
	// Validate decodes buf and reports whether its header and data fork
	// checksums match. It never fails; a bad buffer is simply not valid.
	Validate(buf []byte) m.Decoded

	// DecodeFile fully decodes a container, verifying every fork.
	DecodeFile(ctx context.Context, content []byte) (*binhex.File, error)

	// EncodeFile armors data as a container named name.
	EncodeFile(ctx context.Context, name string, data []byte, lineEnding string) ([]byte, error)
}

// BinHexCodec implements Codec with BinHex 4.0.
type BinHexCodec struct{}

// NewBinHexCodec constructs a BinHexCodec.
func NewBinHexCodec() *BinHexCodec {
	return &BinHexCodec{}
}

// Validate implements Codec.
func (c *BinHexCodec) Validate(buf []byte) m.Decoded {
	f, err := binhex.DecodeData(buf)
	if err != nil {
		return m.Decoded{}
	}

	return m.Decoded{Valid: true, Payload: f.Data, Name: f.Name}
}

// DecodeFile implements Codec.
func (c *BinHexCodec) DecodeFile(ctx context.Context, content []byte) (*binhex.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := binhex.Decode(content)
	if err != nil {
		slog.Debug("Decode failed", "error", err)
		return nil, err
	}

	return f, nil
}

// EncodeFile implements Codec.
func (c *BinHexCodec) EncodeFile(ctx context.Context, name string, data []byte, lineEnding string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := binhex.Encode(&out, binhex.NewFile(name, data), binhex.WithLineEnding(lineEnding)); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
