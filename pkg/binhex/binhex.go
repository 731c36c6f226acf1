// Package binhex implements the BinHex 4.0 container: a header fork, a data
// fork and a resource fork, each followed by a CRC-16, run-length encoded
// and armored with a 64-character alphabet between two ':' markers.
package binhex

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Banner is the conventional first line of a BinHex 4.0 file.
const Banner = "(This file must be converted with BinHex 4.0)"

const (
	lineLen    = 64
	maxNameLen = 63
	headerRest = 1 + 4 + 4 + 2 + 4 + 4 // version, type, creator, flags, data and resource lengths
)

var (
	// ErrNoData reports input without a ':' start marker.
	ErrNoData = errors.New("binhex: no binhex data found")
	// ErrIllegalChar reports a character outside the BinHex alphabet.
	ErrIllegalChar = errors.New("binhex: illegal character")
	// ErrOrphanedRun reports a run-length code with nothing to repeat.
	ErrOrphanedRun = errors.New("binhex: orphaned run-length code at start")
	// ErrTruncated reports a stream that ends inside a fork.
	ErrTruncated = errors.New("binhex: premature end of data")
	// ErrBadLength reports a negative fork length in the header.
	ErrBadLength = errors.New("binhex: invalid fork length")
	// ErrNameTooLong reports a file name that does not fit the header.
	ErrNameTooLong = errors.New("binhex: file name too long")
	// ErrCRC is matched by every *CRCError.
	ErrCRC = errors.New("binhex: CRC error")
)

// CRCError reports a checksum mismatch in one fork.
type CRCError struct {
	Fork     string
	Computed uint16
	Read     uint16
}

func (e *CRCError) Error() string {
	return fmt.Sprintf("binhex: CRC error in %s fork, computed %#04x, read %#04x", e.Fork, e.Computed, e.Read)
}

// Is lets errors.Is(err, ErrCRC) match.
func (e *CRCError) Is(target error) bool {
	return target == ErrCRC
}

// File is a decoded BinHex container.
type File struct {
	Name     string
	Type     [4]byte
	Creator  [4]byte
	Flags    uint16
	Data     []byte
	Resource []byte
}

var unknownCode = [4]byte{'?', '?', '?', '?'}

// NewFile builds a File for plain data the way a non-Mac host would: type
// TEXT when the first 512 bytes hold no NUL, creator unknown, and the first
// ':' in the name replaced by '-'.
func NewFile(name string, data []byte) *File {
	f := &File{
		Name:    strings.Replace(name, ":", "-", 1),
		Type:    unknownCode,
		Creator: unknownCode,
		Data:    data,
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}

	if bytes.IndexByte(head, 0) < 0 {
		f.Type = [4]byte{'T', 'E', 'X', 'T'}
	}

	return f
}

// Decode decodes a container and verifies all three fork checksums.
func Decode(b []byte) (*File, error) {
	r, f, err := decodeHeaderAndData(b)
	if err != nil {
		return nil, err
	}

	rsrc, err := r.read(r.rlen)
	if err != nil {
		return nil, err
	}

	if err := r.checkCRC("resource"); err != nil {
		return nil, err
	}

	f.Resource = rsrc

	return f, nil
}

// DecodeData decodes the header and data fork and verifies their
// checksums. The resource fork is not read.
func DecodeData(b []byte) (*File, error) {
	_, f, err := decodeHeaderAndData(b)

	return f, err
}

func decodeHeaderAndData(b []byte) (*forkReader, *File, error) {
	packed, err := decode6(b)
	if err != nil {
		return nil, nil, err
	}

	stream, err := expandRuns(packed)
	if err != nil {
		return nil, nil, err
	}

	r := &forkReader{b: stream}

	f, err := r.readHeader()
	if err != nil {
		return nil, nil, err
	}

	data, err := r.read(r.dlen)
	if err != nil {
		return nil, nil, err
	}

	if err := r.checkCRC("data"); err != nil {
		return nil, nil, err
	}

	f.Data = data

	return r, f, nil
}

type forkReader struct {
	b    []byte
	pos  int
	crc  uint16
	dlen int
	rlen int
}

func (r *forkReader) read(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.b) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.pos, len(r.b)-r.pos)
	}

	p := r.b[r.pos : r.pos+n]
	r.pos += n
	r.crc = CRC(r.crc, p)

	return p, nil
}

func (r *forkReader) checkCRC(fork string) error {
	if r.pos+2 > len(r.b) {
		return fmt.Errorf("%w: missing %s fork CRC", ErrTruncated, fork)
	}

	read := binary.BigEndian.Uint16(r.b[r.pos:])
	r.pos += 2

	computed := r.crc
	r.crc = 0

	if read != computed {
		return &CRCError{Fork: fork, Computed: computed, Read: read}
	}

	return nil
}

func (r *forkReader) readHeader() (*File, error) {
	nameLen, err := r.read(1)
	if err != nil {
		return nil, err
	}

	name, err := r.read(int(nameLen[0]))
	if err != nil {
		return nil, err
	}

	rest, err := r.read(headerRest)
	if err != nil {
		return nil, err
	}

	if err := r.checkCRC("header"); err != nil {
		return nil, err
	}

	f := &File{
		Name:  string(name),
		Flags: binary.BigEndian.Uint16(rest[9:11]),
	}
	copy(f.Type[:], rest[1:5])
	copy(f.Creator[:], rest[5:9])

	dlen := int32(binary.BigEndian.Uint32(rest[11:15]))
	rlen := int32(binary.BigEndian.Uint32(rest[15:19]))

	if dlen < 0 || rlen < 0 {
		return nil, fmt.Errorf("%w: data %d, resource %d", ErrBadLength, dlen, rlen)
	}

	r.dlen, r.rlen = int(dlen), int(rlen)

	return f, nil
}

type encodeConfig struct {
	eol    string
	banner bool
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

// WithLineEnding sets the line terminator, "\n" by default. Classic Mac
// files use "\r".
func WithLineEnding(eol string) EncodeOption {
	return func(c *encodeConfig) {
		c.eol = eol
	}
}

// WithoutBanner omits the banner line before the data.
func WithoutBanner() EncodeOption {
	return func(c *encodeConfig) {
		c.banner = false
	}
}

// Encode writes f as a BinHex 4.0 container.
func Encode(w io.Writer, f *File, opts ...EncodeOption) error {
	cfg := encodeConfig{eol: "\n", banner: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(f.Name) > maxNameLen {
		return fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(f.Name))
	}

	stream := forkStream(f)
	chars := encode6(compressRuns(stream))

	var out bytes.Buffer
	if cfg.banner {
		out.WriteString(Banner + cfg.eol + cfg.eol)
	}

	out.WriteByte(':')

	// The ':' marker takes the first column of the first line.
	width := lineLen - 1
	for len(chars) >= width {
		out.Write(chars[:width])
		out.WriteString(cfg.eol)
		chars = chars[width:]
		width = lineLen
	}

	out.Write(chars)
	out.WriteString(":" + cfg.eol)

	_, err := w.Write(out.Bytes())

	return err
}

func forkStream(f *File) []byte {
	var b bytes.Buffer

	header := make([]byte, 0, 1+len(f.Name)+headerRest)
	header = append(header, byte(len(f.Name)))
	header = append(header, f.Name...)
	header = append(header, 0)
	header = append(header, f.Type[:]...)
	header = append(header, f.Creator[:]...)
	header = binary.BigEndian.AppendUint16(header, f.Flags)
	header = binary.BigEndian.AppendUint32(header, uint32(len(f.Data)))
	header = binary.BigEndian.AppendUint32(header, uint32(len(f.Resource)))

	for _, fork := range [][]byte{header, f.Data, f.Resource} {
		b.Write(fork)
		_ = binary.Write(&b, binary.BigEndian, CRC(0, fork))
	}

	return b.Bytes()
}
