package domain

import (
	"bytes"
	"fmt"

	m "hqxbrute.dev/pkg/hqxbrute/internal/model"
)

// ResolveLineOffsets scans buf from the start and anchors every line up to
// maxLine. Line 1 is anchored at offset 0; line n > 1 at the newline that
// ends line n-1, searched from one byte past the previous anchor. Existing
// site files are written against this convention.
func ResolveLineOffsets(buf []byte, maxLine int) (m.LineOffsets, error) {
	offsets := m.LineOffsets{1: 0}

	for line := 2; line <= maxLine; line++ {
		from := offsets[line-1] + 1

		idx := -1
		if from < len(buf) {
			idx = bytes.IndexByte(buf[from:], '\n')
		}

		if idx < 0 {
			return nil, fmt.Errorf("%w: line %d referenced but buffer has only %d line(s)", ErrMalformedBuffer, line, line-1)
		}

		offsets[line] = from + idx
	}

	return offsets, nil
}

// ResolveSiteOffsets returns the absolute write offset of every site, in
// site order.
func ResolveSiteOffsets(buf []byte, sites m.Sites) ([]int, error) {
	for i, site := range sites {
		if err := validateSite(site); err != nil {
			return nil, fmt.Errorf("site %d: %w", i+1, err)
		}
	}

	lines, err := ResolveLineOffsets(buf, sites.MaxLine())
	if err != nil {
		return nil, err
	}

	offsets := make([]int, len(sites))

	for i, site := range sites {
		offset := lines[site.Line] + site.Column
		if offset >= len(buf) {
			return nil, fmt.Errorf("%w: site %s resolves to offset %d, buffer is %d bytes", ErrMalformedBuffer, site, offset, len(buf))
		}

		offsets[i] = offset
	}

	return offsets, nil
}

func validateSite(site m.Site) error {
	switch {
	case site.Line < 1:
		return fmt.Errorf("%w: line %d", ErrInvalidSite, site.Line)
	case site.Column < 0:
		return fmt.Errorf("%w: column %d", ErrInvalidSite, site.Column)
	case len(site.Alphabet) == 0:
		return fmt.Errorf("%w: empty alphabet at %d:%d", ErrInvalidSite, site.Line, site.Column)
	}

	return nil
}
