package binhex

const runChar = 0x90

// maxRun is the longest run a single run-length code can express.
const maxRun = 255

// compressRuns applies the BinHex run-length encoding. The marker byte is
// always escaped; runs longer than three bytes become byte, marker, count.
func compressRuns(in []byte) []byte {
	out := make([]byte, 0, len(in)+len(in)/8)

	for i := 0; i < len(in); i++ {
		c := in[i]
		if c == runChar {
			out = append(out, runChar, 0)
			continue
		}

		end := i + 1
		for end < len(in) && in[end] == c && end < i+maxRun {
			end++
		}

		if end-i > 3 {
			out = append(out, c, runChar, byte(end-i))
			i = end - 1

			continue
		}

		out = append(out, c)
	}

	return out
}

// expandRuns reverses compressRuns. A marker left dangling at the very end
// of the stream is dropped.
func expandRuns(in []byte) ([]byte, error) {
	out := make([]byte, 0, len(in)+len(in)/4)

	for i := 0; i < len(in); i++ {
		c := in[i]
		if c != runChar {
			out = append(out, c)
			continue
		}

		if i+1 >= len(in) {
			break
		}

		i++

		count := in[i]
		if count == 0 {
			out = append(out, runChar)
			continue
		}

		if len(out) == 0 {
			return nil, ErrOrphanedRun
		}

		last := out[len(out)-1]
		for ; count > 1; count-- {
			out = append(out, last)
		}
	}

	return out, nil
}
