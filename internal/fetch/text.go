package fetch

import (
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidUTF8 is returned by readers from NewTextReader when the input is
// not valid UTF-8.
var ErrInvalidUTF8 = encoding.ErrInvalidUTF8

// NewTextReader returns a reader yielding r in decoded text mode: the bytes are
// validated as UTF-8 and every "\r\n" or lone "\r" terminator becomes "\n".
func NewTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(encoding.UTF8Validator, newlineNormalizer{}))
}

// newlineNormalizer rewrites CRLF and CR line terminators to LF.
type newlineNormalizer struct{ transform.NopResetter }

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c != '\r' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		// a trailing CR may be the first half of CRLF
		if nSrc+1 >= len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = '\n'
		nDst++
		if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
			nSrc += 2
		} else {
			nSrc++
		}
	}
	return nDst, nSrc, nil
}
