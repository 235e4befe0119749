// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escpos

// splitWords wraps an in-place, already-CP437-transcoded byte buffer to
// printableWidth dots, inserting '\n' before words that would otherwise
// overflow the current line. It returns the horizontal offset, in dots,
// after the last byte of content.
func splitWords(content []byte, curOffset, printableWidth, charSize int) ([]byte, int) {
	if printableWidth <= 0 {
		printableWidth = 1
	}

	newOffset := curOffset
	i := 0
	for i < len(content) {
		switch content[i] {
		case '\n', '\r':
			newOffset = 0
			i++
		case ' ':
			newOffset = (newOffset + charSize) % printableWidth
			i++
		default:
			end := i
			for end < len(content) && !isSplitWhitespace(content[end]) {
				end++
			}
			word := content[i:end]
			wordWidth := len(word) * charSize
			if wordWidth+newOffset > printableWidth {
				content = insertByte(content, i, '\n')
				newOffset = wordWidth % printableWidth
				// the inserted '\n' shifts the trailing whitespace one
				// byte to the right; resume there so it's still accounted
				// for by the ' '/'\n' cases above.
				end++
				i = end
			} else {
				newOffset += wordWidth
				i = end
			}
		}
	}
	return content, newOffset
}

func isSplitWhitespace(b byte) bool {
	return b == '\n' || b == '\r' || b == ' '
}

func insertByte(buf []byte, at int, b byte) []byte {
	buf = append(buf, 0)
	copy(buf[at+1:], buf[at:])
	buf[at] = b
	return buf
}

// advancePlain computes the new offset when word splitting is disabled:
// a plain modular advance with no buffer mutation.
func advancePlain(curOffset, contentLen, printableWidth, charSize int) int {
	if printableWidth <= 0 {
		printableWidth = 1
	}
	return (curOffset + contentLen*charSize) % printableWidth
}
