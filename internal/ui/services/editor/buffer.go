// Package editor holds the single-line query buffer edited in insert mode.
package editor

// Buffer is a rune slice with a cursor in [0, len].
// All positions are rune indices.
type Buffer struct {
	text   []rune
	cursor int
}

// New returns an empty buffer
func New() *Buffer {
	return &Buffer{}
}

// Insert puts r at the cursor and advances it
func (b *Buffer) Insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
}

// InsertString inserts each rune of s in order
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// DeleteBackward removes the rune before the cursor
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

// DeleteForward removes the rune under the cursor
func (b *Buffer) DeleteForward() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *Buffer) MoveRight() {
	if b.cursor < len(b.text) {
		b.cursor++
	}
}

func (b *Buffer) MoveHome() {
	b.cursor = 0
}

func (b *Buffer) MoveEnd() {
	b.cursor = len(b.text)
}

// Clear empties the buffer
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.cursor = 0
}

func (b *Buffer) String() string {
	return string(b.text)
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

func (b *Buffer) Len() int {
	return len(b.text)
}

// Before returns the text left of the cursor
func (b *Buffer) Before() string {
	return string(b.text[:b.cursor])
}

// After returns the text from the cursor on
func (b *Buffer) After() string {
	return string(b.text[b.cursor:])
}
