package editor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAdvancesCursor(t *testing.T) {
	b := New()
	b.InsertString("hllo")
	b.MoveHome()
	b.MoveRight()
	b.Insert('e')

	assert.Equal(t, "hello", b.String())
	assert.Equal(t, 2, b.Cursor())
}

func TestBackspaceThreeTimes(t *testing.T) {
	b := New()
	b.InsertString("hello")
	for i := 0; i < 3; i++ {
		b.DeleteBackward()
	}

	assert.Equal(t, "he", b.String())
	assert.Equal(t, 2, b.Cursor())
}

func TestDeleteBackwardAtStartIsNoop(t *testing.T) {
	b := New()
	b.DeleteBackward()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())

	b.InsertString("abc")
	b.MoveHome()
	b.DeleteBackward()
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 0, b.Cursor())
}

func TestDeleteForward(t *testing.T) {
	b := New()
	b.InsertString("abc")
	b.DeleteForward()
	assert.Equal(t, "abc", b.String(), "no-op at end")

	b.MoveHome()
	b.DeleteForward()
	assert.Equal(t, "bc", b.String())
	assert.Equal(t, 0, b.Cursor())
}

func TestMovesSaturate(t *testing.T) {
	b := New()
	b.MoveLeft()
	b.MoveRight()
	assert.Equal(t, 0, b.Cursor())

	b.InsertString("ab")
	b.MoveRight()
	assert.Equal(t, 2, b.Cursor())
	b.MoveLeft()
	b.MoveLeft()
	b.MoveLeft()
	assert.Equal(t, 0, b.Cursor())
	b.MoveEnd()
	assert.Equal(t, 2, b.Cursor())
}

func TestMultibyteRunesUseRuneIndices(t *testing.T) {
	b := New()
	b.InsertString("héllo 日本")
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, 8, b.Cursor())

	b.MoveLeft()
	b.DeleteBackward()
	assert.Equal(t, "héllo 本", b.String())
	assert.Equal(t, "héllo ", b.Before())
	assert.Equal(t, "本", b.After())

	b.MoveHome()
	b.MoveRight()
	b.DeleteForward()
	assert.Equal(t, "hllo 本", b.String())
}

func TestClear(t *testing.T) {
	b := New()
	b.InsertString("query")
	b.MoveLeft()
	b.Clear()

	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())
	assert.Equal(t, 0, b.Len())
}

func TestCursorStaysInBoundsUnderRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	runes := []rune{'a', 'z', ' ', 'é', '日', '🎮'}

	b := New()
	for i := 0; i < 5000; i++ {
		before := b.Len()
		switch rng.Intn(8) {
		case 0, 1:
			b.Insert(runes[rng.Intn(len(runes))])
			require.Equal(t, before+1, b.Len())
		case 2:
			atStart := b.Cursor() == 0
			b.DeleteBackward()
			if atStart {
				require.Equal(t, before, b.Len())
			}
		case 3:
			b.DeleteForward()
		case 4:
			b.MoveLeft()
		case 5:
			b.MoveRight()
		case 6:
			if rng.Intn(2) == 0 {
				b.MoveHome()
			} else {
				b.MoveEnd()
			}
		case 7:
			if rng.Intn(20) == 0 {
				b.Clear()
			}
		}

		require.GreaterOrEqual(t, b.Cursor(), 0)
		require.LessOrEqual(t, b.Cursor(), b.Len())
		require.Equal(t, b.String(), b.Before()+b.After())
	}
}
