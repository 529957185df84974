package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeKey(t *testing.T) {
	t.Run("decodes arrow key sequences", func(t *testing.T) {
		assert.Equal(t, EventMoveUp, decodeKey([]byte{27, '[', 'A'}))
		assert.Equal(t, EventMoveDown, decodeKey([]byte{27, '[', 'B'}))
		assert.Equal(t, EventMoveRight, decodeKey([]byte{27, '[', 'C'}))
		assert.Equal(t, EventMoveLeft, decodeKey([]byte{27, '[', 'D'}))
	})

	t.Run("decodes vi movement keys", func(t *testing.T) {
		assert.Equal(t, EventMoveUp, decodeKey([]byte("k")))
		assert.Equal(t, EventMoveDown, decodeKey([]byte("j")))
		assert.Equal(t, EventMoveLeft, decodeKey([]byte("h")))
		assert.Equal(t, EventMoveRight, decodeKey([]byte("l")))
	})

	t.Run("decodes game keys in either case", func(t *testing.T) {
		assert.Equal(t, EventToggleSolution, decodeKey([]byte("s")))
		assert.Equal(t, EventToggleSolution, decodeKey([]byte("S")))
		assert.Equal(t, EventNewMaze, decodeKey([]byte("n")))
		assert.Equal(t, EventNewMaze, decodeKey([]byte("N")))
		assert.Equal(t, EventQuit, decodeKey([]byte("q")))
		assert.Equal(t, EventQuit, decodeKey([]byte("Q")))
	})

	t.Run("control characters quit", func(t *testing.T) {
		assert.Equal(t, EventQuit, decodeKey([]byte{3}))
		assert.Equal(t, EventQuit, decodeKey([]byte{4}))
	})

	t.Run("everything else is ignored", func(t *testing.T) {
		assert.Equal(t, EventNone, decodeKey(nil))
		assert.Equal(t, EventNone, decodeKey([]byte{}))
		assert.Equal(t, EventNone, decodeKey([]byte("x")))
		assert.Equal(t, EventNone, decodeKey([]byte("ss")))
		assert.Equal(t, EventNone, decodeKey([]byte{27, '[', 'Z'}))
	})
}
