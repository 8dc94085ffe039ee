package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertSlice(t *testing.T) {
	assert.Equal(t, []byte("abXcd"), InsertSlice([]byte("abcd"), 2, 'X'))
	assert.Equal(t, []byte("Xab"), InsertSlice([]byte("ab"), 0, 'X'))
	assert.Equal(t, []byte("abX"), InsertSlice([]byte("ab"), 2, 'X'))
	assert.Equal(t, []byte("X"), InsertSlice([]byte(nil), 0, byte('X')))
}

func TestRemoveSlice(t *testing.T) {
	assert.Equal(t, []byte("ad"), RemoveSlice([]byte("abcd"), 1, 3))
	assert.Equal(t, []byte("bcd"), RemoveSlice([]byte("abcd"), 0, 1))
	assert.Equal(t, []byte("abc"), RemoveSlice([]byte("abcd"), 3, 4))
	assert.Equal(t, []byte("abcd"), RemoveSlice([]byte("abcd"), 2, 2))
}
