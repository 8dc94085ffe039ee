package input

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLineFrom(t *testing.T, keys string, cfg Config) (string, error) {
	t.Helper()
	cfg.Source = strings.NewReader(keys)
	return New(cfg).ReadLine()
}

func TestReadLinePlainText(t *testing.T) {
	got, err := readLineFrom(t, "echo hi\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "echo hi", got)
}

func TestReadLineNewlineCommits(t *testing.T) {
	got, err := readLineFrom(t, "ls\n", Config{})
	require.NoError(t, err)
	assert.Equal(t, "ls", got)
}

func TestReadLineBackspace(t *testing.T) {
	got, err := readLineFrom(t, "abd\x7fc\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestReadLineCtrlH(t *testing.T) {
	got, err := readLineFrom(t, "ab\x08\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestReadLineArrowsAndInsert(t *testing.T) {
	// Type "ac", move left, insert "b".
	got, err := readLineFrom(t, "ac\x1b[Db\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestReadLineHomeEndKeys(t *testing.T) {
	got, err := readLineFrom(t, "bc\x1b[Ha\x1b[Fd\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)
}

func TestReadLineDeleteKey(t *testing.T) {
	// Delete removes the byte under the cursor.
	got, err := readLineFrom(t, "abc\x1b[H\x1b[3~\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "bc", got)
}

func TestReadLineDeleteKeyAtEnd(t *testing.T) {
	got, err := readLineFrom(t, "abc\x1b[3~\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestReadLineCtrlAE(t *testing.T) {
	got, err := readLineFrom(t, "bc\x01a\x05d\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)
}

func TestReadLineKillToEnd(t *testing.T) {
	got, err := readLineFrom(t, "hello\x1b[D\x1b[D\x0b\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "hel", got)
}

func TestReadLineKillToStart(t *testing.T) {
	got, err := readLineFrom(t, "hello\x1b[D\x1b[D\x15\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "lo", got)
}

func TestReadLineKillWord(t *testing.T) {
	got, err := readLineFrom(t, "one two\x17\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "one ", got)
}

func TestReadLineCtrlCAborts(t *testing.T) {
	var out bytes.Buffer
	got, err := readLineFrom(t, "doomed\x03", Config{Out: &out})
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Contains(t, out.String(), "^C")
}

func TestReadLineCtrlDOnEmptyIsEOF(t *testing.T) {
	_, err := readLineFrom(t, "\x04", Config{})
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineCtrlDOnTextIgnored(t *testing.T) {
	got, err := readLineFrom(t, "ab\x04c\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestReadLineSourceEOF(t *testing.T) {
	_, err := readLineFrom(t, "partial", Config{})
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineUnknownSequenceIgnored(t *testing.T) {
	got, err := readLineFrom(t, "ab\x1b[5~c\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

type staticCompleter struct {
	text   string
	cursor int
	calls  int
}

func (c *staticCompleter) Complete(line string, cursor int) (string, int) {
	c.calls++
	return c.text, c.cursor
}

func TestReadLineTabInvokesCompleter(t *testing.T) {
	comp := &staticCompleter{text: "echo ", cursor: 5}
	got, err := readLineFrom(t, "ec\t\r", Config{Completer: comp})
	require.NoError(t, err)
	assert.Equal(t, "echo ", got)
	assert.Equal(t, 1, comp.calls)
}

func TestReadLineTabWithoutCompleter(t *testing.T) {
	got, err := readLineFrom(t, "ec\t\r", Config{})
	require.NoError(t, err)
	assert.Equal(t, "ec", got)
}

func TestReadLineCtrlLClearsScreen(t *testing.T) {
	cleared := false
	got, err := readLineFrom(t, "ls\x0c\r", Config{Clear: func() { cleared = true }})
	require.NoError(t, err)
	assert.Equal(t, "ls", got)
	assert.True(t, cleared)
}

func TestReadLineRedrawAfterEveryMutation(t *testing.T) {
	var snapshots []string
	redraw := func(line string, cursor int) {
		snapshots = append(snapshots, line)
		if cursor < 0 || cursor > len(line) {
			t.Fatalf("redraw with cursor %d beyond line %q", cursor, line)
		}
	}
	_, err := readLineFrom(t, "ab\x7f\r", Config{Redraw: redraw})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "ab", "a"}, snapshots)
}
