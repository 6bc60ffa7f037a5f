package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smash/pkg/cerr"
)

func TestParseEmptyLine(t *testing.T) {
	cmdList, err := Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, cmdList)
}

func TestParseSingleCommand(t *testing.T) {
	cmdList, err := Parse([]string{"echo", "hi"})
	require.NoError(t, err)
	require.Len(t, cmdList.Commands, 1)
	assert.Equal(t, []string{"echo", "hi"}, cmdList.Commands[0].Args)
	assert.False(t, cmdList.Commands[0].Background)
}

func TestParseTrailingBackground(t *testing.T) {
	cmdList, err := Parse([]string{"sleep", "100", "&"})
	require.NoError(t, err)
	require.Len(t, cmdList.Commands, 1)
	assert.True(t, cmdList.Commands[0].Background)
	assert.Equal(t, []string{"sleep", "100"}, cmdList.Commands[0].Args)
}

func TestParseAndChain(t *testing.T) {
	cmdList, err := Parse([]string{"echo", "a", "&&", "echo", "b"})
	require.NoError(t, err)
	require.Len(t, cmdList.Commands, 2)
	assert.Equal(t, []string{"echo", "a"}, cmdList.Commands[0].Args)
	assert.Equal(t, []string{"echo", "b"}, cmdList.Commands[1].Args)
}

func TestParseAndChainWithBackgroundTail(t *testing.T) {
	cmdList, err := Parse([]string{"echo", "a", "&&", "sleep", "5", "&"})
	require.NoError(t, err)
	require.Len(t, cmdList.Commands, 2)
	assert.False(t, cmdList.Commands[0].Background)
	assert.True(t, cmdList.Commands[1].Background)
}

func TestParseLeadingAndIsError(t *testing.T) {
	_, err := Parse([]string{"&&", "echo", "a"})
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.Parse))
}

func TestParseTrailingAndIsError(t *testing.T) {
	_, err := Parse([]string{"echo", "a", "&&"})
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.Parse))
}

func TestParseEmptySegmentIsError(t *testing.T) {
	_, err := Parse([]string{"echo", "a", "&&", "&&", "echo", "b"})
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.Parse))
}

func TestParseStrayAmpersandIsError(t *testing.T) {
	_, err := Parse([]string{"echo", "&", "a"})
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.Parse))
}

func TestStripTrailingBackground(t *testing.T) {
	assert.Equal(t, "sleep 100", StripTrailingBackground("sleep 100 &"))
	assert.Equal(t, "echo a && echo b", StripTrailingBackground("echo a && echo b"))
	assert.Equal(t, "echo a &&", StripTrailingBackground("echo a &&"))
}
