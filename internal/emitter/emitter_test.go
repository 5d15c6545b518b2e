package emitter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	require.NoError(t, c.SendText("하나"))
	require.NoError(t, c.SendBackspace(1))
	require.NoError(t, c.SendText("늘"))
	require.Equal(t, "하늘", c.String())

	require.NoError(t, c.SendBackspace(10), "over-retraction clamps at empty")
	require.Equal(t, "", c.String())
}

func TestWriterUTF8(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, WriterOptions{})
	require.NoError(t, err)

	require.NoError(t, w.SendText("한글"))
	require.Equal(t, "", buf.String(), "nothing reaches dst before Flush")
	require.NoError(t, w.Flush())
	require.Equal(t, "한글", buf.String())

	require.NoError(t, w.Flush(), "flushing an empty buffer writes nothing")
	require.Equal(t, "한글", buf.String())
}

func TestWriterBackspaceEditsPending(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, WriterOptions{})
	require.NoError(t, err)

	require.NoError(t, w.SendText("한"))
	require.NoError(t, w.SendBackspace(1))
	require.NoError(t, w.SendText("하니"))
	require.NoError(t, w.Close())
	require.Equal(t, "하니", buf.String())
}

func TestWriterEUCKR(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, WriterOptions{Encoding: "euc-kr"})
	require.NoError(t, err)

	require.NoError(t, w.SendText("한글"))
	require.NoError(t, w.Flush())
	require.Equal(t, []byte{0xC7, 0xD1, 0xB1, 0xDB}, buf.Bytes())
}

func TestWriterNFC(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, WriterOptions{Normalize: true})
	require.NoError(t, err)

	// Conjoining jamo sequence for 간 composes to the precomposed syllable.
	require.NoError(t, w.SendText("간"))
	require.NoError(t, w.Flush())
	require.Equal(t, "간", buf.String())
}

func TestWriterUnknownEncoding(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, WriterOptions{Encoding: "shift-jis"})
	require.Error(t, err)
}
