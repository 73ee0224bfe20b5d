package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wordslab-org/webtools"
)

func TestCallResultText(t *testing.T) {
	result := webtools.NewToolResultText(`{"query":"cats"}`)
	require.Equal(t, `{"query":"cats"}`, callResultText(result))

	empty := &webtools.ToolResult{}
	require.Equal(t, "", callResultText(empty))
}

func TestDecodeResult(t *testing.T) {
	result := webtools.NewToolResultText(`{"query":"cats","response_time":0.5}`)

	var decoded struct {
		Query        string  `json:"query"`
		ResponseTime float64 `json:"response_time"`
	}
	require.NoError(t, decodeResult(result, &decoded))
	require.Equal(t, "cats", decoded.Query)
	require.Equal(t, 0.5, decoded.ResponseTime)

	invalid := webtools.NewToolResultText("not json")
	require.Error(t, decodeResult(invalid, &decoded))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "hello", truncate("hello", 10))
	require.Equal(t, "hello w...", truncate("hello world and more", 10))
	require.Equal(t, "one two", truncate("one\ntwo", 20))
}

func TestDisplayWidth(t *testing.T) {
	require.Equal(t, 5, displayWidth("hello"))
	// Wide CJK characters count as two columns each
	require.Equal(t, 4, displayWidth("日本"))
}
