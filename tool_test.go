package webtools

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/deepnoodle-ai/wonton/schema"
)

// mockTypedTool is a simple typed tool for testing
type mockTypedTool struct {
	name        string
	description string
	schema      *schema.Schema
	lastInput   mockInput
}

type mockInput struct {
	Name  string `json:"name,omitempty"`
	Value int    `json:"value,omitempty"`
}

func (m *mockTypedTool) Name() string {
	return m.name
}

func (m *mockTypedTool) Description() string {
	return m.description
}

func (m *mockTypedTool) Schema() *schema.Schema {
	return m.schema
}

func (m *mockTypedTool) Annotations() *ToolAnnotations {
	return nil
}

func (m *mockTypedTool) Call(ctx context.Context, input mockInput) (*ToolResult, error) {
	m.lastInput = input
	return NewToolResultText("ok"), nil
}

func (m *mockTypedTool) PreviewCall(ctx context.Context, input mockInput) *ToolCallPreview {
	return &ToolCallPreview{Summary: fmt.Sprintf("mock %s", input.Name)}
}

func TestTypedToolAdapter_ConvertInput_NilInput(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter[mockInput](tool)

	// Call with nil input - should not error
	result, err := adapter.Call(context.Background(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.False(t, result.IsError)
}

func TestTypedToolAdapter_ConvertInput_RawJSON(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter[mockInput](tool)

	result, err := adapter.Call(context.Background(), json.RawMessage(`{"name":"a","value":3}`))
	assert.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "a", tool.lastInput.Name)
	assert.Equal(t, 3, tool.lastInput.Value)
}

func TestTypedToolAdapter_ConvertInput_Bytes(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter[mockInput](tool)

	result, err := adapter.Call(context.Background(), []byte(`{"name":"b"}`))
	assert.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "b", tool.lastInput.Name)
}

func TestTypedToolAdapter_ConvertInput_Typed(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter[mockInput](tool)

	// Already-typed input is passed through without a JSON round-trip
	result, err := adapter.Call(context.Background(), mockInput{Name: "c", Value: 7})
	assert.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "c", tool.lastInput.Name)
	assert.Equal(t, 7, tool.lastInput.Value)
}

func TestTypedToolAdapter_ConvertInput_InvalidJSON(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter[mockInput](tool)

	result, err := adapter.Call(context.Background(), json.RawMessage(`{not json`))
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestTypedToolAdapter_PreviewCall(t *testing.T) {
	tool := &mockTypedTool{
		name:        "test",
		description: "test tool",
	}
	adapter := ToolAdapter[mockInput](tool)

	preview := adapter.PreviewCall(context.Background(), json.RawMessage(`{"name":"x"}`))
	assert.NotNil(t, preview)
	assert.Equal(t, "mock x", preview.Summary)
}

func TestToolResult_WithDisplay(t *testing.T) {
	result := NewToolResultText("hello").WithDisplay("Said hello")
	assert.Equal(t, "Said hello", result.Display)
	assert.Len(t, result.Content, 1)
	assert.Equal(t, "hello", result.Content[0].Text)
}
