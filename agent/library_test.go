package agent

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/genai"
)

// echoFunc is a minimal Function that repeats its "text" argument.
type echoFunc struct {
	name string
}

func (e echoFunc) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{Name: e.name, Description: "echoes its input"}
}

func (e echoFunc) Call(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
	text, ok := args["text"].(string)
	if !ok {
		return toolError(id, e.name, fmt.Errorf("invalid text type %T, expected string", args["text"]))
	}
	return toolOutput(id, e.name, text)
}

func TestLibraryDispatch(t *testing.T) {
	lib := NewLibrary([]echoFunc{{name: "echo"}, {name: "shout"}})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: "echo", Args: map[string]any{"text": "hi"}})
	if resp.ID != "1" || resp.Name != "echo" {
		t.Errorf("response identity = %q/%q, want 1/echo", resp.ID, resp.Name)
	}
	if got := resp.Response["output"]; got != "hi" {
		t.Errorf(`Response["output"] = %v, want "hi"`, got)
	}
}

func TestLibraryUnknownFunction(t *testing.T) {
	lib := NewLibrary([]echoFunc{{name: "echo"}})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "2", Name: "transmute", Args: nil})

	msg, ok := resp.Response["error"].(string)
	if !ok {
		t.Fatalf("unknown call should answer with an error, got %v", resp.Response)
	}
	if !strings.Contains(msg, "unknown function transmute") {
		t.Errorf("error = %q, want it to name the function", msg)
	}
}

func TestLibraryToolFailure(t *testing.T) {
	lib := NewLibrary([]echoFunc{{name: "echo"}})

	// A failing tool must answer through the error key, not kill the
	// session.
	resp := lib(context.Background(), &genai.FunctionCall{ID: "3", Name: "echo", Args: map[string]any{"text": 42}})

	msg, ok := resp.Response["error"].(string)
	if !ok {
		t.Fatalf("failed call should answer with an error, got %v", resp.Response)
	}
	if !strings.Contains(msg, "invalid text type int") {
		t.Errorf("error = %q, want the tool's failure", msg)
	}
}

func TestNewDeclaration(t *testing.T) {
	decls := NewDeclaration([]echoFunc{{name: "echo"}, {name: "shout"}})

	if len(decls) != 2 {
		t.Fatalf("len(decls) = %d, want 2", len(decls))
	}
	if decls[0].Name != "echo" || decls[1].Name != "shout" {
		t.Errorf("declarations = %q, %q, want echo, shout", decls[0].Name, decls[1].Name)
	}
}
