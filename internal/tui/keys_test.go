package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func collectKeys(groups ...[]key.Binding) []string {
	var keys []string
	for _, g := range groups {
		for _, b := range g {
			keys = append(keys, b.Keys()...)
		}
	}
	return keys
}

func containsKey(keys []string, want string) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func TestListKeys_ContainsExpected(t *testing.T) {
	// Given: the list key map
	km := ListKeyMap()
	allKeys := collectKeys(km.FullHelp()...)

	// Then: navigation, toggle, view mode and form keys are present
	expected := []string{"up", "down", " ", "1", "2", "a", "+", "tab", "?", "q"}
	for _, want := range expected {
		if !containsKey(allKeys, want) {
			t.Errorf("ListKeyMap missing key %q, got %v", want, allKeys)
		}
	}
}

func TestFormKeys_ContainsExpected(t *testing.T) {
	// Given: the form key map
	km := FormKeyMap()
	allKeys := collectKeys(km.ShortHelp())

	// Then: field navigation, submit and cancel keys are present
	expected := []string{"tab", "shift+tab", "enter", "esc", "ctrl+c"}
	for _, want := range expected {
		if !containsKey(allKeys, want) {
			t.Errorf("FormKeyMap missing key %q, got %v", want, allKeys)
		}
	}
}

func TestFormKeys_QuitIsNotPrintable(t *testing.T) {
	// Given: the form key map
	km := FormKeyMap()

	// Then: q is left for typing into the inputs
	if containsKey(km.Quit.Keys(), "q") {
		t.Error("form Quit must not bind q")
	}
}
