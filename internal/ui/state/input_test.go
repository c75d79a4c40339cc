package state

import (
	"reflect"
	"testing"
)

func TestTypeBackspaceSubmit(t *testing.T) {
	app := NewApp(DefaultItems())
	app.AppendRunes('h')
	app.AppendRunes('i')
	if app.Input != "hi" {
		t.Fatalf("expected input hi, got %q", app.Input)
	}
	app.Backspace()
	if app.Input != "h" {
		t.Fatalf("expected input h, got %q", app.Input)
	}
	if got := app.Submit(); got != "h" {
		t.Fatalf("expected submitted h, got %q", got)
	}
	if !reflect.DeepEqual(app.Messages, []string{"h"}) {
		t.Fatalf("expected messages [h], got %#v", app.Messages)
	}
	if app.Input != "" {
		t.Fatalf("expected input cleared, got %q", app.Input)
	}
}

func TestSubmitEmptyInputAppendsEmptyMessage(t *testing.T) {
	app := NewApp(nil)
	app.Submit()
	if len(app.Messages) != 1 || app.Messages[0] != "" {
		t.Fatalf("expected single empty message, got %#v", app.Messages)
	}
}

func TestBackspaceOnEmptyInputIsNoOp(t *testing.T) {
	app := NewApp(nil)
	if app.Backspace() {
		t.Fatalf("expected no change on empty input")
	}
	if app.Input != "" {
		t.Fatalf("expected empty input, got %q", app.Input)
	}
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	app := NewApp(nil)
	app.AppendRunes([]rune("héé")...)
	app.Backspace()
	if app.Input != "hé" {
		t.Fatalf("expected hé, got %q", app.Input)
	}
}

func TestAppendRunesSkipsControl(t *testing.T) {
	app := NewApp(nil)
	if app.AppendRunes('\x1b') {
		t.Fatalf("expected control rune to be ignored")
	}
	if !app.AppendRunes('a', '\t', 'b') {
		t.Fatalf("expected printable runes to be appended")
	}
	if app.Input != "ab" {
		t.Fatalf("expected ab, got %q", app.Input)
	}
}

func TestHistoryIsNewestFirst(t *testing.T) {
	app := NewApp(nil)
	app.Messages = []string{"a", "b"}
	want := []string{"0: b", "1: a"}
	if got := app.History(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
