package bubble_tea

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestSelector_MoveAndChoose(t *testing.T) {
	m := NewSelector("Please select mode", []string{"send heartbeats", "listen for heartbeats"})

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(Selector)
	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Selector)

	if cmd == nil {
		t.Fatal("expected quit command after enter")
	}
	if m.Choice() != "listen" {
		t.Fatalf("unexpected choice: %q", m.Choice())
	}
}

func TestSelector_CursorStaysInBounds(t *testing.T) {
	m := NewSelector("Please select mode", []string{"send"})

	updated, _ := m.Update(keyMsg("up"))
	m = updated.(Selector)
	updated, _ = m.Update(keyMsg("down"))
	m = updated.(Selector)
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Selector)

	if m.Choice() != "send" {
		t.Fatalf("unexpected choice: %q", m.Choice())
	}
}

func TestSelector_QuitWithoutChoice(t *testing.T) {
	m := NewSelector("Please select mode", []string{"send", "listen"})

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Selector)

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Choice() != "" {
		t.Fatalf("expected empty choice, got %q", m.Choice())
	}
}

func TestSelector_ViewMarksCursor(t *testing.T) {
	m := NewSelector("Please select mode", []string{"send", "listen"})
	view := m.View()
	if !strings.Contains(view, "Please select mode") {
		t.Fatal("placeholder missing from view")
	}
	if !strings.Contains(view, "[ ] send") {
		t.Fatal("options missing from view")
	}
}

func TestTextInput_EscCancels(t *testing.T) {
	m := NewTextInput("Peer host")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	input := updated.(*TextInput)

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !input.Cancelled() {
		t.Fatal("expected input to be cancelled")
	}
}

func TestTextInput_TypedValue(t *testing.T) {
	m := NewTextInput("Peer host")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("127.0.0.1")})
	input := updated.(*TextInput)
	updated, cmd := input.Update(tea.KeyMsg{Type: tea.KeyEnter})
	input = updated.(*TextInput)

	if cmd == nil {
		t.Fatal("expected quit command after enter")
	}
	if input.Cancelled() {
		t.Fatal("unexpected cancellation")
	}
	if input.Value() != "127.0.0.1" {
		t.Fatalf("unexpected value: %q", input.Value())
	}
}
