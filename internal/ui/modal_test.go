package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func commandOf(t *testing.T, cmd tea.Cmd) Command {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg, ok := cmd().(CommandMsg)
	if !ok {
		t.Fatalf("expected CommandMsg, got %T", cmd())
	}
	return msg.Command
}

func TestComingSoonModal_Keys(t *testing.T) {
	m := NewComingSoonModal()
	if !strings.Contains(m.View(), "Coming soon") {
		t.Errorf("view should contain the title, got:\n%s", m.View())
	}

	for key, want := range map[string]Command{
		"esc":   CmdCloseModal,
		"q":     CmdCloseModal,
		"enter": CmdNotifyMe,
		"n":     CmdNotifyMe,
	} {
		_, cmd := m.Update(keyMsg(key))
		if got := commandOf(t, cmd); got != want {
			t.Errorf("%s: got %v, want %v", key, got, want)
		}
	}

	if _, cmd := m.Update(keyMsg("j")); cmd != nil {
		t.Error("unbound key should do nothing")
	}
}

func TestEstimateModal_SubmitSendsRawInput(t *testing.T) {
	m := NewEstimateModal([]string{"Corn", "Wheat"}, []string{"Iowa, USA", "Kansas, USA"})
	if m.Crop() != "Corn" || m.Region() != "Iowa, USA" {
		t.Fatalf("initial selection = %q/%q", m.Crop(), m.Region())
	}

	// crop field: right cycles the crop
	m.Update(keyMsg("right"))
	// region field: left wraps to the last region
	m.Update(keyMsg("tab"))
	m.Update(keyMsg("left"))
	m.SetPH(" 7.2 ")

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should submit")
	}
	req, ok := cmd().(EstimateRequestMsg)
	if !ok {
		t.Fatalf("expected EstimateRequestMsg, got %T", cmd())
	}
	want := EstimateRequestMsg{Crop: "Wheat", Region: "Kansas, USA", PH: "7.2"}
	if req != want {
		t.Errorf("request = %+v, want %+v", req, want)
	}
}

func TestEstimateModal_TypingIntoPH(t *testing.T) {
	m := NewEstimateModal([]string{"Corn"}, []string{"Iowa, USA"})
	m.SetPH("")
	m.Update(keyMsg("up")) // crop -> ph, wrapping backwards
	m.Update(keyMsg("5"))
	m.Update(keyMsg("."))
	m.Update(keyMsg("8"))

	_, cmd := m.Update(keyMsg("enter"))
	req := cmd().(EstimateRequestMsg)
	if req.PH != "5.8" {
		t.Errorf("PH = %q, want 5.8", req.PH)
	}
}

func TestEstimateModal_EscCloses(t *testing.T) {
	m := NewEstimateModal(nil, nil)
	_, cmd := m.Update(keyMsg("esc"))
	if got := commandOf(t, cmd); got != CmdCloseModal {
		t.Errorf("esc: got %v, want %v", got, CmdCloseModal)
	}
	if m.Crop() != "" || m.Region() != "" {
		t.Error("empty lists should yield empty selections")
	}
}

func TestEstimateModal_Select(t *testing.T) {
	m := NewEstimateModal([]string{"Corn", "Rice"}, []string{"Iowa, USA", "Punjab, India"})
	m.Select("Rice", "Nowhere")
	if m.Crop() != "Rice" || m.Region() != "Iowa, USA" {
		t.Errorf("Select = %q/%q, want Rice/Iowa, USA", m.Crop(), m.Region())
	}
}
