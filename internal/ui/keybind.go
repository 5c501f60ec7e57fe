package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps key sequences to Commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC g d" for SPC then g then d.
// Single keys: "1", "tab", "esc", "ctrl+c", "enter".
type KeybindRegistry struct {
	bindings      map[string]Command
	descriptions  map[string]string
	sectionFilter map[string][]Section // nil/empty = applies everywhere
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:      make(map[string]Command),
		descriptions:  make(map[string]string),
		sectionFilter: make(map[string][]Section),
	}
}

// Bind registers a sequence for cmd in every section.
func (r *KeybindRegistry) Bind(seq string, cmd Command, desc string) {
	r.BindIn(seq, cmd, desc)
}

// BindIn registers a sequence for cmd, active only in the listed sections.
// With no sections the binding applies everywhere. Rebinding a sequence
// replaces the previous command.
func (r *KeybindRegistry) BindIn(seq string, cmd Command, desc string, sections ...Section) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(sections) > 0 {
		r.sectionFilter[n] = sections
	} else {
		delete(r.sectionFilter, n)
	}
}

// Lookup returns the command bound to seq in section.
func (r *KeybindRegistry) Lookup(seq string, section Section) (Command, bool) {
	n := normalizeSeq(seq)
	cmd, ok := r.bindings[n]
	if !ok || cmd == CmdNone || !r.appliesTo(n, section) {
		return CmdNone, false
	}
	return cmd, true
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel names first-level leader keys that open a submenu.
var submenuLabel = map[string]string{
	"g": "Go to",
	"c": "Contact",
}

// LeaderHints returns the next keys available after currentSeq, with labels.
// An empty currentSeq means "just pressed SPC".
func (r *KeybindRegistry) LeaderHints(currentSeq string, section Section) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == CmdNone || !strings.HasPrefix(seq, prefix) || !r.appliesTo(seq, section) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		next := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			next = parts[0]
		}
		if r.HasPrefix(prefix + next) {
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		out[next] = r.describe(seq)
	}
	return out
}

// SectionHints returns single-key (non-leader) bindings for section.
func (r *KeybindRegistry) SectionHints(section Section) map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == CmdNone || strings.HasPrefix(seq, "SPC") || !r.appliesTo(seq, section) {
			continue
		}
		if _, ok := r.descriptions[seq]; !ok {
			continue
		}
		out[seq] = r.describe(seq)
	}
	return out
}

func (r *KeybindRegistry) describe(seq string) string {
	if d, ok := r.descriptions[seq]; ok && d != "" {
		return d
	}
	return r.bindings[seq].String()
}

func (r *KeybindRegistry) appliesTo(seq string, section Section) bool {
	sections, ok := r.sectionFilter[seq]
	if !ok || len(sections) == 0 {
		return true
	}
	for _, s := range sections {
		if s == section {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // tea.KeyMsg.String() of the leader, " " for space
	LeaderSeq     string   // "SPC"
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg in section. Returns (consumed, cmd).
// If consumed is true the key belongs to the keybind system and must not reach views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, section Section) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c, ok := h.Registry.Lookup(seq, section); ok {
			h.reset()
			return true, c.Cmd()
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c, ok := h.Registry.Lookup(keyToSeqPart(s), section); ok {
		return true, c.Cmd()
	}
	return false, nil
}

// CurrentSeq is the partial leader sequence typed so far, or "".
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// KeyMap implements help.KeyMap over the leader hints for the current
// section and partial sequence.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	section    Section
}

// NewKeyMap creates a KeyMap for the given handler and section.
func NewKeyMap(keyHandler *KeyHandler, section Section) help.KeyMap {
	return &KeyMap{registry: keyHandler.Registry, keyHandler: keyHandler, section: section}
}

// ShortHelp returns one binding per next key, sorted, plus esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	currentSeq := ""
	if km.keyHandler != nil && len(km.keyHandler.Buffer) > 1 {
		currentSeq = km.keyHandler.CurrentSeq()
	}
	hints := km.registry.LeaderHints(currentSeq, km.section)
	if len(hints) == 0 {
		return nil
	}
	return append(sortedBindings(hints), key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
}

// FullHelp returns the short help as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

func sortedBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}

// DefaultKeybinds returns the app's bindings.
func DefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", CmdQuit, "")
	reg.Bind("q", CmdQuit, "quit")
	reg.Bind("SPC q", CmdQuit, "Quit")

	reg.Bind("SPC g h", CmdGoHome, "Home")
	reg.Bind("SPC g w", CmdGoHowItWorks, "How it works")
	reg.Bind("SPC g d", CmdGoDashboard, "Dashboard")
	reg.Bind("SPC g a", CmdGoAbout, "About")

	reg.Bind("SPC f", CmdGetForecast, "Get your forecast")
	reg.Bind("SPC e", CmdOpenEstimator, "Estimate yield")
	reg.Bind("SPC x", CmdComingSoon, "Explore AI features")
	reg.Bind("SPC s", CmdComingSoon, "Get started")

	reg.Bind("SPC c e", CmdContactEmail, "Email")
	reg.Bind("SPC c g", CmdContactGitHub, "GitHub")
	reg.Bind("SPC c l", CmdContactLinkedIn, "LinkedIn")

	reg.BindIn("enter", CmdGetForecast, "get your forecast", SectionHome)
	reg.BindIn("w", CmdGoHowItWorks, "how it works", SectionHome)
	reg.BindIn("l", CmdComingSoon, "learn more", SectionHowItWorks)

	reg.BindIn("1", CmdTabYield, "yield", SectionDashboard)
	reg.BindIn("2", CmdTabPest, "pests", SectionDashboard)
	reg.BindIn("3", CmdTabWeather, "weather", SectionDashboard)
	reg.BindIn("4", CmdTabRecommendations, "advice", SectionDashboard)
	reg.BindIn("tab", CmdNextTab, "", SectionDashboard)
	reg.BindIn("shift+tab", CmdPrevTab, "", SectionDashboard)
	reg.BindIn("right", CmdFocusNext, "", SectionDashboard)
	reg.BindIn("left", CmdFocusPrev, "", SectionDashboard)
	reg.BindIn("e", CmdOpenEstimator, "estimate", SectionDashboard)

	reg.BindIn("m", CmdContactEmail, "email us", SectionAbout)
	return reg
}
