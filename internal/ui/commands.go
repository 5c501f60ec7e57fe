package ui

import tea "github.com/charmbracelet/bubbletea"

// Command is a typed user action. Every key binding and modal button maps to
// exactly one Command; nothing is inferred from on-screen text.
type Command int

const (
	CmdNone Command = iota
	CmdQuit

	// Navigation
	CmdGoHome
	CmdGoHowItWorks
	CmdGoDashboard
	CmdGoAbout
	CmdGetForecast

	// Dashboard
	CmdTabYield
	CmdTabPest
	CmdTabWeather
	CmdTabRecommendations
	CmdNextTab
	CmdPrevTab
	CmdFocusNext
	CmdFocusPrev
	CmdOpenEstimator

	// Modals
	CmdComingSoon
	CmdCloseModal
	CmdNotifyMe

	// Contact
	CmdContactEmail
	CmdContactGitHub
	CmdContactLinkedIn
)

var commandNames = map[Command]string{
	CmdNone:               "none",
	CmdQuit:               "quit",
	CmdGoHome:             "go-home",
	CmdGoHowItWorks:       "go-how-it-works",
	CmdGoDashboard:        "go-dashboard",
	CmdGoAbout:            "go-about",
	CmdGetForecast:        "get-forecast",
	CmdTabYield:           "tab-yield",
	CmdTabPest:            "tab-pest",
	CmdTabWeather:         "tab-weather",
	CmdTabRecommendations: "tab-recommendations",
	CmdNextTab:            "next-tab",
	CmdPrevTab:            "prev-tab",
	CmdFocusNext:          "focus-next",
	CmdFocusPrev:          "focus-prev",
	CmdOpenEstimator:      "open-estimator",
	CmdComingSoon:         "coming-soon",
	CmdCloseModal:         "close-modal",
	CmdNotifyMe:           "notify-me",
	CmdContactEmail:       "contact-email",
	CmdContactGitHub:      "contact-github",
	CmdContactLinkedIn:    "contact-linkedin",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "unknown"
}

// Cmd wraps the command in a tea.Cmd that delivers a CommandMsg.
func (c Command) Cmd() tea.Cmd {
	return func() tea.Msg { return CommandMsg{Command: c} }
}

// tabCommands maps tab-selection commands to their tab.
var tabCommands = map[Command]Tab{
	CmdTabYield:           TabYield,
	CmdTabPest:            TabPest,
	CmdTabWeather:         TabWeather,
	CmdTabRecommendations: TabRecommendations,
}

// sectionCommands maps navigation commands to their section.
var sectionCommands = map[Command]Section{
	CmdGoHome:       SectionHome,
	CmdGoHowItWorks: SectionHowItWorks,
	CmdGoDashboard:  SectionDashboard,
	CmdGoAbout:      SectionAbout,
	CmdGetForecast:  SectionDashboard,
}
