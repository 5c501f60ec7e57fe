package ui

// Section is a top-level area of the app, reached from the nav bar.
type Section int

const (
	SectionHome Section = iota
	SectionHowItWorks
	SectionDashboard
	SectionAbout
)

// Sections lists sections in nav-bar order.
var Sections = []Section{SectionHome, SectionHowItWorks, SectionDashboard, SectionAbout}

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionHowItWorks:
		return "How it works"
	case SectionDashboard:
		return "Dashboard"
	case SectionAbout:
		return "About"
	default:
		return "Unknown"
	}
}
