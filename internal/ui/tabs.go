package ui

// Tab is one of the four mutually exclusive dashboard views.
type Tab int

const (
	TabYield Tab = iota
	TabPest
	TabWeather
	TabRecommendations
)

// Tabs lists tabs in display order.
var Tabs = []Tab{TabYield, TabPest, TabWeather, TabRecommendations}

// String returns the tab's name as accepted by ParseTab.
func (t Tab) String() string {
	switch t {
	case TabYield:
		return "yield"
	case TabPest:
		return "pest"
	case TabWeather:
		return "weather"
	case TabRecommendations:
		return "recommendations"
	default:
		return "unknown"
	}
}

// Title is the label shown on the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabYield:
		return "Yield Prediction"
	case TabPest:
		return "Pest Risk"
	case TabWeather:
		return "Weather"
	case TabRecommendations:
		return "Recommendations"
	default:
		return "Unknown"
	}
}

// ParseTab maps a tab name to a Tab.
func ParseTab(name string) (Tab, bool) {
	for _, t := range Tabs {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// TabController tracks the active dashboard tab. Exactly one tab is active
// at any time; the zero value has the yield tab active.
type TabController struct {
	active Tab
}

// NewTabController returns a controller with the yield tab active.
func NewTabController() *TabController {
	return &TabController{active: TabYield}
}

// Active returns the active tab.
func (c *TabController) Active() Tab {
	return c.active
}

// SwitchTo activates the named tab. Unknown names are a no-op and return false.
func (c *TabController) SwitchTo(name string) bool {
	t, ok := ParseTab(name)
	if !ok {
		return false
	}
	return c.Select(t)
}

// Select activates t. It returns false if t is not a valid tab.
func (c *TabController) Select(t Tab) bool {
	if t < TabYield || t > TabRecommendations {
		return false
	}
	c.active = t
	return true
}

// Next activates the tab after the active one, wrapping around.
func (c *TabController) Next() Tab {
	c.active = Tabs[(int(c.active)+1)%len(Tabs)]
	return c.active
}

// Prev activates the tab before the active one, wrapping around.
func (c *TabController) Prev() Tab {
	c.active = Tabs[(int(c.active)+len(Tabs)-1)%len(Tabs)]
	return c.active
}
