package month

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Scenario  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Scenario:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Scenario")),
		PrevMonth: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "Prev month")),
		NextMonth: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "Next month")),
	}
}
