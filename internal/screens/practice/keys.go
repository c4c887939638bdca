package practice

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Cancel  key.Binding
	Shuffle key.Binding
	Back    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Prev slot"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next slot"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("Enter", "Drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Cancel"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Shuffle"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Back"),
		),
	}
}
