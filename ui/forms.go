package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

func FormGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block font-medium"), g.Text(labelText)),
		input,
	)
}

// SelectFormGroup renders a labelled select whose options are also their values.
func SelectFormGroup(labelText, name string, options []string, selected string) g.Node {
	nodes := make([]g.Node, 0, len(options))
	for _, o := range options {
		attrs := []g.Node{Value(o), g.Text(o)}
		if o == selected {
			attrs = append(attrs, Selected())
		}
		nodes = append(nodes, Option(attrs...))
	}

	return FormGroup(labelText, name,
		Select(
			ID(name),
			Name(name),
			Class("w-full p-2 border rounded"),
			g.Group(nodes),
		),
	)
}

// Checkbox renders a toggle submitted as name=on when checked.
func Checkbox(name string, label string, checked bool, attrs ...g.Node) g.Node {
	inputAttrs := []g.Node{
		Type("checkbox"),
		Name(name),
		Value("on"),
		ID(name),
	}
	if checked {
		inputAttrs = append(inputAttrs, Checked())
	}
	inputAttrs = append(inputAttrs, attrs...)

	return Div(
		Class("flex items-center space-x-2"),
		Input(inputAttrs...),
		Label(For(name), g.Text(label)),
	)
}
