package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

type buttonVariant string

const (
	variantPrimary buttonVariant = "bg-blue-500 hover:bg-blue-600"
	variantDanger  buttonVariant = "bg-red-500 hover:bg-red-600"
)

// actionButton renders a plain button in the given colour variant.
func actionButton(label string, variant buttonVariant, attrs ...g.Node) g.Node {
	nodes := []g.Node{
		Type("button"),
		Class("px-4 py-2 rounded inline-block text-white " + string(variant)),
	}
	nodes = append(nodes, attrs...)
	nodes = append(nodes, g.Text(label))
	return Button(nodes...)
}

// adminAction issues an htmx request and swaps the result into the admin
// section content.
func adminAction(label string, variant buttonVariant, request g.Node) g.Node {
	return actionButton(label, variant,
		request,
		hx.Target("#admin-section-content"),
		hx.Swap("innerHTML"),
	)
}
