package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Layout Components ----

func sectionHeader(title string, helpText string) g.Node {
	nodes := []g.Node{
		H2(Class("text-2xl font-semibold mb-2"), g.Text(title)),
	}
	if helpText != "" {
		nodes = append(nodes,
			P(
				Class("text-sm text-gray-600 mb-2"),
				g.Text(helpText),
			),
		)
	}
	return g.Group(nodes)
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

// InfoNotice is the blue informational box shown in place of an empty chart.
func InfoNotice(message string) g.Node {
	return Div(
		Class("bg-blue-50 border border-blue-200 text-blue-800 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func WarningNotice(message string) g.Node {
	return Div(
		Class("bg-yellow-50 border border-yellow-300 text-yellow-800 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"", // no current path
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
		},
	)
}
