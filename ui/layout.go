package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/parts-pile/car-sales/config"
)

// AppTitle is the page title and main heading of the dashboard.
const AppTitle = "Car Sales Analytics Webapp"

// ---- Page Layout ----

func Page(title string, currentPath string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-8"),
				navigation(currentPath),
				g.Group(content),
			),
		},
	})
}

func navigation(currentPath string) g.Node {
	return Nav(
		Class("mb-8 border-b pb-4 flex items-center justify-between w-full"),
		A(Href("/"), Class("text-xl font-bold"), g.Text(AppTitle)),
		indicator(),
		Div(
			Class("flex gap-4 text-sm"),
			navLink("Dashboard", "/", currentPath == "/"),
			navLink("Admin", "/admin/dataset-cache", currentPath == "/admin/dataset-cache"),
		),
	)
}

func navLink(label, href string, active bool) g.Node {
	class := "text-gray-600 hover:text-gray-900"
	if active {
		class = "text-blue-600 font-semibold"
	}
	return A(Href(href), Class(class), g.Text(label))
}

func indicator() g.Node {
	return Div(
		ID("indicator"),
		Class("htmx-indicator flex items-center gap-2 text-blue-600"),
		Div(
			Class("w-4 h-4 border-2 border-blue-600 border-t-transparent rounded-full animate-spin"),
		),
		g.Text("Loading..."),
	)
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
