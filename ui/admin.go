package ui

import (
	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/parts-pile/car-sales/dataset"
)

// AdminSectionPage renders the admin section navigation and the current section content.
func AdminSectionPage(activeSection string, content g.Node) g.Node {
	return Div(
		ID("admin-section"),
		H1(Class("text-4xl font-bold mb-8"), g.Text("Admin Dashboard")),
		Div(Class("text-gray-600 text-sm mb-6"), g.Text("Manage the dataset cache.")),
		adminNavigation(activeSection),
		Div(
			ID("admin-section-content"),
			Class("mt-6"),
			content,
		),
	)
}

// adminNavigation renders the tab navigation for the admin page
func adminNavigation(activeSection string) g.Node {
	sections := []struct {
		name  string
		label string
		href  string
	}{
		{"dataset-cache", "Dataset Cache", "/admin/dataset-cache"},
	}

	var tabNodes []g.Node
	for _, section := range sections {
		var classes string
		if activeSection == section.name {
			classes = "px-4 py-2 text-sm font-medium text-blue-600 border-b-2 border-blue-600"
		} else {
			classes = "px-4 py-2 text-sm font-medium text-gray-500 hover:text-gray-700 hover:border-gray-300 border-b-2 border-transparent"
		}

		tabNodes = append(tabNodes,
			A(
				Href(section.href),
				Class(classes),
				hx.Get(section.href),
				hx.Target("#admin-section"),
				hx.Swap("outerHTML"),
				g.Text(section.label),
			),
		)
	}

	return Div(
		Class("border-b border-gray-200 mb-6"),
		Nav(
			Class("flex space-x-8"),
			g.Group(tabNodes),
		),
	)
}

// Generic cache stats panel component
func CacheStatsPanel(title string, stats map[string]interface{}, clearEndpoint, refreshEndpoint string) g.Node {
	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(title)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-4"),
			statCard("Hits", "%d", stats["hits"]),
			statCard("Misses", "%d", stats["misses"]),
			statCard("Hit Rate", "%.1f%%", stats["hit_rate"]),
			statCard("Sets", "%d", stats["sets"]),
			statCard("Memory Used", "%.0f KB", stats["memory_used_kb"]),
			statCard("Total Added", "%.0f KB", stats["total_added_kb"]),
			statCard("Total Evicted", "%.0f KB", stats["total_evicted_kb"]),
			statCard("Current Items", "%d", stats["current_items"]),
			statCard("Source Reads", "%d", stats["loads"]),
		),
		Div(
			Class("flex gap-4"),
			adminAction("Clear Cache", variantDanger, hx.Post(clearEndpoint)),
			adminAction("Refresh Stats", variantPrimary, hx.Get(refreshEndpoint)),
		),
	)
}

func statCard(label, format string, value interface{}) g.Node {
	return Div(
		Class("bg-white p-3 rounded border"),
		Strong(g.Text(label+": ")),
		g.Textf(format, value),
	)
}

// AdminDatasetCacheSection shows the cache statistics and, when a dataset is
// cached, what was loaded.
func AdminDatasetCacheSection(stats map[string]interface{}, ds *dataset.Dataset) g.Node {
	return Div(
		Class("space-y-4"),
		Div(Class("text-lg font-medium text-gray-900"), g.Text("Dataset Cache Management")),
		Div(Class("text-gray-600 text-sm"), g.Text("Clearing the cache makes the next request read the source again.")),
		CacheStatsPanel("Cache Statistics", stats, "/api/admin/dataset-cache/clear", "/api/admin/dataset-cache/refresh"),
		datasetInfo(stats, ds),
	)
}

func datasetInfo(stats map[string]interface{}, ds *dataset.Dataset) g.Node {
	if ds == nil {
		return Div(
			Class("bg-white p-4 rounded border text-gray-600"),
			g.Textf("No dataset cached for %v.", stats["source"]),
		)
	}

	var warnings []g.Node
	for _, w := range ds.Warnings {
		warnings = append(warnings, Li(g.Text(w.Error())))
	}

	return Div(
		Class("bg-white p-4 rounded border space-y-1 text-sm"),
		infoRow("Source", ds.Source),
		infoRow("Load ID", ds.LoadID),
		infoRow("Loaded", humanize.Time(ds.LoadedAt)),
		infoRow("Rows", humanize.Comma(int64(ds.Len()))),
		infoRow("Unreadable numeric cells", humanize.Comma(int64(ds.SkippedCells))),
		g.If(len(warnings) > 0, Ul(Class("list-disc list-inside text-yellow-800"), g.Group(warnings))),
	)
}

func infoRow(label, value string) g.Node {
	return Div(
		Strong(g.Text(label+": ")),
		g.Text(value),
	)
}
