package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(brand string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Icon("lucide:wand-2", "size-6 text-sky-600"),
		Span(
			Class("font-bold text-xl bg-gradient-to-r from-sky-600 to-emerald-500 bg-clip-text text-transparent"),
			g.Text(brand),
		),
	)
}

// Icon renders an iconify glyph such as "lucide:sparkles".
func Icon(name, classes string) g.Node {
	return Span(
		Class("iconify inline-block "+classes),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func SectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-12"),
		H2(Class("font-bold text-3xl sm:text-4xl"), g.Text(title)),
		g.If(subtitle != "", P(Class("mt-3 text-gray-600 max-w-2xl mx-auto"), g.Text(subtitle))),
	)
}
