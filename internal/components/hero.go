package components

import (
	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/ui"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(t content.Table, s ui.State) g.Node {
	return Header(
		Class("pt-32 pb-16 md:pt-40 md:pb-24"),
		Div(
			Class("container mx-auto px-4 text-center"),
			H1(
				Class("font-bold text-4xl md:text-6xl bg-gradient-to-r from-sky-600 to-emerald-500 bg-clip-text text-transparent"),
				g.Text(t.Hero.Title),
			),
			P(Class("mt-6 text-lg md:text-xl text-gray-600 max-w-3xl mx-auto"), g.Text(t.Hero.Subtitle)),
			A(
				Href(sectionHref(s, ui.SectionUpload)),
				Class("inline-flex items-center gap-2 mt-10 rounded-full bg-sky-600 px-8 py-3 font-semibold text-white hover:bg-sky-700 transition-colors"),
				Icon("lucide:sparkles", "size-5"),
				g.Text(t.Hero.CTA),
			),
		),
	)
}

// Showcase lists the before/after example transformations.
func Showcase(ex content.Examples) g.Node {
	return Section(
		ID("examples"),
		Class("py-16 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading(ex.Title, ex.Subtitle),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(ex.Items, func(e content.Example) g.Node {
					return Div(
						Class("rounded-2xl overflow-hidden shadow-lg"),
						Div(
							Class("grid grid-cols-2"),
							exampleImage(e.Before, ex.Before, e.Title),
							exampleImage(e.After, ex.After, e.Title),
						),
						Div(
							Class("p-6"),
							H3(Class("font-semibold text-xl"), g.Text(e.Title)),
							P(Class("mt-2 text-gray-600"), g.Text(e.Description)),
						),
					)
				})),
			),
		),
	)
}

func exampleImage(src, caption, alt string) g.Node {
	return Figure(
		Class("relative"),
		Img(Src(src), Alt(alt+" - "+caption), Class("h-48 w-full object-cover"), g.Attr("loading", "lazy")),
		FigCaption(Class("absolute bottom-2 left-2 rounded bg-black/60 px-2 py-1 text-xs text-white"), g.Text(caption)),
	)
}
