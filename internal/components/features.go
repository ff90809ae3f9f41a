package components

import (
	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/ui"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Features(features []content.Feature) g.Node {
	return Section(
		ID(ui.SectionFeatures),
		Class("py-16 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(features, func(f content.Feature) g.Node {
					return Div(
						Class("rounded-2xl border border-gray-100 p-8 text-center hover:shadow-lg transition-shadow"),
						Div(
							Class("inline-flex size-16 items-center justify-center rounded-full bg-sky-100 text-sky-600"),
							Icon(f.Icon, "size-8"),
						),
						H3(Class("mt-4 font-semibold text-xl"), g.Text(f.Title)),
						P(Class("mt-2 text-gray-600"), g.Text(f.Description)),
					)
				})),
			),
		),
	)
}

func HowItWorks(hw content.HowItWorks) g.Node {
	return Section(
		ID(ui.SectionHowItWorks),
		Class("py-16"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading(hw.Title, ""),
			Ol(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(g.Map(hw.Steps, func(s content.Step) g.Node {
					return Li(
						Class("text-center"),
						Span(
							Class("inline-flex size-12 items-center justify-center rounded-full bg-emerald-500 font-bold text-xl text-white"),
							g.Text(s.Step),
						),
						H3(Class("mt-4 font-semibold text-xl"), g.Text(s.Title)),
						P(Class("mt-2 text-gray-600"), g.Text(s.Description)),
					)
				})),
			),
		),
	)
}

func Testimonials(ts content.Testimonials) g.Node {
	return Section(
		ID("testimonials"),
		Class("py-16 bg-white"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading(ts.Title, ""),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
				g.Group(g.Map(ts.Items, func(t content.Testimonial) g.Node {
					return Figure(
						Class("rounded-2xl bg-sky-50 p-8"),
						Div(
							Class("flex items-center gap-4"),
							Img(Src(t.Image), Alt(t.Name), Class("size-12 rounded-full object-cover")),
							Div(
								P(Class("font-semibold"), g.Text(t.Name)),
								P(Class("text-sm text-gray-500"), g.Text(t.Role)),
							),
						),
						BlockQuote(Class("mt-4 text-gray-700 italic"), g.Text(t.Quote)),
						Div(
							Class("mt-4 flex gap-1 text-yellow-400"),
							g.Group(g.Map([]int{1, 2, 3, 4, 5}, func(int) g.Node { return Icon("lucide:star", "size-4") })),
						),
					)
				})),
			),
		),
	)
}
