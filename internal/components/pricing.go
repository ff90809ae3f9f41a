package components

import (
	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/ui"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Pricing(p content.Pricing, s ui.State) g.Node {
	return Section(
		ID(ui.SectionPricing),
		Class("py-16"),
		Div(
			Class("container mx-auto px-4"),
			SectionHeading(p.Title, ""),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-8 max-w-4xl mx-auto"),
				g.Group(g.Map(p.Plans, func(plan content.Plan) g.Node {
					return Div(
						Class("rounded-2xl bg-white p-8 shadow-lg"),
						H3(Class("font-bold text-2xl"), g.Text(plan.Name)),
						P(
							Class("mt-4"),
							Span(Class("font-bold text-4xl"), g.Text(plan.Price)),
							Span(Class("text-gray-500"), g.Text(plan.Period)),
						),
						Ul(
							Class("mt-6 space-y-3"),
							g.Group(g.Map(plan.Features, func(f string) g.Node {
								return Li(Class("flex items-center gap-2"), Icon("lucide:check", "size-5 text-emerald-500"), g.Text(f))
							})),
						),
						A(
							Href(sectionHref(s, ui.SectionUpload)),
							Class("mt-8 block rounded-xl bg-sky-600 py-3 text-center font-semibold text-white hover:bg-sky-700"),
							g.Text(p.Choose),
						),
					)
				})),
			),
		),
	)
}

// FAQList renders the questions; only the entry selected in s is expanded.
func FAQList(faq content.FAQ, s ui.State) g.Node {
	items := make([]g.Node, 0, len(faq.Items))
	for i, q := range faq.Items {
		open := s.FAQOpen(i)
		items = append(items, Div(
			Class("rounded-xl bg-white shadow"),
			g.Attr("data-open", boolAttr(open)),
			A(
				Href(s.ToggleFAQ(i).Href("#"+ui.SectionFAQ)),
				Class("flex items-center justify-between p-6 font-semibold"),
				g.Attr("aria-expanded", boolAttr(open)),
				g.Text(q.Question),
				Icon("lucide:chevron-down", "size-5 transition-transform "+rotate(open)),
			),
			g.If(open, P(Class("px-6 pb-6 text-gray-600"), g.Text(q.Answer))),
		))
	}

	return Section(
		ID(ui.SectionFAQ),
		Class("py-16 bg-white"),
		Div(
			Class("container mx-auto px-4 max-w-3xl"),
			SectionHeading(faq.Title, ""),
			Div(Class("space-y-4"), g.Group(items)),
		),
	)
}

func rotate(open bool) string {
	if open {
		return "rotate-180"
	}
	return ""
}
