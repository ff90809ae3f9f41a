package components

import (
	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/ui"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Label   string
	Section string
}

func navLinks(t content.Table) []navLink {
	return []navLink{
		{t.Nav.Features, ui.SectionFeatures},
		{t.Nav.HowItWorks, ui.SectionHowItWorks},
		{t.Nav.Pricing, ui.SectionPricing},
		{t.Nav.FAQ, ui.SectionFAQ},
	}
}

// sectionHref closes the mobile menu and links to the section anchor.
func sectionHref(s ui.State, section string) string {
	next, anchor := s.ScrollTo(section)
	return next.Href(anchor)
}

func Topbar(t content.Table, s ui.State) g.Node {
	return Nav(
		ID("topbar"),
		g.Attr("data-scrolled", boolAttr(s.Scrolled)),
		Class("fixed inset-x-0 top-0 z-50 transition-all duration-300 data-[scrolled=true]:bg-white/90 data-[scrolled=true]:shadow data-[scrolled=true]:backdrop-blur"),

		Div(
			Class("container mx-auto flex items-center justify-between px-4 py-4"),

			A(Href(s.Href("")), Logo(t.Brand)),

			Ul(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(navLinks(t), func(l navLink) g.Node {
					return Li(A(Href(sectionHref(s, l.Section)), Class("hover:text-sky-600 transition-colors"), g.Text(l.Label)))
				})),
			),

			Div(
				Class("flex items-center gap-3"),
				A(
					ID("language-toggle"),
					Href(s.ToggleLanguage().Href("")),
					Class("inline-flex items-center gap-1 rounded-full border border-gray-200 px-3 py-1 text-sm hover:bg-gray-100"),
					Icon("lucide:globe-2", "size-4"),
					g.Text(t.Label),
				),
				A(
					ID("menu-toggle"),
					Href(s.ToggleMenu().Href("")),
					Class("md:hidden p-2"),
					g.Attr("aria-expanded", boolAttr(s.MenuOpen)),
					g.If(s.MenuOpen, Icon("lucide:x", "size-6")),
					g.If(!s.MenuOpen, Icon("lucide:menu", "size-6")),
				),
			),
		),

		g.If(s.MenuOpen,
			Ul(
				ID("mobile-menu"),
				Class("md:hidden bg-white shadow-lg px-4 py-2"),
				g.Group(g.Map(navLinks(t), func(l navLink) g.Node {
					return Li(A(Href(sectionHref(s, l.Section)), Class("block py-2"), g.Text(l.Label)))
				})),
			),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
