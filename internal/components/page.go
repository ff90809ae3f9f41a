package components

import (
	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/studio"
	"github.com/juson/ghibliai/internal/ui"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageData is everything the landing page is rendered from.
type PageData struct {
	Table  content.Table
	UI     ui.State
	Studio studio.State
	Year   int
}

func Page(d PageData) g.Node {
	t := d.Table
	return Layout(
		PageConfig{
			Title:       t.Brand + " - " + t.Hero.Title,
			Description: t.Hero.Subtitle,
			Lang:        string(d.UI.Lang),
		},
		Topbar(t, d.UI),
		Main(
			Hero(t, d.UI),
			Showcase(t.Examples),
			Studio(t.Upload, d.UI, d.Studio),
			Features(t.Features),
			HowItWorks(t.HowItWorks),
			Testimonials(t.Testimonials),
			Pricing(t.Pricing, d.UI),
			FAQList(t.FAQ, d.UI),
		),
		PageFooter(t.Footer, d.Year),
	)
}
