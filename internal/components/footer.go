package components

import (
	"fmt"

	"github.com/juson/ghibliai/internal/content"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(f content.Footer, year int) g.Node {
	return Footer(
		Class("py-8 bg-gray-900 text-gray-300"),
		Div(
			Class("container mx-auto px-4 text-center space-y-2"),
			P(g.Text(fmt.Sprintf("© %d %s. %s", year, f.Owner, f.Rights))),
			P(
				g.Text(f.Contact),
				A(Href("mailto:"+f.Email), Class("text-sky-400 hover:underline"), g.Text(f.Email)),
			),
		),
	)
}
