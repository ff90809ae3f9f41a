package components

import (
	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/studio"
	"github.com/juson/ghibliai/internal/ui"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Studio renders the upload/generate widget for st. The form posts to
// /create; the result view replaces the form once a generation succeeded.
func Studio(up content.Upload, s ui.State, st studio.State) g.Node {
	return Section(
		ID(ui.SectionUpload),
		Class("py-16"),
		Div(
			Class("container mx-auto px-4 max-w-3xl"),
			SectionHeading(up.Title, up.Description),
			g.If(st.Phase == studio.Succeeded, studioResult(up, s, st)),
			g.If(st.Phase != studio.Succeeded, studioForm(up, s, st)),
		),
	)
}

func studioForm(up content.Upload, s ui.State, st studio.State) g.Node {
	return FormEl(
		ID("studio-form"),
		Method("post"),
		Action("/create"),
		g.Attr("enctype", "multipart/form-data"),
		g.Attr("data-phase", st.Phase.String()),
		Class("rounded-2xl bg-white p-8 shadow-xl space-y-6"),

		Input(Type("hidden"), Name("lang"), Value(string(s.Lang))),
		Input(Type("hidden"), ID("image-data"), Name("image"), Value(st.PreviewDataURL)),

		Label(
			ID("dropzone"),
			g.Attr("for", "file-input"),
			g.Attr("data-invalid-message", up.InvalidFile),
			Class("flex flex-col items-center justify-center rounded-xl border-2 border-dashed border-gray-300 p-8 text-center cursor-pointer hover:border-sky-500 transition-colors"),
			g.If(st.PreviewDataURL != "",
				Img(ID("preview"), Src(st.PreviewDataURL), Alt(up.Title), Class("max-h-64 rounded-lg object-contain")),
			),
			g.If(st.PreviewDataURL == "",
				Div(
					ID("dropzone-empty"),
					Icon("lucide:upload", "size-12 text-gray-400"),
					P(
						Class("mt-4 text-gray-600"),
						g.Text(up.DropHint+" "),
						Span(Class("text-sky-600 font-semibold"), g.Text(up.Browse)),
					),
				),
			),
			Input(ID("file-input"), Type("file"), Name("file"), g.Attr("accept", "image/*"), Class("sr-only")),
		),

		Textarea(
			ID("prompt"),
			Name("prompt"),
			Placeholder(up.Placeholder),
			g.Attr("rows", "3"),
			Class("w-full rounded-xl border border-gray-300 p-4 focus:border-sky-500 focus:outline-none"),
			g.Text(st.Prompt),
		),

		g.If(st.Err != "",
			P(ID("studio-error"), g.Attr("role", "alert"), Class("rounded-lg bg-red-50 p-3 text-red-600"), g.Text(st.Err)),
		),

		Button(
			ID("generate"),
			Type("submit"),
			g.If(!st.CanSubmit(), Disabled()),
			Class("w-full inline-flex items-center justify-center gap-2 rounded-xl bg-sky-600 py-3 font-semibold text-white hover:bg-sky-700 disabled:cursor-not-allowed disabled:opacity-50"),
			g.If(st.IsGenerating(), g.Group([]g.Node{Icon("lucide:loader-2", "size-5 animate-spin"), g.Text(up.Generating)})),
			g.If(!st.IsGenerating(), g.Group([]g.Node{Icon("lucide:wand-2", "size-5"), g.Text(submitLabel(up, st))})),
		),
	)
}

func submitLabel(up content.Upload, st studio.State) string {
	if st.Phase == studio.Failed {
		return up.TryAgain
	}
	return up.Button
}

func studioResult(up content.Upload, s ui.State, st studio.State) g.Node {
	url, _ := st.Download()
	return Div(
		ID("studio-result"),
		Class("rounded-2xl bg-white p-8 shadow-xl text-center"),
		H3(Class("font-semibold text-2xl"), g.Text(up.ResultTitle)),
		Img(Src(url), Alt(up.ResultTitle), Class("mt-6 w-full rounded-xl object-cover")),
		Div(
			Class("mt-6 flex justify-center gap-4"),
			A(
				ID("download"),
				Href(url),
				g.Attr("download", ""),
				g.Attr("target", "_blank"),
				g.Attr("rel", "noopener"),
				Class("inline-flex items-center gap-2 rounded-xl bg-sky-600 px-6 py-3 font-semibold text-white hover:bg-sky-700"),
				Icon("lucide:download", "size-5"),
				g.Text(up.Download),
			),
			A(
				ID("try-another"),
				Href(s.Href("#"+ui.SectionUpload)),
				Class("inline-flex items-center gap-2 rounded-xl border border-gray-300 px-6 py-3 font-semibold hover:bg-gray-100"),
				g.Text(up.TryAnother),
			),
		),
	)
}
