package components

import (
	"strings"
	"testing"

	"github.com/juson/ghibliai/internal/content"
	"github.com/juson/ghibliai/internal/studio"
	"github.com/juson/ghibliai/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, d PageData) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Page(d).Render(&b))
	return b.String()
}

func pageData(t *testing.T, lang content.Language) PageData {
	t.Helper()
	catalog, err := content.Load()
	require.NoError(t, err)
	s := ui.Default()
	s.Lang = lang
	return PageData{Table: catalog.Get(lang), UI: s, Year: 2024}
}

func TestPageRendersBothLanguages(t *testing.T) {
	tests := []struct {
		lang  content.Language
		title string
		label string
	}{
		{content.English, "Transform Your Photos into Ghibli Magic", "EN"},
		{content.Chinese, "将您的照片转换为吉卜力魔法", "中文"},
	}
	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			html := render(t, pageData(t, tt.lang))
			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.Contains(t, html, `lang="`+string(tt.lang)+`"`)
			assert.Contains(t, html, tt.title)
			assert.Contains(t, html, tt.label)
			for _, id := range []string{ui.SectionFeatures, ui.SectionHowItWorks, ui.SectionPricing, ui.SectionFAQ, ui.SectionUpload} {
				assert.Contains(t, html, `id="`+id+`"`)
			}
			assert.Contains(t, html, "© 2024 Juson.")
			assert.Contains(t, html, "mailto:shoppy.2048@gmail.com")
		})
	}
}

func TestLanguageToggleLink(t *testing.T) {
	html := render(t, pageData(t, content.English))
	assert.Contains(t, html, `id="language-toggle" href="/?lang=zh"`)

	html = render(t, pageData(t, content.Chinese))
	assert.Contains(t, html, `id="language-toggle" href="/"`)
}

func TestMobileMenu(t *testing.T) {
	d := pageData(t, content.English)
	assert.NotContains(t, render(t, d), `id="mobile-menu"`)

	d.UI = d.UI.ToggleMenu()
	html := render(t, d)
	assert.Contains(t, html, `id="mobile-menu"`)
	// Section links close the menu.
	assert.Contains(t, html, `href="/#pricing"`)
}

func TestFAQExpandsSelectedEntry(t *testing.T) {
	d := pageData(t, content.English)
	answers := d.Table.FAQ.Items

	html := render(t, d)
	for _, q := range answers {
		assert.NotContains(t, html, q.Answer)
	}

	d.UI = d.UI.ToggleFAQ(1)
	html = render(t, d)
	assert.Contains(t, html, answers[1].Answer)
	assert.NotContains(t, html, answers[0].Answer)
	assert.Contains(t, html, `href="/#faq"`)
}

func TestScrolledTopbar(t *testing.T) {
	d := pageData(t, content.English)
	assert.Contains(t, render(t, d), `data-scrolled="false"`)
	d.UI = d.UI.Scroll(100)
	assert.Contains(t, render(t, d), `data-scrolled="true"`)
}

func TestStudioStates(t *testing.T) {
	d := pageData(t, content.English)
	up := d.Table.Upload

	t.Run("idle disables submit", func(t *testing.T) {
		html := render(t, d)
		assert.Contains(t, html, `id="studio-form"`)
		assert.Contains(t, html, `type="submit" disabled`)
		assert.Contains(t, html, up.Button)
		assert.NotContains(t, html, `id="studio-result"`)
	})

	t.Run("prompt enables submit", func(t *testing.T) {
		d := d
		d.Studio = studio.State{Prompt: "a castle in the sky"}
		html := render(t, d)
		assert.NotContains(t, html, `type="submit" disabled`)
		assert.Contains(t, html, "a castle in the sky</textarea>")
	})

	t.Run("generating", func(t *testing.T) {
		d := d
		d.Studio = studio.State{Prompt: "x", Phase: studio.Generating}
		html := render(t, d)
		assert.Contains(t, html, up.Generating)
		assert.Contains(t, html, `type="submit" disabled`)
	})

	t.Run("failed", func(t *testing.T) {
		d := d
		d.Studio = studio.State{Prompt: "x", Phase: studio.Failed, Err: up.Error}
		html := render(t, d)
		assert.Contains(t, html, `id="studio-error"`)
		assert.Contains(t, html, up.TryAgain)
	})

	t.Run("succeeded", func(t *testing.T) {
		d := d
		d.Studio = studio.State{Phase: studio.Succeeded, ResultURL: "https://example.com/r.jpg"}
		html := render(t, d)
		assert.Contains(t, html, `id="studio-result"`)
		assert.Contains(t, html, `src="https://example.com/r.jpg"`)
		assert.Contains(t, html, up.Download)
		assert.Contains(t, html, up.TryAnother)
		assert.NotContains(t, html, `id="studio-form"`)
	})

	t.Run("preview", func(t *testing.T) {
		d := d
		d.Studio = studio.State{PreviewDataURL: "data:image/png;base64,AAAA"}
		html := render(t, d)
		assert.Contains(t, html, `id="preview" src="data:image/png;base64,AAAA"`)
	})
}
