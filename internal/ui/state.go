// Package ui holds the page-level view state of the landing page as a single
// immutable value. Every interaction is a transition returning a new State,
// and the state round-trips through URL query parameters so links can carry
// the next state without client-side scripting.
package ui

import (
	"net/url"
	"strconv"

	"github.com/juson/ghibliai/internal/content"
)

// ScrollThreshold is the vertical offset past which the navigation bar is
// rendered as scrolled.
const ScrollThreshold = 20

// NoFAQ marks that no FAQ entry is expanded.
const NoFAQ = -1

// Section anchors on the landing page.
const (
	SectionFeatures   = "features"
	SectionHowItWorks = "how-it-works"
	SectionPricing    = "pricing"
	SectionFAQ        = "faq"
	SectionUpload     = "upload"
)

type State struct {
	Lang     content.Language
	MenuOpen bool
	OpenFAQ  int
	Scrolled bool
}

func Default() State {
	return State{Lang: content.English, OpenFAQ: NoFAQ}
}

func (s State) ToggleLanguage() State {
	s.Lang = s.Lang.Other()
	return s
}

func (s State) ToggleMenu() State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// ScrollTo closes the mobile menu and returns the anchor to navigate to.
func (s State) ScrollTo(section string) (State, string) {
	s.MenuOpen = false
	return s, "#" + section
}

func (s State) Scroll(y float64) State {
	s.Scrolled = y > ScrollThreshold
	return s
}

// ToggleFAQ expands entry i, or collapses it when it is already expanded.
func (s State) ToggleFAQ(i int) State {
	if s.OpenFAQ == i {
		s.OpenFAQ = NoFAQ
	} else {
		s.OpenFAQ = i
	}
	return s
}

func (s State) FAQOpen(i int) bool {
	return s.OpenFAQ == i
}

// Query encodes the state. Default values are omitted.
func (s State) Query() url.Values {
	v := url.Values{}
	if s.Lang != "" && s.Lang != content.English {
		v.Set("lang", string(s.Lang))
	}
	if s.MenuOpen {
		v.Set("menu", "open")
	}
	if s.OpenFAQ != NoFAQ {
		v.Set("faq", strconv.Itoa(s.OpenFAQ))
	}
	return v
}

// Href builds a same-page link carrying the state and an optional anchor.
func (s State) Href(anchor string) string {
	href := "/"
	if q := s.Query().Encode(); q != "" {
		href += "?" + q
	}
	return href + anchor
}

// FromQuery decodes a state; faqCount bounds the accepted FAQ index.
func FromQuery(v url.Values, faqCount int) State {
	s := Default()
	s.Lang = content.ParseLanguage(v.Get("lang"))
	s.MenuOpen = v.Get("menu") == "open"
	if raw := v.Get("faq"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil && i >= 0 && i < faqCount {
			s.OpenFAQ = i
		}
	}
	return s
}
