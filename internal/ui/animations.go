package ui

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Animation describes an entrance animation for the host animation
// library: tween Selector from From to To. With a ScrollTrigger the tween
// waits until the trigger element scrolls into view.
type Animation struct {
	Selector string         `json:"selector"`
	From     map[string]any `json:"from"`
	To       map[string]any `json:"to"`
	Scroll   *ScrollTrigger `json:"scrollTrigger,omitempty"`
}

// ScrollTrigger starts an animation when Trigger crosses Start.
type ScrollTrigger struct {
	Trigger       string `json:"trigger"`
	Start         string `json:"start"`
	ToggleActions string `json:"toggleActions"`
}

func onScroll(trigger, start string) *ScrollTrigger {
	return &ScrollTrigger{Trigger: trigger, Start: start, ToggleActions: "play none none none"}
}

func sectionTitleAnimation(section string) Animation {
	return Animation{
		Selector: section + " .section-title",
		From:     map[string]any{"y": 50, "opacity": 0},
		To:       map[string]any{"y": 0, "opacity": 1, "duration": 0.7, "ease": "expo.out"},
		Scroll:   onScroll(section, "top 80%"),
	}
}

// DefaultAnimations are the page's entrance animations.
var DefaultAnimations = []Animation{
	{
		Selector: ".hero-title span",
		From:     map[string]any{"y": 60, "rotateX": -40, "opacity": 0},
		To:       map[string]any{"y": 0, "rotateX": 0, "opacity": 1, "duration": 0.8, "stagger": 0.1, "ease": "expo.out", "delay": 0.3},
	},
	{
		Selector: ".hero-subtitle",
		From:     map[string]any{"y": 30, "opacity": 0},
		To:       map[string]any{"y": 0, "opacity": 1, "duration": 0.6, "ease": "expo.out", "delay": 0.7},
	},
	{
		Selector: ".hero-desc",
		From:     map[string]any{"y": 30, "opacity": 0},
		To:       map[string]any{"y": 0, "opacity": 1, "duration": 0.6, "ease": "expo.out", "delay": 0.85},
	},
	{
		Selector: ".hero-cta",
		From:     map[string]any{"scale": 0.8, "opacity": 0},
		To:       map[string]any{"scale": 1, "opacity": 1, "duration": 0.5, "ease": "elastic.out(1, 0.5)", "delay": 1},
	},
	{
		Selector: ".hero-avatar",
		From:     map[string]any{"rotateY": -30, "scale": 0.8, "opacity": 0},
		To:       map[string]any{"rotateY": 0, "scale": 1, "opacity": 1, "duration": 1, "ease": "expo.out", "delay": 0.6},
	},
	sectionTitleAnimation(".about-section"),
	sectionTitleAnimation(".skills-section"),
	sectionTitleAnimation(".projects-section"),
	sectionTitleAnimation(".contact-section"),
	{
		Selector: ".about-text",
		From:     map[string]any{"y": 40, "opacity": 0},
		To:       map[string]any{"y": 0, "opacity": 1, "duration": 0.6, "stagger": 0.1, "ease": "expo.out"},
		Scroll:   onScroll(".about-section", "top 70%"),
	},
	{
		Selector: ".skill-card",
		From:     map[string]any{"scale": 0, "rotate": -10, "opacity": 0},
		To:       map[string]any{"scale": 1, "rotate": 0, "opacity": 1, "duration": 0.4, "stagger": 0.05, "ease": "elastic.out(1, 0.5)"},
		Scroll:   onScroll(".skills-grid", "top 80%"),
	},
	{
		Selector: ".project-card",
		From:     map[string]any{"scale": 0.9, "rotateX": 15, "opacity": 0},
		To:       map[string]any{"scale": 1, "rotateX": 0, "opacity": 1, "duration": 0.6, "stagger": 0.1, "ease": "expo.out"},
		Scroll:   onScroll(".projects-grid", "top 80%"),
	},
	{
		Selector: ".contact-info",
		From:     map[string]any{"x": -30, "opacity": 0},
		To:       map[string]any{"x": 0, "opacity": 1, "duration": 0.5, "stagger": 0.1, "ease": "expo.out"},
		Scroll:   onScroll(".contact-section", "top 70%"),
	},
	{
		Selector: ".contact-form",
		From:     map[string]any{"scale": 0.95, "opacity": 0},
		To:       map[string]any{"scale": 1, "opacity": 1, "duration": 0.7, "ease": "expo.out"},
		Scroll:   onScroll(".contact-section", "top 70%"),
	},
}

// AnimationsScript embeds anims as a JSON data block for the page script.
// encoding/json escapes '<' and '>', so the payload cannot close the tag.
func AnimationsScript(anims []Animation) g.Node {
	data, err := json.Marshal(anims)
	if err != nil {
		data = []byte("[]")
	}
	return Script(ID("animations"), Type("application/json"), g.Raw(string(data)))
}
