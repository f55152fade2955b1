// Package ui renders the portfolio page with gomponents: navigation, hero,
// about, skills, projects, contact and footer sections, plus the contact
// form in whatever state its contact.Snapshot reports.
//
// Animations and icons are delegated to host libraries loaded by the page
// (GSAP, Lucide); this package only emits their descriptors and names.
package ui
