// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/horizon/models"
)

type profileModel struct {
	route   string
	query   string
	loading bool
	profile *models.ProfileRecord
	spinner spinner.Model
}

func newProfileModel(route, query string) profileModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return profileModel{route: route, query: query, loading: true, spinner: s}
}

func (m profileModel) View() string {
	const hotKeys = "c: copy summary  y: copy email  esc: new search"

	if m.loading {
		return renderPage("PROFILE", m.spinner.View()+" Looking up \""+m.query+"\"...", "esc: new search")
	}
	if m.profile == nil {
		body := "No results found\n\n" +
			"We couldn't find any information for \"" + m.query + "\".\n" +
			"Please try a different search."
		return renderPage("PROFILE", body, "esc: return to search")
	}

	p := m.profile
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.DisplayName()) + "\n")
	var sub []string
	if p.BusinessInfo.JobTitle != "" {
		sub = append(sub, p.BusinessInfo.JobTitle)
	}
	if p.BusinessInfo.Company != "" {
		sub = append(sub, "at "+p.BusinessInfo.Company)
	}
	if loc := p.PrimaryLocation(); loc != "" {
		sub = append(sub, loc)
	}
	b.WriteString(helpStyle.Render(strings.Join(sub, "  ")) + "\n")

	section(&b, "Identity Information")
	list(&b, "Email addresses", p.BasicInfo.Emails)
	list(&b, "Phone numbers", p.BasicInfo.PhoneNumbers)

	section(&b, "Social Media")
	for _, link := range []struct{ name, url string }{
		{"LinkedIn", p.SocialMedia.LinkedIn},
		{"Twitter", p.SocialMedia.Twitter},
		{"Facebook", p.SocialMedia.Facebook},
		{"Instagram", p.SocialMedia.Instagram},
		{"GitHub", p.SocialMedia.GitHub},
		{"Venmo", p.SocialMedia.Venmo},
	} {
		if link.url == "" {
			continue
		}
		fmt.Fprintf(&b, "  %-10s %s\n", link.name, link.url)
	}

	section(&b, "Business Information")
	fmt.Fprintf(&b, "  Company    %s\n", valueOrDash(p.BusinessInfo.Company))
	fmt.Fprintf(&b, "  Job title  %s\n", valueOrDash(p.BusinessInfo.JobTitle))
	list(&b, "Domains", p.BusinessInfo.Domains)

	section(&b, "Location Data")
	list(&b, "IP addresses", p.Location.IPAddresses)
	list(&b, "Approximate locations", p.Location.ApproximateLocations)

	section(&b, fmt.Sprintf("Dark Web Mentions (%d)", p.DarkWebMentions.Count))
	for _, s := range p.DarkWebMentions.Samples {
		b.WriteString("  ! " + s + "\n")
	}

	section(&b, "AI Summary")
	b.WriteString(p.AISummary)

	return renderPage("PROFILE", b.String(), hotKeys)
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n" + sectionStyle.Render(title) + "\n")
}

func list(b *strings.Builder, title string, items []string) {
	b.WriteString("  " + title + "\n")
	if len(items) == 0 {
		b.WriteString("    -\n")
		return
	}
	for _, it := range items {
		b.WriteString("    " + it + "\n")
	}
}
