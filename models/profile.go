// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProfileRecord is the aggregate shown on the profile screen. It is produced
// by a profile provider for a single query and is never persisted.
type ProfileRecord struct {
	ID              string          `json:"id"`
	Query           string          `json:"query"`
	BasicInfo       BasicInfo       `json:"basicInfo"`
	SocialMedia     SocialMedia     `json:"socialMedia"`
	BusinessInfo    BusinessInfo    `json:"businessInfo"`
	Location        Location        `json:"location"`
	DarkWebMentions DarkWebMentions `json:"darkWebMentions"`
	AISummary       string          `json:"aiSummary"`
}

// BasicInfo holds identity fields of the subject.
type BasicInfo struct {
	Name         string   `json:"name,omitempty"`
	Emails       []string `json:"emails"`
	PhoneNumbers []string `json:"phoneNumbers"`
	Avatar       string   `json:"avatar,omitempty"`
}

// SocialMedia holds profile links. Empty strings mean the network was not
// found.
type SocialMedia struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Venmo     string `json:"venmo,omitempty"`
}

// BusinessInfo holds employment data and registered domains.
type BusinessInfo struct {
	Company  string   `json:"company,omitempty"`
	JobTitle string   `json:"jobTitle,omitempty"`
	Domains  []string `json:"domains"`
}

// Location holds network and geographic traces.
type Location struct {
	IPAddresses          []string `json:"ipAddresses"`
	ApproximateLocations []string `json:"approximateLocations"`
}

// DarkWebMentions summarises leaks that mention the subject.
type DarkWebMentions struct {
	Count   int      `json:"count"`
	Samples []string `json:"samples"`
}

// DisplayName returns the subject's name or a placeholder when unknown.
func (p ProfileRecord) DisplayName() string {
	if p.BasicInfo.Name == "" {
		return "Unknown Subject"
	}
	return p.BasicInfo.Name
}

// PrimaryLocation returns the first approximate location, if any.
func (p ProfileRecord) PrimaryLocation() string {
	if len(p.Location.ApproximateLocations) == 0 {
		return ""
	}
	return p.Location.ApproximateLocations[0]
}
