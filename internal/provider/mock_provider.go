// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/horizon/internal/logger"
	"github.com/MKhiriev/horizon/internal/utils"
	"github.com/MKhiriev/horizon/models"
)

const (
	mockCompany  = "Acme Corporation"
	mockJobTitle = "Senior Software Engineer"
	mockAvatar   = "/placeholder.svg"
)

var (
	mockPhoneNumbers = []string{"+1 (555) 123-4567", "+1 (555) 987-6543"}
	mockIPAddresses  = []string{"192.168.1.1", "10.0.0.1"}
	mockLocations    = []string{"San Francisco, CA, USA", "New York, NY, USA"}
	mockLeakSamples  = []string{
		"Email found in leaked database from Company X breach (2021)",
		"Username associated with forum discussion on Site Y (2019)",
		"Personal information potentially exposed in Service Z incident (2020)",
	}

	whitespace = regexp.MustCompile(`\s`)
)

const summaryTemplate = `Based on the available OSINT data, %s appears to be a technology professional based in the United States. They have digital footprints across multiple platforms including LinkedIn, Twitter, and GitHub, suggesting active participation in professional tech communities. The individual has connections to Acme Corporation as a Senior Software Engineer.

Some potential security concerns include exposure in multiple data breaches, with personal information potentially available on dark web forums. The subject maintains multiple email accounts and has registered several domains, expanding their attack surface. Geographic analysis suggests presence primarily on the east and west coasts of the United States.

This individual would benefit from a security audit of their personal accounts, enabling two-factor authentication where possible, and monitoring for potential identity theft based on the leaked credentials.`

type mockProfileProvider struct {
	delay utils.Delayer
	ids   utils.IDGenerator
}

// NewMockProfileProvider returns a [ProfileProvider] that fabricates a
// record from the query after delay.
func NewMockProfileProvider(delay utils.Delayer, ids utils.IDGenerator) ProfileProvider {
	return &mockProfileProvider{delay: delay, ids: ids}
}

func (p *mockProfileProvider) Fetch(ctx context.Context, query string) (models.ProfileRecord, error) {
	log := logger.FromContext(ctx)

	if err := p.delay.Wait(ctx); err != nil {
		log.Err(err).
			Str("func", "mockProfileProvider.Fetch").
			Str("query", query).
			Msg("profile lookup interrupted")
		return models.ProfileRecord{}, fmt.Errorf("%w: %w", ErrLookupInterrupted, err)
	}

	log.Debug().
		Str("func", "mockProfileProvider.Fetch").
		Str("query", query).
		Msg("profile synthesized")

	return buildProfile(p.ids.Generate(), query), nil
}

// buildProfile derives every field of the record from query.
func buildProfile(id, query string) models.ProfileRecord {
	lower := strings.ToLower(query)
	dotted := whitespace.ReplaceAllString(lower, ".")
	underscored := whitespace.ReplaceAllString(lower, "_")
	dashed := whitespace.ReplaceAllString(lower, "-")
	compact := whitespace.ReplaceAllString(lower, "")

	name := query
	primaryEmail := dotted + "@gmail.com"
	if local, _, found := strings.Cut(query, "@"); found {
		name = local
		primaryEmail = query
	}

	return models.ProfileRecord{
		ID:    id,
		Query: query,
		BasicInfo: models.BasicInfo{
			Name:         name,
			Emails:       []string{primaryEmail, underscored + "@outlook.com"},
			PhoneNumbers: clone(mockPhoneNumbers),
			Avatar:       mockAvatar,
		},
		SocialMedia: models.SocialMedia{
			LinkedIn: "https://linkedin.com/in/" + dashed,
			Twitter:  "https://twitter.com/" + compact,
			GitHub:   "https://github.com/" + compact,
			Venmo:    "https://venmo.com/" + compact,
		},
		BusinessInfo: models.BusinessInfo{
			Company:  mockCompany,
			JobTitle: mockJobTitle,
			Domains:  []string{compact + ".com", compact + ".io"},
		},
		Location: models.Location{
			IPAddresses:          clone(mockIPAddresses),
			ApproximateLocations: clone(mockLocations),
		},
		DarkWebMentions: models.DarkWebMentions{
			Count:   len(mockLeakSamples),
			Samples: clone(mockLeakSamples),
		},
		AISummary: fmt.Sprintf(summaryTemplate, query),
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
