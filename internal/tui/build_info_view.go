// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/horizon/models"
)

func renderBuildInfoWindow(version string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: Horizon\n")
	b.WriteString("Version: " + valueOrNA(version))
	for _, line := range info.Lines() {
		b.WriteString("\n" + line.Label + ": " + valueOrNA(line.Value))
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
