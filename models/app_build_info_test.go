package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Lines(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "2026-10-01", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, []BuildInfoLine{
		{Label: "Build date", Value: "2026-10-01"},
		{Label: "Commit", Value: "abc123"},
	}, info.Lines())
}
