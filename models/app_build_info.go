package models

// AppBuildInfo is the version metadata linked into the client binary. It is
// shown on the about window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// BuildInfoLine is one labelled row of the about window.
type BuildInfoLine struct {
	Label string
	Value string
}

// Lines lists the date and commit rows in display order. The version row is
// rendered separately because configuration may override it.
func (a AppBuildInfo) Lines() []BuildInfoLine {
	return []BuildInfoLine{
		{Label: "Build date", Value: a.buildDate},
		{Label: "Commit", Value: a.buildCommit},
	}
}
