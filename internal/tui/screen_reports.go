package tui

func renderReports() string {
	body := "No reports yet\n\n" +
		"Reports generated from profiles will be listed here."
	return renderPage("REPORTS", body, "")
}
