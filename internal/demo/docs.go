package demo

import "strings"

// Document is a row in the demo library.
type Document struct {
	Name   string
	Pages  string
	Status string
}

// sampleLibrary returns the placeholder corpus shown at startup.
func sampleLibrary() []Document {
	return []Document{
		{Name: "annual-report-2025.pdf", Pages: "48", Status: "indexed"},
		{Name: "architecture-notes.md", Pages: "12", Status: "indexed"},
		{Name: "billing-faq.md", Pages: "6", Status: "indexed"},
		{Name: "board-minutes-aug.pdf", Pages: "9", Status: "pending"},
		{Name: "contractor-agreement.pdf", Pages: "22", Status: "indexed"},
		{Name: "design-system.md", Pages: "31", Status: "indexed"},
		{Name: "incident-postmortem-42.md", Pages: "7", Status: "indexed"},
		{Name: "marketing-plan-q4.pdf", Pages: "18", Status: "pending"},
		{Name: "onboarding-checklist.md", Pages: "4", Status: "indexed"},
		{Name: "privacy-policy.md", Pages: "15", Status: "indexed"},
		{Name: "release-notes-3.2.md", Pages: "5", Status: "indexed"},
		{Name: "research-survey.pdf", Pages: "64", Status: "failed"},
		{Name: "roadmap-2026.md", Pages: "11", Status: "indexed"},
		{Name: "sales-playbook.pdf", Pages: "27", Status: "indexed"},
		{Name: "security-audit.pdf", Pages: "39", Status: "pending"},
		{Name: "style-guide.md", Pages: "8", Status: "indexed"},
	}
}

// filterDocs returns the documents whose names contain the query.
func filterDocs(docs []Document, query string) []Document {
	if query == "" {
		return docs
	}
	q := strings.ToLower(query)
	var out []Document
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.Name), q) {
			out = append(out, d)
		}
	}
	return out
}
