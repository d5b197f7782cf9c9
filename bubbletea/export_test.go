package bubbletea

// HeadingLines exports headingLines for testing.
func HeadingLines(content string, headings []string) []int {
	return headingLines(content, headings)
}

// StatusLine exports statusLine for testing.
func StatusLine(m Model) string {
	return m.statusLine()
}
