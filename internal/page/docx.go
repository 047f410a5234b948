package page

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont     = "Calibri"
	docxFontSize = 11
)

// WriteDocx exports the card set as a document digest: one heading per card
// with its summary and transcript, for sharing outside the web page.
func WriteDocx(path string, data Data) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	title := data.Title
	if title == "" {
		title = "Video Highlights"
	}
	addRun(doc.AddParagraph(""), title, true, 16)
	if data.Description != "" {
		addRun(doc.AddParagraph(""), data.Description, false, docxFontSize)
	}
	doc.AddParagraph("")

	for _, c := range data.Cards {
		heading := fmt.Sprintf("Card %d (%s)", c.Number, c.Clock)
		addRun(doc.AddParagraph(""), heading, true, 13)
		addRun(doc.AddParagraph(""), c.Summary, false, docxFontSize)
		if c.Transcript != "" {
			addRun(doc.AddParagraph(""), c.Transcript, false, docxFontSize)
		}
		if c.Link != "" {
			addRun(doc.AddParagraph(""), c.Link, false, docxFontSize)
		}
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
