package sections

import (
	"github.com/danielcho/resume-composer/internal/render"
	"github.com/danielcho/resume-composer/internal/style"
	"github.com/danielcho/resume-composer/internal/types"
)

// renderCertificates renders the certificates section.
func renderCertificates(p Props) *render.Node {
	if len(p.Doc.Certificates) == 0 {
		return nil
	}

	section := types.SectionCertificates
	headerStyles := p.entryHeaderStyles(section, "name", "issuer")

	entries := make([]*render.Node, 0, len(p.Doc.Certificates))
	for _, cert := range p.Doc.Certificates {
		header := p.entryHeader(style.HeaderFields{
			Title:     cert.Name,
			Subtitle:  cert.Issuer,
			DateRange: cert.Date,
			URL:       p.urlAffordance(cert.URL),
		}, headerStyles)
		entries = append(entries, render.Container("entry", render.Style{Direction: "column"}, header))
	}

	return p.sectionContainer(section, p.sectionHeading(section, sectionTitles[section]), entries...)
}
