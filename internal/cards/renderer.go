// internal/cards/renderer.go
package cards

import (
	"fmt"
	"strings"
)

// defaultInstitution labels rendered cards when none is configured.
const defaultInstitution = "UNIVERSIDAD CENTRAL LIBRARY CARD"

// Renderer turns a member record and fee into a card document.
type Renderer interface {
	Render(member *Member, fee float64) ([]byte, error)
}

// TextRenderer produces the fixed-layout UTF-8 card body.
type TextRenderer struct {
	institution string
}

// NewTextRenderer creates a renderer with the given institution label, or the
// default label when empty.
func NewTextRenderer(institution string) *TextRenderer {
	if institution == "" {
		institution = defaultInstitution
	}
	return &TextRenderer{institution: institution}
}

// Render encodes the card body. Identical input yields byte-identical output.
func (r *TextRenderer) Render(member *Member, fee float64) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.institution)
	fmt.Fprintf(&b, "Name: %s\n", member.Name)
	fmt.Fprintf(&b, "ID: %s\n", member.ID)
	fmt.Fprintf(&b, "Type: %s\n", member.Category)
	fmt.Fprintf(&b, "Fee: S/ %.2f\n", fee)
	fmt.Fprintf(&b, "Date: %s\n", member.RegisteredOn.Format("2006-01-02"))
	return []byte(b.String()), nil
}
