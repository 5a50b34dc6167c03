package shelf

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// PageControl is a companion widget showing (and optionally driving) the
// macro scroll position of a container, e.g. a scrollbar or page counter.
type PageControl interface {
	// SetRange reports the page size and the total number of rows.
	SetRange(itemsPerPage, totalRows int)
	// SetPosition reports the current page index, 0-based.
	SetPosition(page int)
}

// PageIndicator is the stock PageControl: it tracks range and position and
// renders a localized "Page X of Y" label. Flip sends page changes back to
// the bound container.
type PageIndicator struct {
	perPage   int
	rows      int
	page      int
	localizer *i18n.Localizer
	target    *Container
}

// NewPageIndicator creates an indicator localized for langs.
func NewPageIndicator(langs ...string) *PageIndicator {
	return &PageIndicator{
		perPage:   1,
		localizer: NewLocalizer(langs...),
	}
}

// Bind attaches the indicator to a container in both directions.
func (p *PageIndicator) Bind(c *Container) {
	p.target = c
	c.AttachPageControl(p)
}

func (p *PageIndicator) SetRange(itemsPerPage, totalRows int) {
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}
	p.perPage = itemsPerPage
	p.rows = totalRows
	if p.page >= p.Pages() {
		p.page = max(0, p.Pages()-1)
	}
}

func (p *PageIndicator) SetPosition(page int) {
	p.page = page
}

// Page returns the current page index, 0-based.
func (p *PageIndicator) Page() int {
	return p.page
}

// Pages returns the number of pages needed for the current range.
func (p *PageIndicator) Pages() int {
	if p.rows <= 0 {
		return 0
	}
	return (p.rows + p.perPage - 1) / p.perPage
}

// Flip moves delta pages and asks the bound container to follow. Returns
// false when there is nothing to flip to.
func (p *PageIndicator) Flip(delta int) bool {
	pages := p.Pages()
	if pages == 0 || p.target == nil {
		return false
	}
	page := min(max(p.page+delta, 0), pages-1)
	if page == p.page {
		return false
	}
	p.page = page
	return p.target.OnPageChange(page)
}

// Label returns the localized page label.
func (p *PageIndicator) Label() string {
	if p.Pages() == 0 {
		msg, err := p.localizer.Localize(&i18n.LocalizeConfig{
			MessageID:      "PageIndicatorEmpty",
			DefaultMessage: &i18n.Message{ID: "PageIndicatorEmpty", Other: "No items"},
		})
		if err != nil {
			return "No items"
		}
		return msg
	}

	data := map[string]interface{}{
		"Page":  p.page + 1,
		"Pages": p.Pages(),
	}
	msg, err := p.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    "PageIndicator",
		TemplateData: data,
		DefaultMessage: &i18n.Message{
			ID:    "PageIndicator",
			Other: "Page {{.Page}} of {{.Pages}}",
		},
	})
	if err != nil {
		return fmt.Sprintf("Page %d of %d", p.page+1, p.Pages())
	}
	return msg
}
