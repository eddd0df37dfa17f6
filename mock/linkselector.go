package mock

import "github.com/fwojciec/newsgrab"

var _ newsgrab.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of newsgrab.LinkSelector.
type LinkSelector struct {
	SelectLinksFn func(html string) (*newsgrab.LinkSelection, error)
}

func (s *LinkSelector) SelectLinks(html string) (*newsgrab.LinkSelection, error) {
	return s.SelectLinksFn(html)
}
