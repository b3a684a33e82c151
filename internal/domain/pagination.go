package domain

import (
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxPage keeps (Page-1)*Limit within int for every accepted limit.
	MaxPage = math.MaxInt / MaxPageLimit
)

// PageRequest is a validated offset/limit window. Page is 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the index of the first item on the page.
func (p PageRequest) Offset() int { return (p.Page - 1) * p.Limit }

// ParsePageRequest converts raw query values into a PageRequest. Empty values
// fall back to page 1 and DefaultPageLimit; anything else must be a positive
// integer (page at most MaxPage, limit at most MaxPageLimit).
func ParsePageRequest(rawPage, rawLimit string) (PageRequest, error) {
	p := PageRequest{Page: 1, Limit: DefaultPageLimit}
	if rawPage != "" {
		n, err := strconv.Atoi(rawPage)
		if err != nil || n < 1 || n > MaxPage {
			return PageRequest{}, fmt.Errorf("page must be an integer between 1 and %d: %w", MaxPage, ErrBadRequest)
		}
		p.Page = n
	}
	if rawLimit != "" {
		n, err := strconv.Atoi(rawLimit)
		if err != nil || n < 1 || n > MaxPageLimit {
			return PageRequest{}, fmt.Errorf("limit must be an integer between 1 and %d: %w", MaxPageLimit, ErrBadRequest)
		}
		p.Limit = n
	}
	return p, nil
}
