package networth

import "fmt"

// Portfolio is a named set of holdings owned by a user.
type Portfolio struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Label is the name of the portfolio, or a generic label based on its ID.
func (p Portfolio) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Portfolio %s", p.ID)
}

// FindPortfolio returns the portfolio with the given id.
func FindPortfolio(portfolios []Portfolio, id string) (Portfolio, bool) {
	for _, p := range portfolios {
		if p.ID == id {
			return p, true
		}
	}
	return Portfolio{}, false
}
