package model

// Archetype is one of the 16 named personas of the compass.
// swagger:model Archetype
type Archetype struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Color            string `json:"color"`
	Tagline          string `json:"description"`
	Philosophy       string `json:"philosophy"`
	NFTQuote         string `json:"nftQuote,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Vision           string `json:"vision,omitempty"`
	Mission          string `json:"mission,omitempty"`
}
