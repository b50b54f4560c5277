package models

// ParsedParty is the structured reading of a free-text MT party field such
// as 50K or 59.
type ParsedParty struct {
	Account      string   `json:"account,omitempty" yaml:"account,omitempty"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	AddressLines []string `json:"addressLines,omitempty" yaml:"address_lines,omitempty"`
	Country      string   `json:"country,omitempty" yaml:"country,omitempty"`
	BIC          string   `json:"bic,omitempty" yaml:"bic,omitempty"`
}

// IsEmpty reports whether nothing could be read from the field.
func (p ParsedParty) IsEmpty() bool {
	return p.Account == "" && p.Name == "" && len(p.AddressLines) == 0 &&
		p.Country == "" && p.BIC == ""
}

// HasAddress reports whether a postal address element should be emitted.
func (p ParsedParty) HasAddress() bool {
	return p.Country != "" || len(p.AddressLines) > 0
}
