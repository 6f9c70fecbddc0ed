package domain

import "fmt"

// Stock is read-only reference data describing a listed company.
type Stock struct {
	Symbol      string `json:"symbol" validate:"required"`
	Name        string `json:"name"`
	Sector      string `json:"sector"`
	SubIndustry string `json:"subIndustry"`
	Address     string `json:"address"`
}

// LogoURL is the relative reference of the stock's logo image. The image
// itself lives outside the dataset.
func (s Stock) LogoURL() string {
	return "logos/" + s.Symbol + ".svg"
}

// Validate runs the presence checks on the record.
func (s *Stock) Validate() error {
	if err := validatorInstance.Struct(s); err != nil {
		return fmt.Errorf("%w: stock %q: %v", ErrInvalidRecord, s.Name, err)
	}
	return nil
}
