package domain

// City is one configured location, the unit of work for both the discovery
// and contact-sync pipelines.
type City struct {
	Slug        string  `yaml:"-" json:"slug"`
	Name        string  `yaml:"name" json:"name"`
	CountrySlug string  `yaml:"-" json:"country_slug"`
	Latitude    float64 `yaml:"latitude" json:"latitude"`
	Longitude   float64 `yaml:"longitude" json:"longitude"`
	RadiusKM    float64 `yaml:"radius_km" json:"radius_km"`
}
