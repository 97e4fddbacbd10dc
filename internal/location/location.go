// Package location loads the configured countries and cities that both
// background pipelines iterate over.
package location

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"city_pulse/internal/domain"
)

type countryEntry struct {
	Name   string                 `yaml:"name"`
	Cities map[string]domain.City `yaml:"cities"`
}

// Directory is the in-memory location dataset. It is loaded once at startup;
// the file is the source of truth and is never written back.
type Directory struct {
	cities []domain.City
	bySlug map[string]domain.City
}

// Load reads the locations YAML file: a map of country slug to country name
// and city map, each city carrying name, latitude, longitude and radius_km.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locations file: %w", err)
	}

	var countries map[string]countryEntry
	if err := yaml.Unmarshal(data, &countries); err != nil {
		return nil, fmt.Errorf("parse locations file: %w", err)
	}

	d := &Directory{bySlug: make(map[string]domain.City)}
	for countrySlug, country := range countries {
		for citySlug, city := range country.Cities {
			city.Slug = citySlug
			city.CountrySlug = countrySlug
			if city.RadiusKM == 0 {
				city.RadiusKM = 50
			}
			d.cities = append(d.cities, city)
			d.bySlug[citySlug] = city
		}
	}

	// Stable enumeration order; the pipelines do not depend on order but
	// progress reporting reads better when it is deterministic.
	sort.Slice(d.cities, func(i, j int) bool {
		return d.cities[i].Slug < d.cities[j].Slug
	})

	if len(d.cities) == 0 {
		return nil, fmt.Errorf("locations file %s contains no cities", path)
	}

	return d, nil
}

// Cities returns every configured city.
func (d *Directory) Cities() []domain.City {
	out := make([]domain.City, len(d.cities))
	copy(out, d.cities)
	return out
}

// BySlug looks a city up by its slug.
func (d *Directory) BySlug(slug string) (domain.City, bool) {
	c, ok := d.bySlug[slug]
	return c, ok
}
