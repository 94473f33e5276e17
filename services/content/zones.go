package content

import (
	"context"
	"strings"

	"serviciohogar/models"
)

// barcelonaZones is the fixed coverage list behind the per-zone landing
// pages. Zone slugs keep their accents; only spaces become hyphens so the
// URLs match the public site's links.
var barcelonaZones = []string{
	"Eixample", "Gràcia", "Sants-Montjuïc", "Les Corts",
	"Sarrià-Sant Gervasi", "Ciutat Vella", "Horta-Guinardó",
	"Nou Barris", "Sant Andreu", "Sant Martí",
}

// ZoneDirectory returns every covered zone crossed with the current
// service catalog, for the coverage directory page.
func (s *DefaultContentService) ZoneDirectory(ctx context.Context) (models.ZoneDirectory, error) {
	services, err := s.Repo.Services(ctx)
	if err != nil {
		return models.ZoneDirectory{}, err
	}

	zones := make([]models.Zone, 0, len(barcelonaZones))
	for _, name := range barcelonaZones {
		zones = append(zones, models.Zone{
			Name: name,
			Slug: strings.ReplaceAll(strings.ToLower(name), " ", "-"),
		})
	}
	return models.ZoneDirectory{Zones: zones, Services: services}, nil
}
