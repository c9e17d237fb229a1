package calculation

import (
	"github.com/anka/patrimony-planner/internal/domain"
)

// HorizonEnd returns the last projected year for a requested end year and an
// optional life status. ACTIVE (or no status) keeps the end year; RETIRED and
// DECEASED stop at the client's retirement or death year when that comes first.
func HorizonEnd(client *domain.Client, endYear int, status domain.LifeStatus) (int, error) {
	var event *domain.LifeEvent
	switch status {
	case "", domain.LifeActive:
		return endYear, nil
	case domain.LifeRetired:
		if client != nil {
			event = client.Retirement
		}
	case domain.LifeDeceased:
		if client != nil {
			event = client.Mortality
		}
	default:
		return 0, domain.ConfigurationError("unknown life status %q", status)
	}

	if event == nil {
		return 0, domain.ConfigurationError("life status %s requires the client's %s", status, eventName(status))
	}
	if err := event.Validate(); err != nil {
		return 0, domain.ConfigurationError("client %s: %v", eventName(status), err)
	}
	if event.Date == nil && client.BirthDate.IsZero() {
		return 0, domain.ConfigurationError("client %s by age requires a birth date", eventName(status))
	}

	cutoff := event.Year(client.BirthDate)
	if cutoff < endYear {
		return cutoff, nil
	}
	return endYear, nil
}

func eventName(status domain.LifeStatus) string {
	if status == domain.LifeRetired {
		return "retirement"
	}
	return "mortality"
}
