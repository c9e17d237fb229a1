package domain

import (
	"fmt"
	"time"

	"github.com/anka/patrimony-planner/pkg/dateutil"
)

// Client is the owner of a set of simulations
type Client struct {
	ID        int64     `yaml:"id" json:"id" validate:"required,gt=0"`
	Name      string    `yaml:"name" json:"name" validate:"required"`
	BirthDate time.Time `yaml:"birth_date" json:"birth_date" validate:"required"`

	// Optional life events used to derive a projection horizon from a life status
	Retirement *LifeEvent `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	Mortality  *LifeEvent `yaml:"mortality,omitempty" json:"mortality,omitempty"`
}

// LifeEvent pins a deterministic event either by date or by age (one may be supplied)
type LifeEvent struct {
	Date *time.Time `yaml:"date,omitempty" json:"date,omitempty"`
	Age  *int       `yaml:"age,omitempty" json:"age,omitempty" validate:"omitempty,gte=0,lte=130"`
}

// Validate checks that exactly one of date or age is set.
func (e *LifeEvent) Validate() error {
	if e.Date != nil && e.Age != nil {
		return fmt.Errorf("specify either date or age, not both")
	}
	if e.Date == nil && e.Age == nil {
		return fmt.Errorf("either date or age is required")
	}
	return nil
}

// Year returns the calendar year the event happens for a person born at birthDate.
func (e *LifeEvent) Year(birthDate time.Time) int {
	if e.Date != nil {
		return e.Date.Year()
	}
	return birthDate.Year() + *e.Age
}

// Age calculates the client's age at a given date
func (c *Client) Age(atDate time.Time) int {
	if c.BirthDate.IsZero() {
		return 0
	}
	return dateutil.Age(c.BirthDate, atDate)
}
