package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// AssetType classifies an asset for growth purposes
type AssetType string

const (
	AssetFinancial  AssetType = "FINANCIAL"
	AssetRealEstate AssetType = "REAL_ESTATE"
)

// MovementType gives a movement its sign
type MovementType string

const (
	MovementIncome  MovementType = "INCOME"
	MovementExpense MovementType = "EXPENSE"
)

// IncomeCategory is informational only; the engine never branches on it
type IncomeCategory string

const (
	CategoryWork    IncomeCategory = "WORK"
	CategoryPassive IncomeCategory = "PASSIVE"
	CategoryOther   IncomeCategory = "OTHER"
)

// Frequency is the recurrence of a movement
type Frequency string

const (
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyAnnually Frequency = "ANNUALLY"
	FrequencyOneTime  Frequency = "ONE_TIME"
)

// InsuranceType is the kind of coverage of a policy
type InsuranceType string

const (
	InsuranceLife       InsuranceType = "LIFE"
	InsuranceDisability InsuranceType = "DISABILITY"
)

// LifeStatus selects which life event, if any, cuts a projection short
type LifeStatus string

const (
	LifeActive   LifeStatus = "ACTIVE"
	LifeRetired  LifeStatus = "RETIRED"
	LifeDeceased LifeStatus = "DECEASED"
)

// ParseLifeStatus accepts any casing; an empty string is a valid "no status".
func ParseLifeStatus(s string) (LifeStatus, error) {
	st := LifeStatus(normalizeEnum(s))
	switch st {
	case "", LifeActive, LifeRetired, LifeDeceased:
		return st, nil
	}
	return "", ConfigurationError("unknown life status %q", s)
}

// normalizeEnum upper-cases and joins words with underscores so "one-time",
// "One Time" and "ONE_TIME" decode to the same constant.
func normalizeEnum(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func decodeEnum(value *yaml.Node) (string, error) {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return "", err
	}
	return normalizeEnum(raw), nil
}

// UnmarshalYAML implements lenient enum decoding
func (t *AssetType) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value)
	*t = AssetType(s)
	return err
}

// UnmarshalYAML implements lenient enum decoding
func (t *MovementType) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value)
	*t = MovementType(s)
	return err
}

// UnmarshalYAML implements lenient enum decoding
func (c *IncomeCategory) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value)
	*c = IncomeCategory(s)
	return err
}

// UnmarshalYAML implements lenient enum decoding
func (f *Frequency) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value)
	*f = Frequency(s)
	return err
}

// UnmarshalYAML implements lenient enum decoding
func (t *InsuranceType) UnmarshalYAML(value *yaml.Node) error {
	s, err := decodeEnum(value)
	*t = InsuranceType(s)
	return err
}

// Simulation is one named, versioned set of assumptions for a client
type Simulation struct {
	ID                 int64           `yaml:"id" json:"id" validate:"required,gt=0"`
	ClientID           int64           `yaml:"client_id" json:"client_id" validate:"required,gt=0"`
	Name               string          `yaml:"name" json:"name" validate:"required"`
	Version            int             `yaml:"version" json:"version" validate:"gte=1"`
	StartDate          time.Time       `yaml:"start_date" json:"start_date" validate:"required"`
	RealRate           decimal.Decimal `yaml:"real_rate" json:"real_rate" validate:"gt=-1"`
	IsCurrentSituation bool            `yaml:"is_current_situation" json:"is_current_situation"`
	DeletedAt          *time.Time      `yaml:"deleted_at,omitempty" json:"deleted_at,omitempty"`

	Assets     []Asset     `yaml:"assets,omitempty" json:"assets,omitempty" validate:"dive"`
	Movements  []Movement  `yaml:"movements,omitempty" json:"movements,omitempty" validate:"dive"`
	Insurances []Insurance `yaml:"insurances,omitempty" json:"insurances,omitempty" validate:"dive"`
}

// IsDeleted reports whether the simulation was soft-deleted by the CRUD layer
func (s *Simulation) IsDeleted() bool {
	return s.DeletedAt != nil
}

// Clone returns a deep copy so a worker never shares slices or pointers
// with the dataset it was taken from.
func (s *Simulation) Clone() *Simulation {
	c := *s
	c.DeletedAt = cloneTime(s.DeletedAt)
	if s.Assets != nil {
		c.Assets = make([]Asset, len(s.Assets))
		for i := range s.Assets {
			c.Assets[i] = s.Assets[i].clone()
		}
	}
	if s.Movements != nil {
		c.Movements = make([]Movement, len(s.Movements))
		for i, m := range s.Movements {
			m.EndDate = cloneTime(m.EndDate)
			c.Movements[i] = m
		}
	}
	if s.Insurances != nil {
		c.Insurances = append([]Insurance(nil), s.Insurances...)
	}
	return &c
}

// Asset is a holding tracked by a series of dated value records
type Asset struct {
	ID           int64         `yaml:"id" json:"id" validate:"required,gt=0"`
	SimulationID int64         `yaml:"simulation_id,omitempty" json:"simulation_id"`
	Name         string        `yaml:"name" json:"name" validate:"required"`
	Type         AssetType     `yaml:"type" json:"type" validate:"required,oneof=FINANCIAL REAL_ESTATE"`
	Records      []AssetRecord `yaml:"records,omitempty" json:"records,omitempty" validate:"dive"`
	Financing    *Financing    `yaml:"financing,omitempty" json:"financing,omitempty"`
}

func (a Asset) clone() Asset {
	c := a
	if a.Records != nil {
		c.Records = append([]AssetRecord(nil), a.Records...)
	}
	if a.Financing != nil {
		f := *a.Financing
		if a.Financing.Principal != nil {
			p := *a.Financing.Principal
			f.Principal = &p
		}
		c.Financing = &f
	}
	return c
}

// AssetRecord is the value of an asset as of a date
type AssetRecord struct {
	Date  time.Time       `yaml:"date" json:"date" validate:"required"`
	Value decimal.Decimal `yaml:"value" json:"value"`
}

// Financing is an amortizing loan contract attached to a real estate asset.
// InterestRate is the annual nominal rate as a decimal (0.08 = 8%).
type Financing struct {
	StartDate    time.Time       `yaml:"start_date" json:"start_date" validate:"required"`
	Installments int             `yaml:"installments" json:"installments"`
	InterestRate decimal.Decimal `yaml:"interest_rate" json:"interest_rate" validate:"gte=0"`
	DownPayment  decimal.Decimal `yaml:"down_payment" json:"down_payment" validate:"gte=0"`

	// Principal overrides the principal derived from the asset value
	Principal *decimal.Decimal `yaml:"principal,omitempty" json:"principal,omitempty"`
}

// Movement is a recurring or one-time income or expense
type Movement struct {
	ID           int64           `yaml:"id" json:"id" validate:"required,gt=0"`
	SimulationID int64           `yaml:"simulation_id,omitempty" json:"simulation_id"`
	Name         string          `yaml:"name" json:"name" validate:"required"`
	Type         MovementType    `yaml:"type" json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category     IncomeCategory  `yaml:"category,omitempty" json:"category,omitempty" validate:"omitempty,oneof=WORK PASSIVE OTHER"`
	Value        decimal.Decimal `yaml:"value" json:"value"`
	Frequency    Frequency       `yaml:"frequency" json:"frequency" validate:"required,oneof=MONTHLY ANNUALLY ONE_TIME"`
	StartDate    time.Time       `yaml:"start_date" json:"start_date" validate:"required"`
	EndDate      *time.Time      `yaml:"end_date,omitempty" json:"end_date,omitempty"`
}

// SignedValue returns the magnitude of the movement with the sign of its type
func (m *Movement) SignedValue() decimal.Decimal {
	v := m.Value.Abs()
	if m.Type == MovementExpense {
		return v.Neg()
	}
	return v
}

// Insurance is a policy whose monthly premium is debited while it is active
type Insurance struct {
	ID             int64           `yaml:"id" json:"id" validate:"required,gt=0"`
	SimulationID   int64           `yaml:"simulation_id,omitempty" json:"simulation_id"`
	Name           string          `yaml:"name" json:"name" validate:"required"`
	Type           InsuranceType   `yaml:"type" json:"type" validate:"required,oneof=LIFE DISABILITY"`
	StartDate      time.Time       `yaml:"start_date" json:"start_date" validate:"required"`
	DurationMonths int             `yaml:"duration_months" json:"duration_months" validate:"gt=0"`
	Premium        decimal.Decimal `yaml:"premium" json:"premium"`
	InsuredValue   decimal.Decimal `yaml:"insured_value" json:"insured_value"`
}

// Portfolio is the dataset root handed over by the persistence layer
type Portfolio struct {
	Clients     []Client     `yaml:"clients" json:"clients" validate:"dive"`
	Simulations []Simulation `yaml:"simulations" json:"simulations" validate:"dive"`
}

// FindClient returns the client with the given id, or nil
func (p *Portfolio) FindClient(id int64) *Client {
	for i := range p.Clients {
		if p.Clients[i].ID == id {
			return &p.Clients[i]
		}
	}
	return nil
}

// FindSimulation returns the non-deleted simulation with the given id, or nil
func (p *Portfolio) FindSimulation(id int64) *Simulation {
	for i := range p.Simulations {
		if p.Simulations[i].ID == id && !p.Simulations[i].IsDeleted() {
			return &p.Simulations[i]
		}
	}
	return nil
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
