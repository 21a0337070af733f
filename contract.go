package planilla

import (
	"fmt"
	"strings"

	"github.com/etnz/planilla/date"
)

// MasterData is the immutable data of the signed contract.
type MasterData struct {
	Name           string `json:"name"`
	ContractNumber string `json:"contractNumber"`
	Entity         string `json:"entity"`
	Contractor     string `json:"contractor"`
	ContractorRep  string `json:"contractorRep"`
	Supervisor     string `json:"supervisor"`
	SupervisorRep  string `json:"supervisorRep"`
	Fiscal         string `json:"fiscal"`
	FiscalRep      string `json:"fiscalRep"`
	SurfaceArea    string `json:"surfaceArea"`
	Currency       string `json:"currency"`

	SigningDate      date.Date `json:"signingDate"`
	StartDate        date.Date `json:"startDate"`
	OriginalEndDate  date.Date `json:"originalEndDate"`
	OriginalDuration int       `json:"originalDuration"`
	OriginalAmount   Money     `json:"originalAmount"`
	AdvanceAmount    Money     `json:"advanceAmount"`
	AdvancePercent   Percent   `json:"advancePercent"`
}

// ModificationType classifies a contractual modification.
type ModificationType string

const (
	ChangeOrder   ModificationType = "OC"
	Amendment     ModificationType = "CM"
	TimeExtension ModificationType = "AP"
)

// ParseModificationType reads a modification type, case insensitive. The
// empty string is a change order.
func ParseModificationType(s string) (ModificationType, error) {
	switch t := ModificationType(strings.ToUpper(strings.TrimSpace(s))); t {
	case "":
		return ChangeOrder, nil
	case ChangeOrder, Amendment, TimeExtension:
		return t, nil
	default:
		return "", fmt.Errorf("unknown modification type %q", s)
	}
}

func (t ModificationType) String() string {
	switch t {
	case ChangeOrder:
		return "Orden de Cambio"
	case Amendment:
		return "Contrato Modificatorio"
	case TimeExtension:
		return "Ampliación de Plazo"
	}
	return string(t)
}

// Modification is a change to the contract amount and/or duration.
type Modification struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        ModificationType `json:"type"`
	Date        date.Date        `json:"date"`
	Days        int              `json:"days"`
	Amount      Money            `json:"amount"`
	Description string           `json:"desc"`
	Active      bool             `json:"active"`
}

// Config is the contract configuration in effect once the active
// modifications are applied to the master data.
type Config struct {
	Master        MasterData     `json:"master"`
	Modifications []Modification `json:"modifications"`
	TotalAmount   Money          `json:"totalAmount"`
	TotalDays     int            `json:"totalDays"`
	EndDate       date.Date      `json:"endDate"`
	HasActiveMods bool           `json:"hasActiveMods"`
}

// Resolve derives the contract configuration. It is always computed from
// scratch: with no active modification the totals are the original ones.
func Resolve(master MasterData, mods []Modification) Config {
	cfg := Config{
		Master:        master,
		Modifications: append([]Modification(nil), mods...),
		TotalAmount:   master.OriginalAmount,
		TotalDays:     master.OriginalDuration,
	}
	for _, m := range mods {
		if !m.Active {
			continue
		}
		cfg.TotalAmount = cfg.TotalAmount.Add(m.Amount)
		cfg.TotalDays += m.Days
		cfg.HasActiveMods = true
	}
	if !master.StartDate.IsZero() {
		cfg.EndDate = master.StartDate.Add(cfg.TotalDays)
	}
	return cfg
}

// ActiveAmount returns the sum of the active modifications' amounts.
func (c Config) ActiveAmount() Money { return c.TotalAmount.Sub(c.Master.OriginalAmount) }

// ActiveDays returns the sum of the active modifications' days.
func (c Config) ActiveDays() int { return c.TotalDays - c.Master.OriginalDuration }
