// Package config loads the project file of a contract: master data,
// modifications, penalties, milestones and where to read the sheet from.
//
// The file is YAML. Values not set in the file keep their default, and a few
// of them can be overridden by PLANILLA_* environment variables, also read
// from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/etnz/planilla"
	"github.com/etnz/planilla/date"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const monthFormat = "2006-01"

// File is the YAML project file.
type File struct {
	Sheet         string               `yaml:"sheet"`
	Origin        string               `yaml:"origin"` // month of period 1, "2006-01" or any day of it
	Currency      string               `yaml:"currency"`
	Addr          string               `yaml:"addr"`
	Contract      Contract             `yaml:"contract"`
	Modifications []Modification       `yaml:"modifications"`
	Penalties     []Penalty            `yaml:"penalties"`
	Milestones    []planilla.Milestone `yaml:"milestones"`
}

// Contract is the master data section.
type Contract struct {
	Name             string  `yaml:"name"`
	ContractNumber   string  `yaml:"contract_number"`
	Entity           string  `yaml:"entity"`
	Contractor       string  `yaml:"contractor"`
	ContractorRep    string  `yaml:"contractor_rep"`
	Supervisor       string  `yaml:"supervisor"`
	SupervisorRep    string  `yaml:"supervisor_rep"`
	Fiscal           string  `yaml:"fiscal"`
	FiscalRep        string  `yaml:"fiscal_rep"`
	SurfaceArea      string  `yaml:"surface_area"`
	SigningDate      string  `yaml:"signing_date"`
	StartDate        string  `yaml:"start_date"`
	OriginalEndDate  string  `yaml:"original_end_date"`
	OriginalDuration int     `yaml:"original_duration"`
	OriginalAmount   float64 `yaml:"original_amount"`
	AdvanceAmount    float64 `yaml:"advance_amount"`
	AdvancePercent   float64 `yaml:"advance_percent"`
}

// Modification is an entry of the modifications section.
type Modification struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Date        string  `yaml:"date"`
	Days        int     `yaml:"days"`
	Amount      float64 `yaml:"amount"`
	Description string  `yaml:"desc"`
	Active      bool    `yaml:"active"`
}

// Penalty is an entry of the penalties section.
type Penalty struct {
	Period int     `yaml:"period"`
	Amount float64 `yaml:"amount"`
	Reason string  `yaml:"reason"`
}

// Project is the resolved configuration.
type Project struct {
	Sheet         string
	Origin        date.Date
	Addr          string
	Master        planilla.MasterData
	Modifications []planilla.Modification
	Penalties     planilla.Penalties
	Milestones    []planilla.Milestone
}

// Input returns the engine input of the project for items.
func (p *Project) Input(items []planilla.LineItem) planilla.Input {
	return planilla.Input{
		Items:         items,
		Master:        p.Master,
		Modifications: p.Modifications,
		Penalties:     p.Penalties,
		Origin:        p.Origin,
	}
}

// Load reads the project file at path on top of the defaults, then applies
// the environment overrides. An empty path only uses the defaults, or the
// file named by PLANILLA_CONFIG.
func Load(path string) (*Project, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	if path == "" {
		path = os.Getenv("PLANILLA_CONFIG")
	}
	f := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading project file: %w", err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing project file %s: %w", path, err)
		}
	}
	f.Sheet = getenvDefault("PLANILLA_SHEET_URL", f.Sheet)
	f.Origin = getenvDefault("PLANILLA_ORIGIN", f.Origin)
	f.Currency = getenvDefault("PLANILLA_CURRENCY", f.Currency)
	f.Addr = getenvDefault("PLANILLA_ADDR", f.Addr)
	return f.Project()
}

// Project resolves f.
func (f File) Project() (*Project, error) {
	cur := f.Currency
	c := f.Contract
	var errs error
	parse := func(field, s string) date.Date {
		if strings.TrimSpace(s) == "" {
			return date.Date{}
		}
		d, err := date.Parse(s)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", field, err))
		}
		return d
	}

	p := &Project{
		Sheet: f.Sheet,
		Addr:  f.Addr,
		Master: planilla.MasterData{
			Name:             c.Name,
			ContractNumber:   c.ContractNumber,
			Entity:           c.Entity,
			Contractor:       c.Contractor,
			ContractorRep:    c.ContractorRep,
			Supervisor:       c.Supervisor,
			SupervisorRep:    c.SupervisorRep,
			Fiscal:           c.Fiscal,
			FiscalRep:        c.FiscalRep,
			SurfaceArea:      c.SurfaceArea,
			Currency:         cur,
			SigningDate:      parse("signing_date", c.SigningDate),
			StartDate:        parse("start_date", c.StartDate),
			OriginalEndDate:  parse("original_end_date", c.OriginalEndDate),
			OriginalDuration: c.OriginalDuration,
			OriginalAmount:   planilla.M(c.OriginalAmount, cur),
			AdvanceAmount:    planilla.M(c.AdvanceAmount, cur),
			AdvancePercent:   planilla.Percent(c.AdvancePercent),
		},
		Milestones: f.Milestones,
	}
	if origin := strings.TrimSpace(f.Origin); origin != "" {
		if _, err := time.Parse(monthFormat, origin); err == nil {
			origin += "-01"
		}
		if d := parse("origin", origin); !d.IsZero() {
			p.Origin = d.FirstOfMonth()
		}
	}

	for _, m := range f.Modifications {
		typ, err := planilla.ParseModificationType(m.Type)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("modification %s: %w", m.ID, err))
		}
		p.Modifications = append(p.Modifications, planilla.Modification{
			ID:          m.ID,
			Name:        m.Name,
			Type:        typ,
			Date:        parse("modification "+m.ID, m.Date),
			Days:        m.Days,
			Amount:      planilla.M(m.Amount, cur),
			Description: m.Description,
			Active:      m.Active,
		})
	}
	for _, pen := range f.Penalties {
		p.Penalties = p.Penalties.Register(planilla.Penalty{
			Period: pen.Period,
			Amount: planilla.M(pen.Amount, cur),
			Reason: pen.Reason,
		})
	}
	if errs != nil {
		return nil, errs
	}
	return p, nil
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
