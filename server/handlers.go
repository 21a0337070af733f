package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/etnz/planilla"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// report writes the error response and returns nil when there is no report.
func (s *Server) report(w http.ResponseWriter) *planilla.Report {
	r, err := s.session.Report()
	if err != nil {
		writeError(w, err)
		return nil
	}
	return r
}

// period reads the optional period query parameter, 0 when absent.
func period(r *http.Request) (int, error) {
	v := r.URL.Query().Get("period")
	if v == "" {
		return 0, nil
	}
	p, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid period %q", v)
	}
	return p, nil
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if rep := s.report(w); rep != nil {
		writeJSON(w, http.StatusOK, rep)
	}
}

func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	if rep := s.report(w); rep != nil {
		writeJSON(w, http.StatusOK, rep.Periods)
	}
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	if rep := s.report(w); rep != nil {
		writeJSON(w, http.StatusOK, rep.Modules)
	}
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	p, err := period(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	rep := s.report(w)
	if rep == nil {
		return
	}
	if p == 0 {
		writeJSON(w, http.StatusOK, rep.Items)
		return
	}
	items := rep.ItemsIn(rep.Clamp(p))
	if items == nil {
		items = []planilla.ItemReport{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCut(w http.ResponseWriter, r *http.Request) {
	p, err := period(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rep := s.report(w); rep != nil {
		writeJSON(w, http.StatusOK, rep.Cut(p))
	}
}

// handleContract works without line items: the configuration only depends on
// the master data and the modifications.
func (s *Server) handleContract(w http.ResponseWriter, r *http.Request) {
	in := s.session.Input()
	writeJSON(w, http.StatusOK, planilla.Resolve(in.Master, in.Modifications))
}

type milestonesResponse struct {
	DaysElapsed int                        `json:"daysElapsed"`
	Milestones  []planilla.MilestoneStatus `json:"milestones"`
}

func (s *Server) handleMilestones(w http.ResponseWriter, r *http.Request) {
	in := s.session.Input()
	cfg := planilla.Resolve(in.Master, in.Modifications)
	today := s.today()
	writeJSON(w, http.StatusOK, milestonesResponse{
		DaysElapsed: cfg.DaysElapsed(today),
		Milestones:  planilla.MilestoneStatuses(cfg, s.milestones, today),
	})
}

// inCurrency gives m the contract currency when it was decoded without one.
func inCurrency(m planilla.Money, currency string) planilla.Money {
	if m.Currency() != "" {
		return m
	}
	return planilla.M(m.Decimal(), currency)
}

func (s *Server) handlePutMaster(w http.ResponseWriter, r *http.Request) {
	var m planilla.MasterData
	if err := readJSON(w, r, &m); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m.Currency == "" {
		m.Currency = s.session.Input().Master.Currency
	}
	m.OriginalAmount = inCurrency(m.OriginalAmount, m.Currency)
	m.AdvanceAmount = inCurrency(m.AdvanceAmount, m.Currency)
	if err := s.session.SetMaster(m); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("master data updated", zap.String("contract", m.ContractNumber))
	s.handleContract(w, r)
}

func (s *Server) handleAddModification(w http.ResponseWriter, r *http.Request) {
	var m planilla.Modification
	if err := readJSON(w, r, &m); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if _, err := planilla.ParseModificationType(string(m.Type)); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	m.Amount = inCurrency(m.Amount, s.session.Input().Master.Currency)
	if err := s.session.AddModification(m); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("modification added", zap.String("id", m.ID), zap.Bool("active", m.Active))
	w.Header().Set("Location", "/api/modifications/"+m.ID)
	s.writeConfig(w, http.StatusCreated)
}

func (s *Server) handleToggleModification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.session.ToggleModification(id); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("modification toggled", zap.String("id", id))
	s.writeConfig(w, http.StatusOK)
}

func (s *Server) handleRemoveModification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.session.RemoveModification(id); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("modification removed", zap.String("id", id))
	s.writeConfig(w, http.StatusOK)
}

func (s *Server) writeConfig(w http.ResponseWriter, status int) {
	in := s.session.Input()
	writeJSON(w, status, planilla.Resolve(in.Master, in.Modifications))
}

func (s *Server) handleRegisterPenalty(w http.ResponseWriter, r *http.Request) {
	var p planilla.Penalty
	if err := readJSON(w, r, &p); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	p.Amount = inCurrency(p.Amount, s.session.Input().Master.Currency)
	if err := s.session.RegisterPenalty(p); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("penalty registered", zap.Int("period", p.Period), zap.Stringer("amount", p.Amount))
	writeJSON(w, http.StatusOK, s.session.Input().Penalties)
}

func (s *Server) handleRemovePenalty(w http.ResponseWriter, r *http.Request) {
	v := chi.URLParam(r, "period")
	p, err := strconv.Atoi(v)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("invalid period %q", v))
		return
	}
	if err := s.session.RemovePenalty(p); err != nil {
		writeError(w, err)
		return
	}
	s.logger.Info("penalty removed", zap.Int("period", p))
	penalties := s.session.Input().Penalties
	if penalties == nil {
		penalties = planilla.Penalties{}
	}
	writeJSON(w, http.StatusOK, penalties)
}

type refreshResponse struct {
	Items int  `json:"items"`
	Demo  bool `json:"demo"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if s.loader == nil {
		writeJSONError(w, http.StatusNotImplemented, "no sheet loader configured")
		return
	}
	items, demo, err := s.loader.Load(r.Context())
	if err != nil {
		s.logger.Warn("refresh failed", zap.Error(err))
		writeJSONError(w, http.StatusBadGateway, err.Error())
		return
	}
	source := "sheet"
	if demo {
		source = "demo"
	}
	if err := s.session.SetItems(items); err != nil {
		s.logger.Warn("refreshed items rejected", zap.Error(err))
		writeError(w, err)
		return
	}
	s.metrics.refreshes.WithLabelValues(source).Inc()
	writeJSON(w, http.StatusOK, refreshResponse{Items: len(items), Demo: demo})
}
