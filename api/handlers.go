/*
handlers.go - HTTP API handlers for the work-time calculator

PURPOSE:
  Exposes profiles, their day ledgers and reports over REST. Handlers parse
  and validate input, rebuild a Calculator from the store and serialize the
  result; all arithmetic stays in the worktime package.

ENDPOINTS:
  Profiles:
    GET    /api/profiles                    List profiles
    POST   /api/profiles                    Create profile
    GET    /api/profiles/{id}               Profile with ledgers
    PUT    /api/profiles/{id}               Replace profile settings
    POST   /api/profiles/{id}/vacation-days Append vacation days
    POST   /api/profiles/{id}/sick-days     Append sick days
    GET    /api/profiles/{id}/report        Report for ?date= (default today)
    GET    /api/profiles/{id}/projection    Year-end projection, 422 if unconfigured

  Calendar:
    GET    /api/calendar/working-days       ?regions=&from=&until=
    GET    /api/calendar/holidays           ?regions=&year=

  Company holidays:
    GET    /api/holidays                    ?region=
    POST   /api/holidays
    DELETE /api/holidays/{id}

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid input (dates, regions, body)
  - 404: Unknown profile or holiday
  - 422: A query needs configuration the profile does not have
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/worktime/calendar"
	"github.com/warp/worktime/generic"
	"github.com/warp/worktime/logger"
	"github.com/warp/worktime/metrics"
	"github.com/warp/worktime/store/sqlite"
	"github.com/warp/worktime/worktime"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	Calendar *calendar.Calendar
	Clock    generic.Clock

	// Used by the calendar endpoints when ?regions= is absent.
	DefaultRegions []string
}

// NewHandler creates a handler whose calendar includes the store's
// company holidays.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:          store,
		Calendar:       &calendar.Calendar{Extra: store},
		Clock:          generic.SystemClock{},
		DefaultRegions: []string{"de"},
	}
}

// Health reports whether the database answers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// PROFILE HANDLERS
// =============================================================================

// ListProfiles returns all profiles without ledgers.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Store.ListProfiles(r.Context())
	if err != nil {
		h.fail(w, r, "Failed to list profiles", err)
		return
	}

	dtos := make([]ProfileDTO, len(profiles))
	for i := range profiles {
		dtos[i] = toProfileDTO(&profiles[i], nil)
	}
	writeJSON(w, http.StatusOK, map[string]any{"profiles": dtos})
}

// CreateProfile creates a profile.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	h.saveProfile(w, r, "", http.StatusCreated)
}

// UpdateProfile replaces the settings of an existing profile. Ledgers are
// kept.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Store.GetProfile(r.Context(), id); err != nil {
		h.fail(w, r, "Failed to get profile", err)
		return
	}
	h.saveProfile(w, r, id, http.StatusOK)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request, id string, status int) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := validateProfile(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid profile", err)
		return
	}

	id, err := h.Store.SaveProfile(r.Context(), toProfile(id, req))
	if err != nil {
		h.fail(w, r, "Failed to save profile", err)
		return
	}
	logger.WithContext(r.Context()).Info().Str("profile_id", id).Msg("profile saved")

	h.writeProfile(w, r, id, status)
}

func validateProfile(req ProfileRequest) error {
	if req.Name == "" {
		return errors.New("name is required")
	}
	if req.HoursPerWeek != nil && *req.HoursPerWeek <= 0 {
		return errors.New("hours_per_week must be positive")
	}
	if req.Regions != nil {
		if err := calendar.ValidateRegions(*req.Regions); err != nil {
			return err
		}
	}
	return nil
}

// GetProfile returns a profile with both ledgers.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	h.writeProfile(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

func (h *Handler) writeProfile(w http.ResponseWriter, r *http.Request, id string, status int) {
	calc, profile, err := h.Store.LoadCalculator(r.Context(), id, h.Calendar)
	if err != nil {
		h.fail(w, r, "Failed to get profile", err)
		return
	}
	writeJSON(w, status, toProfileDTO(profile, calc))
}

// AddVacationDays appends to the vacation ledger.
func (h *Handler) AddVacationDays(w http.ResponseWriter, r *http.Request) {
	h.addDays(w, r, sqlite.KindVacation)
}

// AddSickDays appends to the sick ledger.
func (h *Handler) AddSickDays(w http.ResponseWriter, r *http.Request) {
	h.addDays(w, r, sqlite.KindSick)
}

func (h *Handler) addDays(w http.ResponseWriter, r *http.Request, kind sqlite.DayKind) {
	id := chi.URLParam(r, "id")

	var req AddDaysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Dates) == 0 {
		writeError(w, http.StatusBadRequest, "dates is required", nil)
		return
	}

	days := make([]generic.TimePoint, 0, len(req.Dates))
	for _, raw := range req.Dates {
		d, err := generic.ParseTimePoint(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
			return
		}
		days = append(days, d)
	}

	if err := h.Store.AppendDays(r.Context(), id, kind, days); err != nil {
		h.fail(w, r, fmt.Sprintf("Failed to record %s days", kind), err)
		return
	}
	metrics.LedgerDaysRecorded.WithLabelValues(string(kind)).Add(float64(len(days)))
	logger.WithContext(r.Context()).Info().
		Str("profile_id", id).
		Str("kind", string(kind)).
		Int("days", len(days)).
		Msg("days recorded")

	h.writeProfile(w, r, id, http.StatusCreated)
}

// GetReport evaluates the profile's calculator at ?date=, today by default.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	calc, date, ok := h.loadAt(w, r)
	if !ok {
		return
	}

	report := calc.Report(date)
	metrics.ReportsTotal.Inc()
	metrics.RecordMissing(report.Missing)

	writeJSON(w, http.StatusOK, NewReportDTO(chi.URLParam(r, "id"), report))
}

// GetProjection returns only the year-end projection. Unlike the report it
// fails when regions or the vacation total are missing.
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	calc, date, ok := h.loadAt(w, r)
	if !ok {
		return
	}

	projected, err := calc.ProjectedHours(date)
	if err != nil {
		h.fail(w, r, "Cannot project working hours", err)
		return
	}
	target, err := calc.TargetHours(date.Year())
	if err != nil {
		h.fail(w, r, "Cannot project working hours", err)
		return
	}
	overtime, err := calc.ProjectedOvertimeHours(date)
	if err != nil {
		h.fail(w, r, "Cannot project working hours", err)
		return
	}
	hoursPerDay := calc.HoursPerDay()

	writeJSON(w, http.StatusOK, ProjectionDTO{
		ProjectedHours: amount(projected, generic.UnitHours),
		ProjectedDays:  amount(projected/hoursPerDay, generic.UnitDays),
		TargetHours:    amount(target, generic.UnitHours),
		OvertimeHours:  amount(overtime, generic.UnitHours),
		OvertimeDays:   amount(overtime/hoursPerDay, generic.UnitDays),
	})
}

// loadAt rebuilds the calculator of {id} and parses ?date=.
func (h *Handler) loadAt(w http.ResponseWriter, r *http.Request) (*worktime.Calculator, generic.TimePoint, bool) {
	date := generic.Today(h.Clock)
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := generic.ParseTimePoint(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
			return nil, date, false
		}
		date = d
	}

	calc, _, err := h.Store.LoadCalculator(r.Context(), chi.URLParam(r, "id"), h.Calendar, worktime.WithClock(h.Clock))
	if err != nil {
		h.fail(w, r, "Failed to load profile", err)
		return nil, date, false
	}
	return calc, date, true
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// GetWorkingDays counts working days in [from, until] for ?regions=.
func (h *Handler) GetWorkingDays(w http.ResponseWriter, r *http.Request) {
	regions, ok := h.regionsParam(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	from, err := generic.ParseTimePoint(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date (use YYYY-MM-DD)", err)
		return
	}
	until, err := generic.ParseTimePoint(q.Get("until"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid until date (use YYYY-MM-DD)", err)
		return
	}

	start := time.Now()
	count := h.Calendar.WorkingDaysBetween(regions, from, until)
	metrics.WorkingDaysQueryDuration.Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, WorkingDaysDTO{
		Regions:     regions,
		From:        from.String(),
		Until:       until.String(),
		WorkingDays: count,
	})
}

// GetCalendarHolidays lists the holidays of ?year= for ?regions=.
func (h *Handler) GetCalendarHolidays(w http.ResponseWriter, r *http.Request) {
	regions, ok := h.regionsParam(w, r)
	if !ok {
		return
	}

	year := generic.Today(h.Clock).Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = y
	}

	writeJSON(w, http.StatusOK, HolidaysDTO{
		Regions:  regions,
		Year:     year,
		Holidays: h.Calendar.Holidays(regions, year),
	})
}

func (h *Handler) regionsParam(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	regions := h.DefaultRegions
	if raw := r.URL.Query().Get("regions"); raw != "" {
		regions = calendar.ParseRegions(raw)
	}
	if err := calendar.ValidateRegions(regions); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid regions", err)
		return nil, false
	}
	return regions, true
}

// =============================================================================
// COMPANY HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns stored company holidays, optionally for ?region=.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Store.ListHolidays(r.Context(), r.URL.Query().Get("region"))
	if err != nil {
		h.fail(w, r, "Failed to get holidays", err)
		return
	}

	dtos := make([]HolidayDTO, 0, len(holidays))
	for _, hol := range holidays {
		dtos = append(dtos, HolidayDTO{
			ID:     hol.ID,
			Region: hol.Region,
			Date:   hol.Date.String(),
			Name:   hol.Name,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"holidays": dtos})
}

// CreateHoliday stores a company holiday.
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Date == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Date and name are required", nil)
		return
	}
	date, err := generic.ParseTimePoint(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}
	if req.Region != "" {
		if err := calendar.ValidateRegions([]string{req.Region}); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid region", err)
			return
		}
	}

	id, err := h.Store.SaveHoliday(r.Context(), sqlite.HolidayRecord{
		Region: req.Region,
		Date:   date,
		Name:   req.Name,
	})
	if err != nil {
		h.fail(w, r, "Failed to create holiday", err)
		return
	}

	writeJSON(w, http.StatusCreated, HolidayDTO{
		ID:     id,
		Region: req.Region,
		Date:   date.String(),
		Name:   req.Name,
	})
}

// DeleteHoliday deletes a company holiday.
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "Failed to delete holiday", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// HELPERS
// =============================================================================

// fail maps err to a status code; unexpected errors are logged.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case generic.IsPrecondition(err):
		field := generic.MissingField(err)
		metrics.RecordMissing([]string{field})
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   message,
			Details: err.Error(),
			Field:   field,
		})
	case errors.Is(err, sqlite.ErrProfileNotFound), errors.Is(err, sqlite.ErrHolidayNotFound):
		writeError(w, http.StatusNotFound, message, err)
	default:
		logger.WithContext(r.Context()).Error().Err(err).Msg(message)
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
