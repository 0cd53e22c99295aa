package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/zapponejosh/liturgical-day/internal/calendar"
	"github.com/zapponejosh/liturgical-day/internal/config"
	"github.com/zapponejosh/liturgical-day/internal/feed"
	"github.com/zapponejosh/liturgical-day/internal/logger"
)

// MaxRangeDays is the longest span served by the range endpoint.
const MaxRangeDays = 90

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	resolver *calendar.DateResolver
	clock    calendar.Clock
	cfg      *config.Config
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(clock calendar.Clock, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		resolver: calendar.NewDateResolver(clock),
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// rangeQuery holds the range endpoint's query parameters.
type rangeQuery struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
}

// RangeResponse is the payload of the range endpoint.
type RangeResponse struct {
	Start calendar.Date            `json:"start"`
	End   calendar.Date            `json:"end"`
	Days  []calendar.LiturgicalDay `json:"days"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetLiturgicalDay handles GET /liturgical-day?date=YYYY-MM-DD
func (h *Handlers) GetLiturgicalDay(w http.ResponseWriter, r *http.Request) {
	h.writeDay(w, r, r.URL.Query().Get("date"))
}

// GetTodayLiturgicalDay handles GET /api/v1/liturgical-day
func (h *Handlers) GetTodayLiturgicalDay(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, calendar.Resolve(h.resolver.Today()))
}

// GetDateLiturgicalDay handles GET /api/v1/liturgical-day/{date}
func (h *Handlers) GetDateLiturgicalDay(w http.ResponseWriter, r *http.Request) {
	h.writeDay(w, r, chi.URLParam(r, "date"))
}

func (h *Handlers) writeDay(w http.ResponseWriter, r *http.Request, dateStr string) {
	day, err := h.resolver.Compute(dateStr)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidDateFormat) {
			logger.FromContext(r.Context(), h.logger).Debug("rejected date",
				slog.String("date", dateStr),
				slog.Any("error", err))
			WriteInvalidDate(w)
			return
		}
		logger.FromContext(r.Context(), h.logger).Error("failed to compute liturgical day",
			slog.String("date", dateStr),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to compute liturgical day")
		return
	}

	WriteSuccess(w, day)
}

// GetRangeLiturgicalDays handles GET /api/v1/liturgical-day/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRangeLiturgicalDays(w http.ResponseWriter, r *http.Request) {
	q := rangeQuery{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	if err := h.validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					WriteBadRequest(w, "Both start and end date parameters are required")
					return
				}
			}
		}
		WriteInvalidDate(w)
		return
	}

	start, err := calendar.ParseDate(q.Start)
	if err != nil {
		WriteInvalidDate(w)
		return
	}
	end, err := calendar.ParseDate(q.End)
	if err != nil {
		WriteInvalidDate(w)
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	if end.DaysSince(start)+1 > MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", MaxRangeDays))
		return
	}

	WriteSuccess(w, RangeResponse{
		Start: start,
		End:   end,
		Days:  h.resolver.ResolveRange(start, end),
	})
}

// GetAnchors handles GET /api/v1/anchors/{year}
func (h *Handlers) GetAnchors(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, chi.URLParam(r, "year"))
	if !ok {
		return
	}

	WriteSuccess(w, calendar.AnchorsFor(year))
}

// GetCalendarFeed handles GET /api/v1/calendar/{year}.ics
func (h *Handlers) GetCalendarFeed(w http.ResponseWriter, r *http.Request) {
	year, ok := h.parseYear(w, chi.URLParam(r, "year"))
	if !ok {
		return
	}

	body := feed.Serialize(year, h.clock.Now().UTC())

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", fmt.Sprintf("liturgical-%d.ics", year)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.FromContext(r.Context(), h.logger).Warn("failed to write calendar feed",
			slog.Int("year", year),
			slog.Any("error", err))
	}
}

// parseYear reads a Gregorian year, writing a 400 response when it is not one.
func (h *Handlers) parseYear(w http.ResponseWriter, s string) (int, bool) {
	year, err := strconv.Atoi(s)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", s))
		return 0, false
	}

	if err := h.validate.Var(year, "gte=1583,lte=9999"); err != nil {
		WriteBadRequest(w, "Year must be between 1583 and 9999")
		return 0, false
	}

	return year, true
}
