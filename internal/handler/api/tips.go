package api

import (
	"time"

	models "FormPull/internal/domain/models"
	"FormPull/internal/services/batch"
	"FormPull/internal/usecase"
	xhttp "FormPull/pkg/http"
	xlogger "FormPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TipsHandler serves the latest assembled tip sheet.
type TipsHandler struct {
	logger *xlogger.Logger
	store  *usecase.TipStore
}

func NewTipsHandler(logger *xlogger.Logger, store *usecase.TipStore) *TipsHandler {
	return &TipsHandler{logger: logger, store: store}
}

func (h *TipsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/tips", h.Tips)
	g.GET("/meetings", h.Meetings)
	e.GET("/healthz", h.Health)
}

// TipRow is one race with its pick, flattened for consumers.
type TipRow struct {
	Track      string       `json:"track"`
	RaceNumber int          `json:"race_number"`
	RaceName   string       `json:"race_name"`
	Distance   int          `json:"distance"`
	Condition  string       `json:"condition"`
	Wet        bool         `json:"wet"`
	StartTime  string       `json:"start_time"`
	Runners    int          `json:"runners"`
	Pick       *models.Pick `json:"pick,omitempty"`
}

// MeetingRow is one meeting summary.
type MeetingRow struct {
	Track     string `json:"track"`
	Location  string `json:"location"`
	Condition string `json:"condition"`
	Wet       bool   `json:"wet"`
	Races     int    `json:"races"`
}

func (h *TipsHandler) Tips(c echo.Context) error {
	req := &models.TipsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	sheet := h.store.Latest()
	if sheet == nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no tip sheet generated yet"))
	}
	if req.Date != "" && req.Date != sheet.Date {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("no tip sheet for %s", req.Date))
	}

	rows := make([]TipRow, 0, req.Limit)
	for _, race := range sheet.Races() {
		if req.Track != "" && race.Track != req.Track {
			continue
		}
		if len(rows) >= req.Limit {
			break
		}
		rows = append(rows, TipRow{
			Track:      race.Track,
			RaceNumber: race.Number,
			RaceName:   race.Name,
			Distance:   race.Distance,
			Condition:  race.TrackCondition,
			Wet:        race.TrackWet,
			StartTime:  race.StartTime,
			Runners:    len(race.Runners),
			Pick:       sheet.Picks[batch.PickKey(race.Track, race.Number)],
		})
	}

	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *TipsHandler) Meetings(c echo.Context) error {
	req := &models.MeetingsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	sheet := h.store.Latest()
	if sheet == nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no tip sheet generated yet"))
	}

	rows := make([]MeetingRow, 0, len(sheet.Meetings))
	for _, m := range sheet.Meetings {
		if req.Location != "" && m.Location != req.Location {
			continue
		}
		if req.WetOnly && !m.TrackWet {
			continue
		}
		rows = append(rows, MeetingRow{
			Track:     m.Track,
			Location:  m.Location,
			Condition: m.TrackCondition,
			Wet:       m.TrackWet,
			Races:     len(m.Races),
		})
	}

	return xhttp.ListResponse(c, rows, int64(len(rows)))
}

func (h *TipsHandler) Health(c echo.Context) error {
	sheet := h.store.Latest()
	status := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if sheet != nil {
		status["sheet_date"] = sheet.Date
		status["generated_at"] = sheet.GeneratedAt.UTC().Format(time.RFC3339)
	}
	return xhttp.SuccessResponse(c, status)
}
