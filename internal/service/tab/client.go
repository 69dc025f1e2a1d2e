package tab

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"FormPull/internal/domain/models"
	drepo "FormPull/internal/domain/repository"
	"FormPull/internal/service/ratelimit"
	xhttp "FormPull/pkg/http"
	"FormPull/pkg/logger"
)

// Location codes accepted by default: Australian states and territories,
// New Zealand, and Japan. Everything else is dropped unless the client is
// built with allTracks.
var allowedLocations = map[string]bool{
	"NSW": true, "VIC": true, "QLD": true, "SA": true,
	"WA": true, "TAS": true, "ACT": true, "NT": true,
	"NZL": true,
	"JPN": true,
}

// The feed rejects requests without browser-looking headers.
var browserHeaders = map[string]string{
	"accept":          "application/json, text/plain, */*",
	"accept-language": "en-GB,en-US;q=0.9,en;q=0.8",
	"user-agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/145.0.0.0 Safari/537.36",
	"sec-fetch-dest": "empty",
	"sec-fetch-mode": "cors",
	"sec-fetch-site": "same-site",
}

// Client implements repository.OddsFeed against a TAB-style racing info API.
type Client struct {
	baseURL   string
	allTracks bool
	http      *xhttp.Client
	limiter   *ratelimit.Limiter
	log       *logger.Logger
}

// New creates a new odds feed client.
func New(baseURL string, allTracks bool, timeout time.Duration, log *logger.Logger) drepo.OddsFeed {
	headers := make(map[string]string, len(browserHeaders)+2)
	for k, v := range browserHeaders {
		headers[k] = v
	}
	headers["origin"] = "https://www.tab.com.au"
	headers["referer"] = "https://www.tab.com.au/"

	return &Client{
		baseURL:   baseURL,
		allTracks: allTracks,
		http: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithDefaultHeaders(headers),
		),
		limiter: ratelimit.New(),
		log:     log,
	}
}

type meetingsResponse struct {
	Meetings []meetingDTO `json:"meetings"`
}

type meetingDTO struct {
	MeetingName    string    `json:"meetingName"`
	VenueMnemonic  string    `json:"venueMnemonic"`
	RaceType       string    `json:"raceType"`
	Location       string    `json:"location"`
	TrackCondition string    `json:"trackCondition"`
	Races          []raceDTO `json:"races"`
}

type raceDTO struct {
	RaceNumber    int         `json:"raceNumber"`
	RaceName      string      `json:"raceName"`
	RaceDistance  int         `json:"raceDistance"`
	RaceStartTime string      `json:"raceStartTime"`
	Runners       []runnerDTO `json:"runners"`
}

type raceDetailResponse struct {
	Runners []runnerDTO `json:"runners"`
}

type runnerDTO struct {
	RunnerNumber    int      `json:"runnerNumber"`
	RunnerName      string   `json:"runnerName"`
	BarrierNumber   any      `json:"barrierNumber"`
	RiderDriverName string   `json:"riderDriverName"`
	TrainerName     string   `json:"trainerName"`
	HandicapWeight  any      `json:"handicapWeight"`
	WeightTotal     any      `json:"weightTotal"`
	WeightKg        any      `json:"weightKg"`
	FixedOdds       quoteDTO `json:"fixedOdds"`
	Parimutuel      quoteDTO `json:"parimutuel"`
}

type quoteDTO struct {
	ReturnWin     float64 `json:"returnWin"`
	ReturnPlace   float64 `json:"returnPlace"`
	BettingStatus string  `json:"bettingStatus"`
}

// Meetings fetches horse racing meetings for the date. The jurisdiction
// "NSW" returns the national feed. Non-allowed locations are filtered out
// unless the client was built with allTracks.
func (c *Client) Meetings(ctx context.Context, date, jurisdiction string) ([]models.MeetingInfo, error) {
	var resp meetingsResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         fmt.Sprintf("%s/dates/%s/meetings", c.baseURL, date),
		QueryParams: map[string][]string{"jurisdiction": {jurisdiction}},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch meetings: %w", err)
	}

	var out []models.MeetingInfo
	var dropped []string
	for _, m := range resp.Meetings {
		if m.RaceType != "R" {
			continue
		}
		if !c.allTracks && !allowedLocations[m.Location] {
			dropped = append(dropped, m.MeetingName)
			continue
		}
		out = append(out, toMeetingInfo(m))
	}

	c.log.Info("meetings fetched",
		logger.String("date", date),
		logger.Int("meetings", len(out)),
		logger.Strings("dropped", dropped),
	)
	return out, nil
}

// RaceDetail fetches per-race runner quotes. A failed or empty detail
// response is not an error; callers fall back to the meeting-level list.
func (c *Client) RaceDetail(ctx context.Context, date string, m models.MeetingInfo, raceNumber int, jurisdiction string) ([]models.RunnerQuote, error) {
	raceType := m.RaceType
	if raceType == "" {
		raceType = "R"
	}

	// Up to 10 burst requests, refilling at 5/s.
	if err := c.limiter.Wait(ctx, "race-detail", 10, 5); err != nil {
		return nil, err
	}

	var resp raceDetailResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL: fmt.Sprintf("%s/dates/%s/meetings/%s/%s/races/%d",
			c.baseURL, date, raceType, m.VenueCode, raceNumber),
		QueryParams: map[string][]string{"jurisdiction": {jurisdiction}},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch race detail %s R%d: %w", m.VenueCode, raceNumber, err)
	}

	quotes := make([]models.RunnerQuote, 0, len(resp.Runners))
	for _, r := range resp.Runners {
		quotes = append(quotes, toQuote(r))
	}
	return quotes, nil
}

func toMeetingInfo(m meetingDTO) models.MeetingInfo {
	info := models.MeetingInfo{
		Name:           m.MeetingName,
		VenueCode:      m.VenueMnemonic,
		RaceType:       m.RaceType,
		Location:       m.Location,
		TrackCondition: m.TrackCondition,
	}
	for _, r := range m.Races {
		race := models.RaceInfo{
			Number:    r.RaceNumber,
			Name:      r.RaceName,
			Distance:  r.RaceDistance,
			StartTime: r.RaceStartTime,
		}
		for _, run := range r.Runners {
			race.Runners = append(race.Runners, toQuote(run))
		}
		info.Races = append(info.Races, race)
	}
	return info
}

func toQuote(r runnerDTO) models.RunnerQuote {
	return models.RunnerQuote{
		Number:      r.RunnerNumber,
		Name:        r.RunnerName,
		Barrier:     anyToString(r.BarrierNumber),
		Jockey:      r.RiderDriverName,
		Trainer:     r.TrainerName,
		Weight:      firstWeight(r.HandicapWeight, r.WeightTotal, r.WeightKg),
		WinFixed:    r.FixedOdds.ReturnWin,
		PlaceFixed:  r.FixedOdds.ReturnPlace,
		WinTote:     r.Parimutuel.ReturnWin,
		FixedStatus: r.FixedOdds.BettingStatus,
		ToteStatus:  r.Parimutuel.BettingStatus,
	}
}

// The feed is loose about numeric fields: barriers and weights arrive as
// numbers or strings depending on the meeting.
func anyToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int(x)) {
			return strconv.Itoa(int(x))
		}
		return strconv.FormatFloat(x, 'f', 1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func firstWeight(vals ...any) string {
	for _, v := range vals {
		if s := anyToString(v); s != "" && s != "0" {
			return s
		}
	}
	return ""
}
