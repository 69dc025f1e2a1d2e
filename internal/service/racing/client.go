package racing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"FormPull/internal/domain/models"
	drepo "FormPull/internal/domain/repository"
	formsvc "FormPull/internal/services/form"
	xhttp "FormPull/pkg/http"
	"FormPull/pkg/logger"
)

var ausStates = map[string]bool{
	"NSW": true, "QLD": true, "VIC": true, "SA": true,
	"WA": true, "TAS": true, "ACT": true, "NT": true,
}

const meetingsQuery = `{
  GetMeetingByDate(date: "%date%") {
    id
    venueName
    state
  }
}`

const racesQuery = `{
  getRacesForMeet(meetCode: "%meet_code%") {
    raceNumber
    formRaceEntries {
      horseName
      barrierNumber
      speedValue
      atThisBarrierNumberStats
      atThisClassStats
      jockeyStats
      trackStats
      distanceStats
      weightCarried
      weightPrevious
    }
  }
}`

// Client implements repository.RatingsProvider against a Racing.com-style
// GraphQL API carrying speed figures and per-context stat strings.
type Client struct {
	baseURL string
	apiKey  string
	http    *xhttp.Client
	log     *logger.Logger
}

// New creates a new ratings provider client.
func New(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) drepo.RatingsProvider {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout)),
		log:     log,
	}
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message string `json:"message"`
}

type meetingsData struct {
	Meetings []meetingEntry `json:"GetMeetingByDate"`
}

type meetingEntry struct {
	ID        string `json:"id"`
	VenueName string `json:"venueName"`
	State     string `json:"state"`
}

type racesData struct {
	Races []raceEntry `json:"getRacesForMeet"`
}

type raceEntry struct {
	RaceNumber  int         `json:"raceNumber"`
	FormEntries []formEntry `json:"formRaceEntries"`
}

type formEntry struct {
	HorseName      string   `json:"horseName"`
	BarrierNumber  string   `json:"barrierNumber"`
	SpeedValue     *float64 `json:"speedValue"`
	BarrierStats   string   `json:"atThisBarrierNumberStats"`
	ClassStats     string   `json:"atThisClassStats"`
	JockeyStats    string   `json:"jockeyStats"`
	TrackStats     string   `json:"trackStats"`
	DistanceStats  string   `json:"distanceStats"`
	WeightCarried  string   `json:"weightCarried"`
	WeightPrevious string   `json:"weightPrevious"`
}

// Ratings fetches speed figures and stat strings for every runner at
// Australian meetings on the date, keyed by normalized horse name.
func (c *Client) Ratings(ctx context.Context, date string) (map[string]*models.RatingsFragment, error) {
	raw, err := c.gql(ctx, strings.ReplaceAll(meetingsQuery, "%date%", date))
	if err != nil {
		return nil, fmt.Errorf("ratings meetings query: %w", err)
	}

	var meetings meetingsData
	if err := json.Unmarshal(raw, &meetings); err != nil {
		return nil, fmt.Errorf("decode ratings meetings: %w", err)
	}

	lookup := make(map[string]*models.RatingsFragment)
	ausCount := 0
	for _, m := range meetings.Meetings {
		if !ausStates[m.State] {
			continue
		}
		ausCount++

		raw, err := c.gql(ctx, strings.ReplaceAll(racesQuery, "%meet_code%", m.ID))
		if err != nil {
			c.log.Warn("ratings races query failed",
				logger.String("venue", m.VenueName), logger.Error(err))
			continue
		}

		var races racesData
		if err := json.Unmarshal(raw, &races); err != nil {
			continue
		}

		for _, race := range races.Races {
			for _, entry := range race.FormEntries {
				name := formsvc.NormalizeName(entry.HorseName)
				if name == "" {
					continue
				}
				lookup[name] = &models.RatingsFragment{
					SpeedRating:  entry.SpeedValue,
					BarrierStat:  entry.BarrierStats,
					ClassStat:    entry.ClassStats,
					JockeyStat:   entry.JockeyStats,
					TrackStat:    entry.TrackStats,
					DistanceStat: entry.DistanceStats,
					WeightToday:  entry.WeightCarried,
					WeightLast:   entry.WeightPrevious,
				}
			}
		}
	}

	c.log.Info("ratings fetched",
		logger.Int("aus_meetings", ausCount),
		logger.Int("runners", len(lookup)),
	)
	return lookup, nil
}

func (c *Client) gql(ctx context.Context, query string) (json.RawMessage, error) {
	var resp gqlResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL,
		Body:   map[string]string{"query": query},
		Headers: map[string]string{
			"Content-Type": "application/json",
			"x-api-key":    c.apiKey,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("graphql: %s", resp.Errors[0].Message)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("graphql: empty response")
	}
	return resp.Data, nil
}
