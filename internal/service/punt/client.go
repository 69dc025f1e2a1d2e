package punt

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
	"FormPull/pkg/util"
)

// Australian state codes used by the form API.
var ausStates = map[string]bool{
	"NSW": true, "QLD": true, "VIC": true, "SA": true,
	"WA": true, "TAS": true, "ACT": true, "NT": true,
}

// Phase 1: bulk career stats across all meetings.
const statsQuery = `{
  meetings(startDate: "%date%", endDate: "%date%") {
    id
    name
    state
    events {
      id
      eventNumber
      entryConditions { type description }
      selections {
        id
        barrierNumber
        weight
        status
        competitor { id name }
        jockey { id name }
        trainer { id name }
        stats {
          wins
          totalRuns
          dryPlaces
          wetPlaces
          class
          barrierStats { name wins runs }
        }
      }
    }
  }
}`

// Phase 2: per-meeting last-run details. Asking for these in bulk times out
// upstream, so they go one meeting at a time.
const lastRunQuery = `{
  meeting(id: "%meeting_id%") {
    id
    events {
      id
      selections {
        id
        competitor { id name }
        lastRun {
          id
          finishPosition
          margin
          meetingName
          event {
            name
            distance
            startTime
            entryConditions { type description }
          }
        }
      }
    }
  }
}`

// Phase 3: jockey and trainer career stats. The schema may not expose stats
// on jockey/trainer objects, so failures here are silently skipped.
const jockeyTrainerQuery = `{
  meetings(startDate: "%date%", endDate: "%date%") {
    id
    state
    events {
      id
      selections {
        id
        jockey {
          id
          name
          stats { wins totalRuns }
        }
        trainer {
          id
          name
          stats { wins totalRuns }
        }
      }
    }
  }
}`

// Client implements repository.FormProvider against a Racenet-style
// GraphQL form API.
type Client struct {
	baseURL string
	http    *xhttp.Client
	log     *logger.Logger
}

// New creates a new form provider client. The API serves anonymous
// traffic as "guest"; an apiKey replaces that token when supplied.
func New(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) drepo.FormProvider {
	return &Client{
		baseURL: baseURL,
		http: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithDefaultHeaders(map[string]string{
				"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
					"(KHTML, like Gecko) Chrome/145.0.0.0 Safari/537.36",
				"Origin":        "https://www.racenet.com.au",
				"Accept":        "application/json",
				"Authorization": bearerToken(apiKey),
			}),
		),
		log: log,
	}
}

func bearerToken(apiKey string) string {
	if apiKey == "" {
		return "Bearer guest"
	}
	return "Bearer " + apiKey
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message string `json:"message"`
}

type statsData struct {
	Meetings []meetingNode `json:"meetings"`
}

type meetingNode struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	State  string      `json:"state"`
	Events []eventNode `json:"events"`
}

type eventNode struct {
	ID              string          `json:"id"`
	EventNumber     int             `json:"eventNumber"`
	EntryConditions []condition     `json:"entryConditions"`
	Selections      []selectionNode `json:"selections"`
}

type condition struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type selectionNode struct {
	ID         string      `json:"id"`
	Competitor *named      `json:"competitor"`
	Jockey     *personNode `json:"jockey"`
	Trainer    *personNode `json:"trainer"`
	Stats      *statsNode  `json:"stats"`
	LastRun    *lastRun    `json:"lastRun"`
}

type named struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type personNode struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Stats *statsNode `json:"stats"`
}

type statsNode struct {
	Wins      int    `json:"wins"`
	TotalRuns int    `json:"totalRuns"`
	Class     string `json:"class"`
	// The API returns [wins, seconds, thirds] normally but collapses the
	// field to a bare 0 when the horse has no starts on that surface.
	DryPlaces    json.RawMessage `json:"dryPlaces"`
	WetPlaces    json.RawMessage `json:"wetPlaces"`
	BarrierStats []barrierStat   `json:"barrierStats"`
}

type barrierStat struct {
	Name any `json:"name"`
	Wins int `json:"wins"`
	Runs int `json:"runs"`
}

type lastRun struct {
	FinishPosition any          `json:"finishPosition"`
	Margin         float64      `json:"margin"`
	MeetingName    string       `json:"meetingName"`
	Event          lastRunEvent `json:"event"`
}

type lastRunEvent struct {
	Name            string      `json:"name"`
	Distance        any         `json:"distance"`
	StartTime       string      `json:"startTime"`
	EntryConditions []condition `json:"entryConditions"`
}

type lastRunData struct {
	Meeting *meetingNode `json:"meeting"`
}

// Form fetches the full form index for the date: bulk career stats, then
// per-meeting last-run details for Australian meetings, then best-effort
// jockey and trainer aggregates.
func (c *Client) Form(ctx context.Context, date string) (*models.FormIndex, error) {
	idx := models.NewFormIndex()

	raw, err := c.gql(ctx, strings.ReplaceAll(statsQuery, "%date%", date))
	if err != nil {
		return nil, fmt.Errorf("form stats query: %w", err)
	}

	var stats statsData
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode form stats: %w", err)
	}

	selByID := make(map[string]*models.FormFragment)
	var ausMeetingIDs []string

	for _, meeting := range stats.Meetings {
		if ausStates[meeting.State] {
			ausMeetingIDs = append(ausMeetingIDs, meeting.ID)
		}
		for _, event := range meeting.Events {
			todayClass := classCondition(event.EntryConditions)
			for _, sel := range event.Selections {
				if sel.Competitor == nil {
					continue
				}
				name := formsvc.NormalizeName(sel.Competitor.Name)
				if name == "" {
					continue
				}

				frag := &models.FormFragment{CurrentClass: todayClass}
				if s := sel.Stats; s != nil {
					if s.TotalRuns > 0 {
						frag.Career = fmt.Sprintf("%dW/%dR", s.Wins, s.TotalRuns)
					}
					frag.Dry = toSplit(s.DryPlaces)
					frag.Wet = toSplit(s.WetPlaces)
					if frag.CurrentClass == "" {
						frag.CurrentClass = formsvc.ClassFromStat(s.Class)
					}
					frag.BarrierStats = indexBarrierStats(s.BarrierStats)
				}

				idx.Horses[name] = frag
				selByID[sel.ID] = frag
			}
		}
	}

	c.log.Info("form phase 1 complete",
		logger.Int("horses", len(idx.Horses)),
		logger.Int("aus_meetings", len(ausMeetingIDs)),
	)

	enriched := c.fetchLastRuns(ctx, date, ausMeetingIDs, idx, selByID)
	c.log.Info("form phase 2 complete", logger.Int("enriched", enriched))

	c.fetchPeopleStats(ctx, date, idx)

	return idx, nil
}

func (c *Client) fetchLastRuns(ctx context.Context, date string, meetingIDs []string, idx *models.FormIndex, selByID map[string]*models.FormFragment) int {
	today, _ := time.Parse(util.DateLayout, date)
	enriched := 0

	for _, mtgID := range meetingIDs {
		raw, err := c.gql(ctx, strings.ReplaceAll(lastRunQuery, "%meeting_id%", mtgID))
		if err != nil {
			c.log.Warn("last-run query failed", logger.String("meeting", mtgID), logger.Error(err))
			continue
		}

		var lr lastRunData
		if err := json.Unmarshal(raw, &lr); err != nil || lr.Meeting == nil {
			continue
		}

		for _, event := range lr.Meeting.Events {
			for _, sel := range event.Selections {
				frag := selByID[sel.ID]
				if frag == nil && sel.Competitor != nil {
					frag = idx.Horses[formsvc.NormalizeName(sel.Competitor.Name)]
				}
				if frag == nil || sel.LastRun == nil {
					continue
				}
				applyLastRun(frag, sel.LastRun, today)
				enriched++
			}
		}
	}
	return enriched
}

func (c *Client) fetchPeopleStats(ctx context.Context, date string, idx *models.FormIndex) {
	raw, err := c.gql(ctx, strings.ReplaceAll(jockeyTrainerQuery, "%date%", date))
	if err != nil {
		c.log.Warn("jockey/trainer query not supported", logger.Error(err))
		return
	}

	var stats statsData
	if err := json.Unmarshal(raw, &stats); err != nil {
		return
	}

	for _, meeting := range stats.Meetings {
		for _, event := range meeting.Events {
			for _, sel := range event.Selections {
				if j := sel.Jockey; j != nil && j.Stats != nil && j.Stats.TotalRuns > 0 {
					idx.Jockeys[formsvc.NormalizeName(j.Name)] = models.WinRuns{
						Wins: j.Stats.Wins,
						Runs: j.Stats.TotalRuns,
					}
				}
				if t := sel.Trainer; t != nil && t.Stats != nil && t.Stats.TotalRuns > 0 {
					idx.Trainers[formsvc.NormalizeName(t.Name)] = models.WinRuns{
						Wins: t.Stats.Wins,
						Runs: t.Stats.TotalRuns,
					}
				}
			}
		}
	}

	if len(idx.Jockeys) > 0 || len(idx.Trainers) > 0 {
		c.log.Info("form phase 3 complete",
			logger.Int("jockeys", len(idx.Jockeys)),
			logger.Int("trainers", len(idx.Trainers)),
		)
	} else {
		c.log.Warn("jockey/trainer stats unavailable")
	}
}

func (c *Client) gql(ctx context.Context, query string) (json.RawMessage, error) {
	var resp gqlResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL,
		Body:   map[string]string{"query": query},
		Headers: map[string]string{
			"Content-Type": "application/json",
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

func applyLastRun(frag *models.FormFragment, lr *lastRun, today time.Time) {
	var daysLabel string
	if lr.Event.StartTime != "" {
		if start, ok := util.ParseTime(lr.Event.StartTime); ok {
			days := util.DaysBetween(start, today)
			frag.DaysSince = &days
			daysLabel = fmt.Sprintf("%dd ago", days)
		}
	}

	marginLabel := ""
	if lr.Margin > 0 {
		marginLabel = fmt.Sprintf(" (%gL)", lr.Margin)
	}
	dist := anyToString(lr.Event.Distance)
	frag.LastRun = fmt.Sprintf("%sth%s %s %sm (%s)",
		anyToString(lr.FinishPosition), marginLabel, lr.MeetingName, dist, daysLabel)

	if d, ok := util.ParseMeters(dist + "m"); ok {
		frag.LastDistance = &d
	}
	frag.LastClass = classCondition(lr.Event.EntryConditions)
}

func classCondition(conditions []condition) string {
	for _, c := range conditions {
		if c.Type == "Class" {
			return c.Description
		}
	}
	return ""
}

// toSplit reads a wins/seconds/thirds array, tolerating feeds that
// truncate trailing zero counts.
func toSplit(raw json.RawMessage) models.PlaceSplit {
	var arr []int
	if err := json.Unmarshal(raw, &arr); err != nil {
		return models.PlaceSplit{}
	}
	var split models.PlaceSplit
	for i, v := range arr {
		if i >= len(split) {
			break
		}
		split[i] = v
	}
	return split
}

func indexBarrierStats(stats []barrierStat) map[string]models.WinRuns {
	if len(stats) == 0 {
		return nil
	}
	out := make(map[string]models.WinRuns, len(stats))
	for _, s := range stats {
		if s.Name == nil {
			continue
		}
		out[anyToString(s.Name)] = models.WinRuns{Wins: s.Wins, Runs: s.Runs}
	}
	return out
}

func anyToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == float64(int(x)) {
			return fmt.Sprintf("%d", int(x))
		}
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
