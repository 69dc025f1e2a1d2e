package usecase

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"FormPull/internal/domain/models"
	"FormPull/internal/services/batch"
)

// WriteTipSheetCSV renders the finished tip sheet as two CSV files in dir:
// a picks summary and the full runner breakdown. Returns the picks path.
func WriteTipSheetCSV(sheet *models.TipSheet, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	picksPath := filepath.Join(dir, fmt.Sprintf("tips_%s.csv", sheet.Date))
	if err := writePicks(sheet, picksPath); err != nil {
		return "", err
	}

	runnersPath := filepath.Join(dir, fmt.Sprintf("runners_%s.csv", sheet.Date))
	if err := writeRunners(sheet, runnersPath); err != nil {
		return "", err
	}

	return picksPath, nil
}

func writePicks(sheet *models.TipSheet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create picks csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Track", "Race", "Name", "Distance", "Condition", "Pick", "Barrier", "Odds", "Rating", "Analysis"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, race := range sheet.Races() {
		row := []string{
			race.Track,
			strconv.Itoa(race.Number),
			race.Name,
			strconv.Itoa(race.Distance),
			race.TrackCondition,
			"", "", "", "", "",
		}
		if pick := sheet.Picks[batch.PickKey(race.Track, race.Number)]; pick != nil {
			row[5] = pick.Pick
			row[6] = pick.Barrier
			row[7] = pick.Odds
			row[8] = pick.Rating
			row[9] = pick.Analysis
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func writeRunners(sheet *models.TipSheet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create runners csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"Track", "Race", "No", "Horse", "Barrier", "Jockey", "Trainer", "Weight",
		"WinFixed", "PlaceFixed", "WinTote", "Career", "Surface", "LastRun",
		"DistanceStep", "BarrierFlag", "DrawNote", "GradeChange", "SpeedRating", "WeightChange",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, race := range sheet.Races() {
		for _, r := range race.Runners {
			speed := ""
			if r.SpeedRating != nil {
				speed = strconv.FormatFloat(*r.SpeedRating, 'f', -1, 64)
			}
			row := []string{
				race.Track,
				strconv.Itoa(race.Number),
				strconv.Itoa(r.Number),
				r.Name,
				r.Barrier,
				r.Jockey,
				r.Trainer,
				r.Weight,
				formatPrice(r.WinFixed),
				formatPrice(r.PlaceFixed),
				formatPrice(r.WinTote),
				r.Career,
				r.SurfacePref,
				r.LastRun,
				r.DistanceStep,
				r.BarrierFlag,
				r.DrawNote,
				r.GradeChange,
				speed,
				r.WeightChange,
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func formatPrice(p float64) string {
	if p <= 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", p)
}
