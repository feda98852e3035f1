package updater

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/kasdocs/internal/foundation"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// UpdateStats is the record written to stats.json. LastChangeCheck is when
// the changes step last completed; it starts the next change window and is
// carried over by every stats rewrite.
type UpdateStats struct {
	LastUpdated     string `json:"lastUpdated"`
	TotalSections   int    `json:"totalSections"`
	TotalPages      int    `json:"totalPages"`
	LastCommit      string `json:"lastCommit"`
	BuildNumber     int    `json:"buildNumber"`
	FileSize        string `json:"fileSize"`
	LastChangeCheck string `json:"lastChangeCheck,omitempty"`
}

// The combined documentation is a single page.
const totalPages = 1

// previousStats returns the existing stats.json, if any.
func (u *Updater) previousStats() foundation.Option[UpdateStats] {
	var prev UpdateStats
	if err := u.site.ReadJSON(u.site.StatsPath(), &prev); err != nil {
		return foundation.None[UpdateStats]()
	}
	return foundation.Some(prev)
}

// lastChangeCheck returns when the changes step of an earlier run last succeeded.
func lastChangeCheck(prev foundation.Option[UpdateStats]) foundation.Option[time.Time] {
	rec, ok := prev.Get()
	if !ok || rec.LastChangeCheck == "" {
		return foundation.None[time.Time]()
	}
	t, err := time.Parse(time.RFC3339, rec.LastChangeCheck)
	return foundation.FromTupleOption(t, err)
}

// recordChangeCheck stores now as the start of the next change window.
func (u *Updater) recordChangeCheck(now time.Time, rep *Report) error {
	var rec UpdateStats
	if err := u.site.ReadJSON(u.site.StatsPath(), &rec); err != nil {
		if rep.Stats == nil {
			return err
		}
		rec = *rep.Stats
	}
	rec.LastChangeCheck = site.FormatTimestamp(now)
	if err := u.site.WriteJSON(u.site.StatsPath(), &rec); err != nil {
		return err
	}
	if rep.Stats != nil {
		rep.Stats.LastChangeCheck = rec.LastChangeCheck
	}
	return nil
}

func (u *Updater) updateStats(now time.Time, prev foundation.Option[UpdateStats], rep *Report) (string, error) {
	sectionsCount, err := u.site.CountFragments()
	if err != nil {
		u.logger.Debug("Partials not countable, reporting zero", logfields.Error(err))
		sectionsCount = 0
	}

	lastCommit := ""
	if c, err := u.commits.LastCommit(u.site.Root()); err != nil {
		u.logger.Debug("No commit information available", logfields.Error(err))
	} else {
		lastCommit = c.String()
	}

	buildNumber, counterErr := u.site.IncrementBuildNumber()
	if counterErr != nil {
		u.logger.Warn("Failed to persist build number", logfields.Path(u.site.BuildNumberPath()), logfields.Error(counterErr))
	} else {
		u.recorder.SetBuildNumber(buildNumber)
	}

	fileSize := site.UnknownSize
	if n, err := u.site.FileSize(u.site.OutputPath()); err == nil {
		fileSize = site.FormatKB(n)
	}

	stats := &UpdateStats{
		LastUpdated:   site.FormatTimestamp(now),
		TotalSections: sectionsCount,
		TotalPages:    totalPages,
		LastCommit:    lastCommit,
		BuildNumber:   buildNumber,
		FileSize:      fileSize,
	}
	if rec, ok := prev.Get(); ok {
		stats.LastChangeCheck = rec.LastChangeCheck
	}
	if err := u.site.WriteJSON(u.site.StatsPath(), stats); err != nil {
		return "", err
	}
	rep.Stats = stats
	if counterErr != nil {
		return "", counterErr
	}
	return fmt.Sprintf("build #%d, %d sections", buildNumber, sectionsCount), nil
}
