package updater

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/kasdocs/internal/foundation"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// ChangeWindow is how far back a run looks for modified partials.
const ChangeWindow = 24 * time.Hour

// Change is a partial modified inside the change window.
type Change struct {
	File     string
	Modified time.Time
}

// WindowStart returns the start of the change window ending at now. A
// successful check inside the window moves the start forward so files
// already reported are not reported again.
func WindowStart(now time.Time, prev foundation.Option[time.Time]) time.Time {
	start := now.Add(-ChangeWindow)
	return prev.Filter(func(t time.Time) bool {
		return t.After(start) && !t.After(now)
	}).UnwrapOr(start)
}

// RecentChanges returns the files modified after since, skipping excluded names.
func RecentChanges(infos []site.FragmentInfo, since time.Time, exclude ...string) []Change {
	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}
	var changes []Change
	for _, info := range infos {
		if skip[info.Name] || !info.ModTime.After(since) {
			continue
		}
		changes = append(changes, Change{File: info.Name, Modified: info.ModTime})
	}
	return changes
}

func (u *Updater) checkForChanges(now time.Time, prev foundation.Option[time.Time], rep *Report) (string, error) {
	infos, err := u.site.ListFragments()
	if err != nil {
		return "", err
	}
	changes := RecentChanges(infos, WindowStart(now, prev), versionsFileName)
	rep.Changes = changes
	summary := "no recent changes"
	if len(changes) == 0 {
		u.logger.Info("No recent changes detected")
	} else {
		if err := u.logChanges(now, changes); err != nil {
			return "", err
		}
		summary = fmt.Sprintf("%d recent changes logged", len(changes))
	}
	// a failed check leaves the window where it was so the next run retries
	if err := u.recordChangeCheck(now, rep); err != nil {
		return "", err
	}
	return summary, nil
}
