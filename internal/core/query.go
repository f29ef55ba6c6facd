package core

import (
	"sort"
	"strings"
	"time"

	"github.com/betsolutions/casino-sdk-go/pkg/casino/tablegames"
)

// Page is a validated paging request. Offset is zero based.
type Page struct {
	Offset    int
	Limit     int
	OrderBy   string
	Direction string
}

func (p Page) desc() bool {
	return strings.EqualFold(p.Direction, "desc")
}

type TournamentQuery struct {
	Game             tablegames.Game
	GameTypeID       *int64
	TournamentTypeID *int64
	StartDateFrom    *time.Time
	StartDateTo      *time.Time
	EndDateFrom      *time.Time
	EndDateTo        *time.Time
	Page             Page
}

func (q TournamentQuery) match(t Tournament) bool {
	if t.Game != q.Game || t.IsHidden {
		return false
	}
	if q.GameTypeID != nil && t.GameTypeID != *q.GameTypeID {
		return false
	}
	if q.TournamentTypeID != nil && t.TournamentTypeID != *q.TournamentTypeID {
		return false
	}
	if !within(t.StartDate, q.StartDateFrom, q.StartDateTo) {
		return false
	}
	if q.EndDateFrom != nil || q.EndDateTo != nil {
		if t.EndDate == nil || !within(*t.EndDate, q.EndDateFrom, q.EndDateTo) {
			return false
		}
	}
	return true
}

type AchievementQuery struct {
	Game   tablegames.Game
	TypeID *int64
	Page   Page
}

func within(v time.Time, from, to *time.Time) bool {
	if from != nil && v.Before(*from) {
		return false
	}
	if to != nil && v.After(*to) {
		return false
	}
	return true
}

// SelectCampaigns orders all campaigns and returns the requested page and the
// total count.
func SelectCampaigns(all []Campaign, p Page) ([]Campaign, int) {
	less := func(a, b Campaign) bool { return a.ID < b.ID }
	switch strings.ToLower(p.OrderBy) {
	case "name":
		less = func(a, b Campaign) bool { return a.Name < b.Name }
	case "startdate":
		less = func(a, b Campaign) bool { return a.StartDate.Before(b.StartDate) }
	case "createdate":
		less = func(a, b Campaign) bool { return a.CreateDate.Before(b.CreateDate) }
	}
	return pageOf(all, p, less)
}

// SelectTournaments filters, orders and pages tournaments.
func SelectTournaments(all []Tournament, q TournamentQuery) ([]Tournament, int) {
	matched := make([]Tournament, 0, len(all))
	for _, t := range all {
		if q.match(t) {
			matched = append(matched, t)
		}
	}

	less := func(a, b Tournament) bool { return a.ID < b.ID }
	switch strings.ToLower(q.Page.OrderBy) {
	case "startdate":
		less = func(a, b Tournament) bool { return a.StartDate.Before(b.StartDate) }
	case "createdate":
		less = func(a, b Tournament) bool { return a.CreateDate.Before(b.CreateDate) }
	case "betamount":
		less = func(a, b Tournament) bool { return a.BetAmount < b.BetAmount }
	}
	return pageOf(matched, q.Page, less)
}

// SelectAchievements filters, orders and pages achievements.
func SelectAchievements(all []Achievement, q AchievementQuery) ([]Achievement, int) {
	matched := make([]Achievement, 0, len(all))
	for _, a := range all {
		if a.Game != q.Game {
			continue
		}
		if q.TypeID != nil && int64(a.Type) != *q.TypeID {
			continue
		}
		matched = append(matched, a)
	}

	less := func(a, b Achievement) bool { return a.ID < b.ID }
	switch strings.ToLower(q.Page.OrderBy) {
	case "createdate":
		less = func(a, b Achievement) bool { return a.CreateDate.Before(b.CreateDate) }
	case "points":
		less = func(a, b Achievement) bool { return a.Points < b.Points }
	}
	return pageOf(matched, q.Page, less)
}

func pageOf[T any](items []T, p Page, less func(a, b T) bool) ([]T, int) {
	sort.SliceStable(items, func(i, j int) bool {
		if p.desc() {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})

	total := len(items)
	if p.Offset < 0 || p.Offset >= total {
		return []T{}, total
	}
	end := total
	if p.Limit > 0 {
		end = p.Offset + min(p.Limit, total-p.Offset)
	}
	return items[p.Offset:end], total
}
