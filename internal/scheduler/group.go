package scheduler

import (
	"cmp"
	"slices"
	"time"

	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/pkg/types"
)

// groupKey identifies one summary message: one recipient endpoint and one
// kind of event.
type groupKey struct {
	userID   uint64
	channel  notification.Channel
	target   string
	network  string
	typeCode notification.TypeCode
}

type notificationGroup struct {
	key           groupKey
	notifications []notification.Notification
}

// due reports whether a rule with the given period fires at boundary. Hour
// rules fire when the hour of day is a multiple of the period, day rules
// when the day of year is.
func due(periodType notification.PeriodType, period uint16, boundary time.Time) bool {
	if period <= 1 {
		return true
	}

	switch periodType {
	case notification.PeriodHour:
		return boundary.Hour()%int(period) == 0
	case notification.PeriodDay:
		return boundary.YearDay()%int(period) == 0
	default:
		return true
	}
}

// eligible drops the rows whose rule period does not fire at boundary.
func eligible(ns []notification.Notification, periodType notification.PeriodType, boundary time.Time) []notification.Notification {
	return slices.DeleteFunc(slices.Clone(ns), func(n notification.Notification) bool {
		return !due(periodType, n.Period, boundary)
	})
}

// group buckets ns per groupKey. Each bucket is ordered by block height,
// then id; buckets are returned in a stable order.
func group(ns []notification.Notification) []notificationGroup {
	buckets := types.NewDefaultMap[groupKey, []notification.Notification](func() []notification.Notification {
		return nil
	})

	for _, n := range ns {
		key := groupKey{
			userID:   n.UserID,
			channel:  n.Channel,
			target:   n.Target,
			network:  n.Network,
			typeCode: n.TypeCode,
		}
		buckets.Update(key, func(members []notification.Notification) []notification.Notification {
			return append(members, n)
		})
	}

	groups := make([]notificationGroup, 0, buckets.Len())
	for key, members := range buckets.All() {
		slices.SortFunc(members, func(a, b notification.Notification) int {
			return cmp.Or(cmp.Compare(a.BlockHeight, b.BlockHeight), cmp.Compare(a.ID, b.ID))
		})
		groups = append(groups, notificationGroup{key: key, notifications: members})
	}

	slices.SortFunc(groups, func(a, b notificationGroup) int {
		return cmp.Or(
			cmp.Compare(a.key.userID, b.key.userID),
			cmp.Compare(a.key.channel, b.key.channel),
			cmp.Compare(a.key.target, b.key.target),
			cmp.Compare(a.key.network, b.key.network),
			cmp.Compare(a.key.typeCode, b.key.typeCode),
		)
	})

	return groups
}

// split breaks every group larger than the limit of its channel into
// consecutive chunks, keeping the chronological order. Channels without a
// positive limit are left whole.
func split(groups []notificationGroup, limits map[notification.Channel]int) []notificationGroup {
	out := make([]notificationGroup, 0, len(groups))
	for _, g := range groups {
		limit := limits[g.key.channel]
		if limit <= 0 || len(g.notifications) <= limit {
			out = append(out, g)
			continue
		}

		for chunk := range slices.Chunk(g.notifications, limit) {
			out = append(out, notificationGroup{key: g.key, notifications: chunk})
		}
	}

	return out
}
