package reports

import (
	"sort"

	"sanhaja/internal/core/id"
)

// AgencyRef names one agency inside a grouped report.
type AgencyRef struct {
	ID   id.ID
	Name string
}

// sortRefs orders agencies by name, then id for duplicate names.
func sortRefs(refs []AgencyRef) []AgencyRef {
	sorted := make([]AgencyRef, len(refs))
	copy(sorted, refs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})
	return sorted
}

// summable is any totals type that can accumulate itself.
type summable[T any] interface{ Plus(T) T }

// assemble folds aggregated rows into the final report shape. In flat mode
// it emits {data, totals}; in grouped mode it partitions rows by agency and
// emits {agencies_data, grand_totals}, where grand totals come exclusively
// from summing the per-agency totals. Agencies in scope with no rows still
// get an entry with empty data and zero totals.
func assemble[R any, T summable[T]](
	title string,
	period *Period,
	grouped bool,
	agencies []AgencyRef,
	rows []R,
	agencyOf func(R) id.ID,
	fold func(T, R) T,
) *Report[R, T] {
	rep := &Report[R, T]{Title: title, Period: period}

	if !grouped {
		var totals T
		for _, r := range rows {
			totals = fold(totals, r)
		}
		if rows == nil {
			rows = []R{}
		}
		rep.Data = rows
		rep.Totals = &totals
		return rep
	}

	byAgency := make(map[id.ID][]R, len(agencies))
	for _, r := range rows {
		aid := agencyOf(r)
		byAgency[aid] = append(byAgency[aid], r)
	}

	var grand T
	groups := make([]AgencyGroup[R, T], 0, len(agencies))
	for _, ref := range sortRefs(agencies) {
		data := byAgency[ref.ID]
		if data == nil {
			data = []R{}
		}
		var totals T
		for _, r := range data {
			totals = fold(totals, r)
		}
		grand = grand.Plus(totals)
		groups = append(groups, AgencyGroup[R, T]{
			AgencyID:   ref.ID,
			AgencyName: ref.Name,
			Data:       data,
			Totals:     totals,
		})
	}

	rep.AgenciesData = groups
	rep.GrandTotals = &grand
	return rep
}
