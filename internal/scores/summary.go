package scores

// Summary holds the display statistics the menu shows for one mode.
type Summary struct {
	Count     int // lifetime session count
	Best      int // lifetime best score
	RecentAvg int // truncating mean over the last window records
}

// Summaries computes per-level statistics over the record history.
// The recent average uses at most the last window records of each level.
// Levels 1..3 are always present, zeroed when a level has no sessions.
func Summaries(records []Record, window int) map[int]Summary {
	byLevel := make(map[int][]Record)
	for _, r := range records {
		byLevel[r.Level] = append(byLevel[r.Level], r)
	}

	out := make(map[int]Summary, 3)
	for lvl := 1; lvl <= 3; lvl++ {
		rows := byLevel[lvl]
		s := Summary{Count: len(rows)}
		for _, r := range rows {
			if r.Score > s.Best {
				s.Best = r.Score
			}
		}
		recent := rows
		if window > 0 && len(recent) > window {
			recent = recent[len(recent)-window:]
		}
		if len(recent) > 0 {
			sum := 0
			for _, r := range recent {
				sum += r.Score
			}
			s.RecentAvg = sum / len(recent)
		}
		out[lvl] = s
	}
	return out
}
