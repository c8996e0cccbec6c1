package tracker

// ComputeStreaks derives the current and longest streak from a chronologically
// ordered, duplicate-free sequence of completion dates.
//
// Two consecutive dates belong to the same run when the gap between them is at
// most targetDays; a larger gap starts a fresh run. The longest streak is the
// maximum run length seen across the whole history. The current streak is the
// length of the run ending at the most recent date, but only if that date is
// itself within targetDays of today; otherwise the streak is broken and the
// current streak is 0.
func ComputeStreaks(dates []Date, targetDays int, today Date) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}
	if targetDays < 1 {
		targetDays = 1
	}

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].DaysUntil(dates[i]) <= targetDays {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// A most recent completion in the future (clock skew) still counts as
	// within cadence: the gap is negative.
	if dates[len(dates)-1].DaysUntil(today) <= targetDays {
		current = run
	}
	return current, longest
}
