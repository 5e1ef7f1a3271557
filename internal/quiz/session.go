package quiz

// Session is the score state of one quiz round. It is an explicit value
// owned by the caller, never persisted and never global.
type Session struct {
	Points float64 `json:"points"`
	Streak int     `json:"streak"`
}

// RecordAnswer applies one graded answer and returns the updated session.
// On a correct answer the streak increments before the bonus is computed,
// so the first correct answer of a fresh streak already earns the 1.2
// multiplier. An incorrect answer resets the streak and leaves the points
// untouched.
func (s Session) RecordAnswer(correct bool) Session {
	if correct {
		s.Streak++
		s.Points += 10 * (1 + 0.2*float64(s.Streak))
	} else {
		s.Streak = 0
	}
	return s
}
