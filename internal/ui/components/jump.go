package components

import (
	"strconv"

	"github.com/abhisek/quizzer/internal/ui/theme"
)

// JumpInput collects a 1-based question number typed digit by digit. A
// number jumps as soon as no further digit could keep it in range;
// otherwise it waits for Commit.
type JumpInput struct {
	buf string
}

// IsDigit reports whether key is a single decimal digit.
func IsDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}

// Press adds digit to the pending number. It returns the 0-based index and
// true when the number is complete. Digits that cannot start or extend a
// number in 1..total are dropped.
func (j *JumpInput) Press(digit string, total int) (int, bool) {
	n, err := strconv.Atoi(j.buf + digit)
	if err != nil || n < 1 || n > total {
		j.buf = ""
		if n, err = strconv.Atoi(digit); err != nil || n < 1 || n > total {
			return 0, false
		}
	}
	j.buf = strconv.Itoa(n)
	if n*10 > total {
		j.buf = ""
		return n - 1, true
	}
	return 0, false
}

// Commit finishes the pending number, if any.
func (j *JumpInput) Commit() (int, bool) {
	if j.buf == "" {
		return 0, false
	}
	n, _ := strconv.Atoi(j.buf)
	j.buf = ""
	return n - 1, true
}

// Pending reports whether digits are waiting for Commit.
func (j *JumpInput) Pending() bool {
	return j.buf != ""
}

// Reset drops any pending digits.
func (j *JumpInput) Reset() {
	j.buf = ""
}

// View renders the pending number, or nothing.
func (j *JumpInput) View() string {
	if j.buf == "" {
		return ""
	}
	return theme.Hint.Render("Go to question ") + theme.Selected.Render(j.buf+"_") + theme.Hint.Render("  (Enter)")
}
