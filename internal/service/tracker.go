package service

import (
	"errors"
	"fmt"

	"github.com/avoronova/homework-bot/internal/model"
)

// ErrUnknownStatus means the homework status is missing from the verdicts table
var ErrUnknownStatus = errors.New("unknown homework status")

var verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// Tracker keeps the last seen homework status and decides when a change should be reported.
// It also remembers the last failure sent to the chat so the same failure isn't sent twice in a row.
// Used by a single goroutine, so no locking
type Tracker struct {
	lastStatus  string
	lastFailure string
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Advance compares the homework's status with the last seen one and on a change returns
// the notification text and true. The first status observed after start only seeds the state
func (t *Tracker) Advance(homework *model.Homework) (string, bool, error) {
	verdict, ok := verdicts[homework.Status]
	if !ok {
		return "", false, fmt.Errorf("%w: %s", ErrUnknownStatus, homework.Status)
	}

	if homework.Status == t.lastStatus {
		return "", false, nil
	}

	first := t.lastStatus == ""
	t.lastStatus = homework.Status
	if first {
		return "", false, nil
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", homework.Name, verdict), true, nil
}

// ShouldReportFailure says whether the failure text should be sent to the chat.
// Equal consecutive failures are reported once
func (t *Tracker) ShouldReportFailure(text string) bool {
	if text == t.lastFailure {
		return false
	}
	t.lastFailure = text
	return true
}

// ClearFailure forgets the last sent failure after a successful cycle
func (t *Tracker) ClearFailure() {
	t.lastFailure = ""
}
