// Package normalize canonicalizes athlete identities so ground-truth and
// prediction sequences share one identity space.
//
// Source documents label athletes inconsistently (full name, integer,
// "1"/"2"). Both sequences are normalized against the ground-truth athlete
// names so that predictions with sloppy labeling stay comparable.
package normalize

import (
	"strings"

	"github.com/okian/matscore/internal/domain/model"
)

// Identity values every athlete field is rewritten to.
const (
	Athlete1 = model.Athlete("1")
	Athlete2 = model.Athlete("2")
)

// Athlete resolves a raw athlete value to "1" or "2".
// Resolution order, first rule wins:
//  1. already "1"/"2" (numeric forms collapse here at decode time)
//  2. exact equality with name1 or name2
//  3. the first whitespace-delimited token of name1/name2 occurs within the
//     raw value
//  4. default to "1"
//
// The default is deliberately permissive: normalization never fails, it
// only resolves. The substring fallback can misresolve when one athlete's
// first name is contained in the other's full label; callers accept that
// in exchange for never rejecting an event.
func Athlete(raw model.Athlete, name1, name2 string) model.Athlete {
	if raw == Athlete1 || raw == Athlete2 {
		return raw
	}
	if string(raw) == name1 {
		return Athlete1
	}
	if string(raw) == name2 {
		return Athlete2
	}
	if first := firstToken(name1); first != "" && strings.Contains(string(raw), first) {
		return Athlete1
	}
	if first := firstToken(name2); first != "" && strings.Contains(string(raw), first) {
		return Athlete2
	}
	return Athlete1
}

// Events returns a new slice with every athlete field resolved to "1"/"2".
// The input slice is left untouched; sequences are immutable once loaded.
func Events(events []model.Event, name1, name2 string) []model.Event {
	out := make([]model.Event, len(events))
	for i, e := range events {
		e.Athlete = Athlete(e.Athlete, name1, name2)
		out[i] = e
	}
	return out
}

func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
