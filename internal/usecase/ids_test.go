package usecase

import (
	"regexp"
	"testing"
	"time"
)

func TestNewWorkflowID(t *testing.T) {
	now := time.Unix(1700000000, 0)

	for _, prefix := range []string{budgetIDPrefix, payIDPrefix, orderIDPrefix} {
		id := newWorkflowID(prefix, now)
		pattern := regexp.MustCompile(`^` + prefix + `-1700000000-[0-9a-f]{8}$`)
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected id shape: %s", id)
		}
	}

	if newWorkflowID(budgetIDPrefix, now) == newWorkflowID(budgetIDPrefix, now) {
		t.Fatalf("expected unique suffixes")
	}
}

func TestNewTransactionID(t *testing.T) {
	if id := newTransactionID(time.Unix(1700000000, 0)); id != "TXN-1700000000" {
		t.Fatalf("unexpected transaction id: %s", id)
	}
}
