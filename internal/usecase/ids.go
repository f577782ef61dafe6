package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Business-key prefixes. External systems parse the
// <PREFIX>-<unixSeconds>-<8 hex> shape, so it must not change.
const (
	budgetIDPrefix = "BUDGET"
	payIDPrefix    = "PAY"
	orderIDPrefix  = "ORDER"
	txnIDPrefix    = "TXN"
)

func newWorkflowID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.Unix(), uuid.NewString()[:8])
}

func newTransactionID(now time.Time) string {
	return fmt.Sprintf("%s-%d", txnIDPrefix, now.Unix())
}
