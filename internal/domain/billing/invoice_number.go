package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvoiceNumberPrefix is the constant prefix of generated invoice numbers
const InvoiceNumberPrefix = "INV"

// GenerateInvoiceNumber produces an invoice number of the form
// INV-YYYYMMDD-XXXXXXXX, where the suffix is eight uppercase hex characters
// drawn from a random UUID. The format is deterministic; the value is unique
// per call with negligible but non-zero collision probability, so callers
// must still check the generated number against the store before accepting
// it.
func GenerateInvoiceNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", InvoiceNumberPrefix, now.Format("20060102"), suffix)
}
