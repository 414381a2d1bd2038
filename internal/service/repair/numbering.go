package repair

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/you-humble/fleet-maintenance/internal/model"
)

// nextOrderNo issues RO-<year>-<seq>, seq being one past the larger of this year's order
// count and the highest sequence already issued this year.
func nextOrderNo(existing []*model.RepairOrder, now time.Time) string {
	year := now.Year()
	prefix := fmt.Sprintf("RO-%d-", year)

	created, highest := 0, 0
	for _, o := range existing {
		if o.CreatedAt.UTC().Year() == year {
			created++
		}
		rest, ok := strings.CutPrefix(o.OrderNo, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%s%05d", prefix, max(created, highest)+1)
}
