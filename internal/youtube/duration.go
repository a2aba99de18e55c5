package youtube

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDuration parses the ISO 8601 durations returned in contentDetails,
// e.g. "PT1H2M3S" or "P1DT4M". Years, months and weeks are not used by the API.
func ParseDuration(iso string) (time.Duration, error) {
	if len(iso) < 2 || iso[0] != 'P' {
		return 0, fmt.Errorf("invalid ISO 8601 duration %q", iso)
	}

	var total time.Duration
	inTime := false
	seen := false
	num := ""
	for _, r := range iso[1:] {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'T':
			if inTime || num != "" {
				return 0, fmt.Errorf("invalid ISO 8601 duration %q", iso)
			}
			inTime = true
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid ISO 8601 duration %q", iso)
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return 0, fmt.Errorf("invalid ISO 8601 duration %q: %w", iso, err)
			}
			num = ""

			var unit time.Duration
			switch {
			case r == 'D' && !inTime:
				unit = 24 * time.Hour
			case r == 'W' && !inTime:
				unit = 7 * 24 * time.Hour
			case r == 'H' && inTime:
				unit = time.Hour
			case r == 'M' && inTime:
				unit = time.Minute
			case r == 'S' && inTime:
				unit = time.Second
			default:
				return 0, fmt.Errorf("invalid ISO 8601 duration %q: unexpected %q", iso, r)
			}
			total += time.Duration(n) * unit
			seen = true
		}
	}
	if num != "" || !seen {
		return 0, fmt.Errorf("invalid ISO 8601 duration %q", iso)
	}
	return total, nil
}

// FormatDuration renders an ISO 8601 duration as m:ss or h:mm:ss.
// Unparseable input is returned unchanged; "P0D" (live streams) renders as "live".
func FormatDuration(iso string) string {
	if iso == "" {
		return ""
	}
	d, err := ParseDuration(iso)
	if err != nil {
		return iso
	}
	if d == 0 {
		return "live"
	}

	secs := int64(d / time.Second)
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
