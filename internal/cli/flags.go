package cli

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/pflag"
)

// timeValue is a pflag.Value that parses ledger timestamps, so commands can
// take --at the same way timestamps appear in save files and logs.
type timeValue time.Time

var _ pflag.Value = (*timeValue)(nil)

func (v *timeValue) String() string {
	t := time.Time(*v)
	if t.IsZero() {
		return ""
	}
	return domain.FormatTimestamp(t)
}

func (v *timeValue) Set(s string) error {
	t, err := domain.ParseTimestamp(s)
	if err != nil {
		return err
	}
	*v = timeValue(t)
	return nil
}

func (v *timeValue) Type() string {
	return "timestamp"
}
