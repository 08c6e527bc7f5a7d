package timezone

import (
	"fmt"
	"petstay/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the calendar date format used for stay dates.
const DateLayout = "2006-01-02"

var (
	mu       sync.RWMutex
	loadOnce sync.Once
	location *time.Location
)

// GetLocation returns the application timezone. It is read from APP_TIMEZONE on first
// use and falls back to UTC when the name is unknown.
func GetLocation() *time.Location {
	loadOnce.Do(func() {
		name := config.Get().App.Timezone

		loc, err := load(name)
		if err != nil {
			log.Error().Err(err).Str("timezone", name).Msg("falling back to UTC, use an IANA name such as Asia/Jakarta")

			loc = time.UTC
		}

		setLocation(loc)
	})

	mu.RLock()
	defer mu.RUnlock()

	return location
}

// SetLocation overrides the application timezone by IANA name. An empty name means UTC.
func SetLocation(name string) error {
	loc, err := load(name)
	if err != nil {
		return err
	}

	loadOnce.Do(func() {})
	setLocation(loc)
	log.Debug().Str("timezone", loc.String()).Msg("application timezone set")

	return nil
}

func load(name string) (*time.Location, error) {
	if name == "" {
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	return loc, nil
}

func setLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()

	location = loc
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as wall-clock time in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today is the current calendar date in the application timezone.
func Today() string {
	return Now().Format(DateLayout)
}

func ParseDate(value string) (time.Time, error) {
	return Parse(DateLayout, value)
}

// FormatDate renders t as a calendar date, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(DateLayout)
}
