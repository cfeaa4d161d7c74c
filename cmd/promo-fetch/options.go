package main

import (
	"fmt"
	"time"

	"github.com/Amund211/skillforge/internal/domain"
)

type Options struct {
	BaseURL  string `short:"u" long:"base-url" default:"http://localhost:8080/api" description:"root of the promotions API"`
	Endpoint string `short:"e" long:"endpoint" default:"promotions" choice:"offers" choice:"banners" choice:"notifications" choice:"mini-offers" choice:"courses" choice:"promotions" description:"what to fetch"`

	Limit    int    `short:"l" long:"limit" default:"-1" description:"number of records, the endpoint default when negative"`
	Active   bool   `short:"a" long:"active" description:"only active records"`
	UserType string `long:"user-type" default:"all" description:"audience for notifications and promotions"`

	Category string `long:"category" description:"course category"`
	Level    string `long:"level" description:"course level"`
	Popular  bool   `long:"popular" description:"only popular courses"`
	New      bool   `long:"new" description:"only new courses"`

	Callers int           `short:"c" long:"callers" default:"1" description:"concurrent callers per round"`
	Rounds  int           `short:"r" long:"rounds" default:"1" description:"rounds of calls"`
	Pause   time.Duration `long:"pause" default:"0s" description:"wait between rounds"`

	TTL     time.Duration `long:"ttl" default:"30s" description:"freshness window of the cache"`
	Timeout time.Duration `long:"timeout" default:"5s" description:"deadline for each underlying call"`
}

func (o Options) Validate() error {
	if o.Callers < 1 {
		return fmt.Errorf("callers must be at least 1 (%d)", o.Callers)
	}
	if o.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1 (%d)", o.Rounds)
	}
	if o.Pause < 0 {
		return fmt.Errorf("pause must not be negative (%s)", o.Pause)
	}
	if o.TTL <= 0 {
		return fmt.Errorf("ttl must be positive (%s)", o.TTL)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive (%s)", o.Timeout)
	}
	if _, err := domain.ParseUserType(o.UserType); err != nil {
		return err
	}
	return nil
}

// limitOr returns the requested limit, or fallback when none was given
func (o Options) limitOr(fallback int) int {
	if o.Limit < 0 {
		return fallback
	}
	return o.Limit
}
