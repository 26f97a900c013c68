package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient returns a client tuned for the short cache and counter calls made
// on the request path.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}
