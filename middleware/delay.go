package middleware

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
)

// SimulatedDelay returns a middleware that sleeps for a random duration
// between min and max before handling the request, mimicking the latency of a
// real payment gateway. Applied only to the gateway-facing routes when the
// deployment enables delay simulation.
func SimulatedDelay(min, max time.Duration) gin.HandlerFunc {
	spread := max - min
	return func(c *gin.Context) {
		d := min
		if spread > 0 {
			d += time.Duration(rand.Int63n(int64(spread)))
		}
		time.Sleep(d)
		c.Next()
	}
}
