package render

import (
	"log"
	"sync"
)

// ProgressLogger returns an OnProgress hook that logs each time another
// step of the grid has finished, e.g. step 0.1 logs every 10%. The final
// report of 1 is always logged. It panics if step is not positive.
func ProgressLogger(step float32) func(done float32) {
	if !(step > 0) {
		panic("render: ProgressLogger step must be positive")
	}
	var (
		m        sync.Mutex
		last     int
		complete bool
	)
	return func(done float32) {
		m.Lock()
		defer m.Unlock()

		// Tolerance for float32 fractions like 0.7/0.1.
		k := int(float64(done)/float64(step) + 1e-6)
		if done >= 1 && !complete {
			complete = true
			k = max(k, last+1)
		}
		if k <= last {
			return
		}
		last = k
		log.Printf("finished: %.0f%%", done*100)
	}
}
