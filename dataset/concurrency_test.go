package dataset_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veltran/featmix/feature"
)

// TestHandler_ConcurrentUse hammers one Handler from many goroutines.
// The Handler is immutable after construction, so encode, decode and
// validation must be freely shareable. Run with -race.
func TestHandler_ConcurrentUse(t *testing.T) {
	h := mixedHandler(t)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers*3)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				enc, err := h.Encode(mixedRows, true, true)
				if err != nil {
					errs <- err

					return
				}
				if _, err = h.Decode(enc, true, true); err != nil {
					errs <- err

					return
				}
				if _, err = h.AllowedChanges(
					[]feature.Value{30.0, "primary", "F"},
					[]feature.Value{31.0, "secondary", "F"},
				); err != nil {
					errs <- err

					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
