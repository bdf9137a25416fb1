package telex

import (
	"sync"
	"testing"
)

func TestTransformConcurrent(t *testing.T) {
	words := map[string]string{
		"laij":  "lại",
		"đoo":   "đô",
		"tôis":  "tối",
		"uow":   "ươ",
		"VIỆTs": "VIẾT",
		"hóanf": "hoàn",
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				for in, want := range words {
					if got, ok := Transform(in); !ok || got != want {
						t.Errorf("Transform(%q) = %q, %v; want %q", in, got, ok, want)
						return
					}
					_ = Plain(in)
				}
			}
		}()
	}
	wg.Wait()
}
