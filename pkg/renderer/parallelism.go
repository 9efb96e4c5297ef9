package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// AvailableParallelism returns the number of logical CPUs, falling back to
// the Go runtime's count and finally to 1
func AvailableParallelism() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
