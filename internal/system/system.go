package system

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Snapshot describes the host the editor engine is running on.
type Snapshot struct {
	NumCPU        int
	PhysicalCores int
	TotalMemMB    uint64
	AvailMemMB    uint64
}

// Collect gathers CPU and memory figures for the stats report. Figures
// gopsutil cannot provide degrade to runtime defaults instead of
// failing.
func Collect() Snapshot {
	s := Snapshot{NumCPU: runtime.NumCPU(), PhysicalCores: runtime.NumCPU()}

	if cores, err := cpu.Counts(false); err == nil && cores > 0 {
		s.PhysicalCores = cores
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.TotalMemMB = vm.Total / 1024 / 1024
		s.AvailMemMB = vm.Available / 1024 / 1024
	}
	return s
}

func (s Snapshot) String() string {
	return fmt.Sprintf("CPU: %d логических / %d физических | RAM: %d MB всего, %d MB свободно",
		s.NumCPU, s.PhysicalCores, s.TotalMemMB, s.AvailMemMB)
}

// SuggestWorkers picks an ingest worker count for this host: one per
// physical core, capped to keep ffprobe fan-out reasonable.
func SuggestWorkers() int {
	workers := Collect().PhysicalCores
	if workers < 1 {
		workers = 1
	}
	if workers > 8 {
		workers = 8
	}
	return workers
}
