package checker

import (
	"log"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

type runStats struct {
	CPU         float64
	MemoryUsed  uint64
	MemoryTotal uint64
	GoMemory    uint64
	GoRoutines  int
}

func (s *runStats) load() {
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		s.CPU = pct[0]
	}
	if stat, err := mem.VirtualMemory(); err == nil {
		s.MemoryUsed = stat.Used
		s.MemoryTotal = stat.Total
	}
	memStats := runtime.MemStats{}
	runtime.ReadMemStats(&memStats)
	s.GoMemory = memStats.Alloc
	s.GoRoutines = runtime.NumGoroutine()
}

func (c *Checker) printRunStats() {
	s := &runStats{}
	s.load()
	log.Printf("[stats] cpu %.1f%%, mem %s/%s, go heap %s, goroutines %d",
		s.CPU, humanize.IBytes(s.MemoryUsed), humanize.IBytes(s.MemoryTotal),
		humanize.IBytes(s.GoMemory), s.GoRoutines)
}
