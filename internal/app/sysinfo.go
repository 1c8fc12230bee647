package app

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	cpuHistorySize  = 10
	sysinfoInterval = 500 * time.Millisecond
)

// UpdateCPUHistory samples CPU usage into a rolling window for the
// status bar graph, throttled so ticks between samples are free.
func (d *Desk) UpdateCPUHistory() {
	now := time.Now()
	if now.Sub(d.LastCPUUpdate) < sysinfoInterval {
		return
	}
	d.LastCPUUpdate = now

	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return
	}
	d.CPUHistory = append(d.CPUHistory, percents[0])
	if len(d.CPUHistory) > cpuHistorySize {
		d.CPUHistory = d.CPUHistory[len(d.CPUHistory)-cpuHistorySize:]
	}
}

// UpdateRAMUsage refreshes the memory figure for the status bar.
func (d *Desk) UpdateRAMUsage() {
	now := time.Now()
	if now.Sub(d.LastRAMUpdate) < sysinfoInterval {
		return
	}
	d.LastRAMUpdate = now

	vm, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	d.RAMUsage = vm.UsedPercent
}

// GetCPUGraph renders the CPU history as a block-character sparkline.
func (d *Desk) GetCPUGraph() string {
	if len(d.CPUHistory) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	graph := make([]rune, 0, cpuHistorySize)
	for i := len(d.CPUHistory) - cpuHistorySize; i < len(d.CPUHistory); i++ {
		if i < 0 {
			graph = append(graph, ' ')
			continue
		}
		idx := int(d.CPUHistory[i] / 100 * float64(len(blocks)))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		graph = append(graph, blocks[idx])
	}
	return string(graph)
}

// CurrentCPU returns the latest CPU sample.
func (d *Desk) CurrentCPU() float64 {
	if len(d.CPUHistory) == 0 {
		return 0
	}
	return d.CPUHistory[len(d.CPUHistory)-1]
}
