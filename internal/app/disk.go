package app

import (
	"github.com/shirou/gopsutil/v3/disk"
)

// filesystemUsage returns capacity stats for the filesystem holding path,
// or nil on error.
func filesystemUsage(path string) *disk.UsageStat {
	stat, err := disk.Usage(path)
	if err != nil {
		return nil
	}
	return stat
}
