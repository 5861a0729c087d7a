// Package disk reads filesystem capacity via statfs.
package disk

import "syscall"

// Usage holds capacity figures for one mounted volume.
type Usage struct {
	TotalBytes  int64
	FreeBytes   int64
	UsedBytes   int64
	UsedPercent float64
}

// GetUsage returns capacity figures for the volume containing path.
func GetUsage(path string) (Usage, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return Usage{}, err
	}

	u := Usage{
		TotalBytes: int64(stat.Blocks) * int64(stat.Bsize),
		FreeBytes:  int64(stat.Bavail) * int64(stat.Bsize),
	}
	u.UsedBytes = u.TotalBytes - u.FreeBytes
	if u.TotalBytes > 0 {
		u.UsedPercent = (float64(u.UsedBytes) / float64(u.TotalBytes)) * 100.0
	}
	return u, nil
}

// GetFreePercent returns the percentage of free disk space for the
// volume containing path.
func GetFreePercent(path string) (float64, error) {
	u, err := GetUsage(path)
	if err != nil {
		return 0, err
	}
	return 100.0 - u.UsedPercent, nil
}
