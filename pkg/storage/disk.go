// Package storage writes exported report files to a configurable disk:
// the local filesystem by default, or S3-compatible object storage when a
// bucket is configured.
package storage

import (
	"fmt"
	"sync"

	"github.com/Gurpreet0022/sales-dashboard/config"
	"github.com/Gurpreet0022/sales-dashboard/pkg/logger"
)

// Disk is the minimal surface the CSV exporter needs.
type Disk interface {
	Put(path string, content []byte) error
	Get(path string) ([]byte, error)
	Exists(path string) bool
	Delete(path string) error

	// Name identifies the driver, for logs and metrics labels.
	Name() string
}

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at startup.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()
	disks["local"] = newLocalDisk(config.StorageLocalRoot())

	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		logger.Warn("storage: default disk not configured, falling back to local", "disk", defaultDisk)
		defaultDisk = "local"
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) (Disk, error) {
	managerMu.RLock()
	defer managerMu.RUnlock()

	d, ok := disks[name]
	if !ok {
		return nil, fmt.Errorf("storage: disk %q is not configured", name)
	}
	return d, nil
}

// Default returns the disk selected by STORAGE_DISK.
func Default() Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[defaultDisk]
}
