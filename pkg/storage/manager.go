package storage

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/vanij/config"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at application startup.
// The local disk is always available; the s3 disk only when S3_BUCKET is set.
func Connect(cfg *config.Config) {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = cfg.StorageDisk
	disks["local"] = newLocalDisk(cfg)

	if cfg.S3Bucket != "" {
		d, err := newS3Disk(cfg)
		if err != nil {
			fmt.Printf("storage/s3: %v (disk disabled)\n", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		defaultDisk = "local"
	}
}

// Use returns the named disk, or the default disk for an empty name.
func Use(name string) Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()

	if name == "" {
		name = defaultDisk
	}
	d, ok := disks[name]
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation, used by tests.
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}
