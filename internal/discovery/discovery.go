package discovery

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"dicbrowse/internal/domain"
)

// DiscoveryService finds dictionaries in the filesystem
type DiscoveryService interface {
	Discover(dir string) (domain.Catalog, error)
}

// discoveryService is the concrete implementation
type discoveryService struct {
	extension string
}

// NewDiscoveryService creates a discovery service matching files with extension
func NewDiscoveryService(extension string) DiscoveryService {
	return &discoveryService{extension: extension}
}

// Discover lists the dictionaries directly inside dir, sorted by name
func (ds *discoveryService) Discover(dir string) (domain.Catalog, error) {
	catalog := domain.Catalog{Dir: dir, Extension: ds.extension}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return catalog, fmt.Errorf("failed to read dictionary directory: %w", err)
	}

	for _, entry := range entries {
		// Skip directories and hidden files
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if !entry.Type().IsRegular() && entry.Type()&os.ModeSymlink == 0 {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), ds.extension)
		if !ok || name == "" {
			continue
		}
		catalog.Names = append(catalog.Names, name)
	}
	sort.Strings(catalog.Names)

	if len(catalog.Names) == 0 {
		return catalog, fmt.Errorf("%s: %w", dir, domain.ErrNoDictionaries)
	}

	log.Printf("Discovered %d dictionaries in %s", len(catalog.Names), dir)
	return catalog, nil
}
