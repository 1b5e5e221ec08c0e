package flight

import (
	"math"
	"sort"

	"github.com/aclough/rocket-game-sub000/mission"
)

// ManifestEntryKind tags what a manifest entry carries: a customer
// contract payload or a company-owned fuel depot.
type ManifestEntryKind uint8

const (
	EntryContract ManifestEntryKind = iota
	EntryDepot
)

// ManifestEntry is a single payload queued for a launch.
type ManifestEntry struct {
	EntryID             uint32
	Kind                ManifestEntryKind
	ContractID          uint32
	PayloadType         string
	Reward              float64
	DepotDesignIndex    int
	DepotSerial         uint32
	Insulated           bool
	Name                string
	Destination         string
	DestinationDisplay  string
	MassKg              float64
}

func (e ManifestEntry) IsContract() bool { return e.Kind == EntryContract }
func (e ManifestEntry) IsDepot() bool    { return e.Kind == EntryDepot }

// Manifest is the set of payloads queued for a single launch, potentially
// bound for multiple destinations.
type Manifest struct {
	Entries      []ManifestEntry
	nextEntryID  uint32
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{nextEntryID: 1}
}

// AddContract queues a customer contract payload. Returns the new entry's id.
func (m *Manifest) AddContract(contractID uint32, name, payloadType string, reward float64, destination, destinationDisplay string, massKg float64) uint32 {
	id := m.nextEntryID
	m.nextEntryID++
	m.Entries = append(m.Entries, ManifestEntry{
		EntryID:            id,
		Kind:               EntryContract,
		ContractID:         contractID,
		PayloadType:        payloadType,
		Reward:             reward,
		Name:               name,
		Destination:        destination,
		DestinationDisplay: destinationDisplay,
		MassKg:             massKg,
	})
	return id
}

// AddDepot queues a company-owned fuel depot. Returns the new entry's id.
func (m *Manifest) AddDepot(depotDesignIndex int, depotSerial uint32, depotName string, capacityKg float64, insulated bool, destination, destinationDisplay string, massKg float64) uint32 {
	id := m.nextEntryID
	m.nextEntryID++
	m.Entries = append(m.Entries, ManifestEntry{
		EntryID:            id,
		Kind:               EntryDepot,
		DepotDesignIndex:   depotDesignIndex,
		DepotSerial:        depotSerial,
		Insulated:          insulated,
		Name:               depotName,
		Destination:        destination,
		DestinationDisplay: destinationDisplay,
		MassKg:             massKg,
	})
	return id
}

// RemoveEntry removes an entry by id, returning it if found.
func (m *Manifest) RemoveEntry(entryID uint32) (ManifestEntry, bool) {
	for i, e := range m.Entries {
		if e.EntryID == entryID {
			m.Entries = append(m.Entries[:i], m.Entries[i+1:]...)
			return e, true
		}
	}
	return ManifestEntry{}, false
}

// TotalMassKg sums payload mass across every entry.
func (m *Manifest) TotalMassKg() float64 {
	total := 0.0
	for _, e := range m.Entries {
		total += e.MassKg
	}
	return total
}

// TotalReward sums reward across every contract entry.
func (m *Manifest) TotalReward() float64 {
	total := 0.0
	for _, e := range m.Entries {
		total += e.Reward
	}
	return total
}

// UniqueDestinationsSortedByDeltaV returns each distinct destination the
// manifest touches, ordered from cheapest to reach to most expensive —
// the order a flight would visit them outbound.
func (m *Manifest) UniqueDestinationsSortedByDeltaV(deltaVMap *mission.DeltaVMap) []string {
	var dests []string
	seen := map[string]bool{}
	for _, e := range m.Entries {
		if !seen[e.Destination] {
			seen[e.Destination] = true
			dests = append(dests, e.Destination)
		}
	}
	dv := func(id string) float64 {
		_, cost, ok := deltaVMap.ShortestPath("earth_surface", id)
		if !ok {
			return math.Inf(1)
		}
		return cost
	}
	sort.Slice(dests, func(i, j int) bool {
		return dv(dests[i]) < dv(dests[j])
	})
	return dests
}

// EntriesForDestination returns the entries bound for a given destination.
func (m *Manifest) EntriesForDestination(destination string) []ManifestEntry {
	var out []ManifestEntry
	for _, e := range m.Entries {
		if e.Destination == destination {
			out = append(out, e)
		}
	}
	return out
}

// IsEmpty reports whether the manifest has no entries.
func (m *Manifest) IsEmpty() bool { return len(m.Entries) == 0 }

// Clear removes every entry.
func (m *Manifest) Clear() { m.Entries = nil }

// Len is the number of entries.
func (m *Manifest) Len() int { return len(m.Entries) }

// Get returns the entry at index, if any.
func (m *Manifest) Get(index int) (ManifestEntry, bool) {
	if index < 0 || index >= len(m.Entries) {
		return ManifestEntry{}, false
	}
	return m.Entries[index], true
}

// GetByID returns the entry with the given id, if any.
func (m *Manifest) GetByID(entryID uint32) (ManifestEntry, bool) {
	for _, e := range m.Entries {
		if e.EntryID == entryID {
			return e, true
		}
	}
	return ManifestEntry{}, false
}

// MaxDeltaV is the delta-v to the manifest's farthest destination, or 0
// if the manifest is empty.
func (m *Manifest) MaxDeltaV(deltaVMap *mission.DeltaVMap) float64 {
	dests := m.UniqueDestinationsSortedByDeltaV(deltaVMap)
	if len(dests) == 0 {
		return 0.0
	}
	_, cost, ok := deltaVMap.ShortestPath("earth_surface", dests[len(dests)-1])
	if !ok {
		return 0.0
	}
	return cost
}
