package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// OfficialStore holds the official roster in memory and mirrors it to a JSON
// file so the game works without a database.
type OfficialStore struct {
	mu        sync.Mutex
	filePath  string
	officials []Official
}

type officialsFile struct {
	Officials   []officialRecord `json:"officials"`
	LastUpdated string           `json:"last_updated,omitempty"`
	Version     string           `json:"version,omitempty"`
}

type officialRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	State     string `json:"state"`
	PhotoPath string `json:"photo_path"`
	FunFact   string `json:"fun_fact,omitempty"`
	Category  string `json:"category,omitempty"`
	IsFake    bool   `json:"is_fake,omitempty"`
}

func NewOfficialStore(filePath string) *OfficialStore {
	return &OfficialStore{filePath: filePath}
}

// LoadFile reads the roster from disk. A missing file is not an error; the
// store simply starts empty.
func (s *OfficialStore) LoadFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filePath == "" {
		return nil
	}
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var file officialsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	officials := make([]Official, 0, len(file.Officials))
	for _, record := range file.Officials {
		officials = append(officials, Official{
			ID:        record.ID,
			Name:      record.Name,
			Position:  record.Position,
			State:     record.State,
			PhotoPath: record.PhotoPath,
			FunFact:   record.FunFact,
			Category:  record.Category,
			IsFake:    record.IsFake,
		})
	}
	s.officials = officials
	return nil
}

func (s *OfficialStore) saveLocked() error {
	if s.filePath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
		return err
	}
	records := make([]officialRecord, 0, len(s.officials))
	for _, official := range s.officials {
		records = append(records, officialRecord{
			ID:        official.ID,
			Name:      official.Name,
			Position:  official.Position,
			State:     official.State,
			PhotoPath: official.PhotoPath,
			FunFact:   official.FunFact,
			Category:  official.Category,
			IsFake:    official.IsFake,
		})
	}
	data, err := json.MarshalIndent(officialsFile{
		Officials:   records,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Version:     "1.0",
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0o644)
}

// Add appends a new official and persists the roster file. The generated id
// follows the state_position_index convention of the roster file format.
func (s *OfficialStore) Add(official Official) (Official, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if official.ID == "" {
		official.ID = officialSlug(official.State, official.Position, len(s.officials))
	}
	for _, existing := range s.officials {
		if existing.ID == official.ID {
			return Official{}, fmt.Errorf("official %s already exists", official.ID)
		}
	}
	if official.Category == "" {
		official.Category = "general"
	}
	s.officials = append(s.officials, official)
	if err := s.saveLocked(); err != nil {
		return Official{}, err
	}
	return official, nil
}

// Replace swaps the whole roster, used by sample-data seeding and DB loads.
func (s *OfficialStore) Replace(officials []Official) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.officials = append([]Official(nil), officials...)
	return s.saveLocked()
}

func (s *OfficialStore) List() []Official {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Official(nil), s.officials...)
}

// Available returns the roster eligible for questions, dropping fakes unless
// they were requested.
func (s *OfficialStore) Available(includeFakes bool) []Official {
	s.mu.Lock()
	defer s.mu.Unlock()
	available := make([]Official, 0, len(s.officials))
	for _, official := range s.officials {
		if official.IsFake && !includeFakes {
			continue
		}
		available = append(available, official)
	}
	return available
}

func (s *OfficialStore) FindByID(id string) (Official, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, official := range s.officials {
		if official.ID == id {
			return official, true
		}
	}
	return Official{}, false
}

func (s *OfficialStore) Counts() (total, real, fake int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, official := range s.officials {
		if official.IsFake {
			fake++
		} else {
			real++
		}
	}
	return len(s.officials), real, fake
}

func (s *OfficialStore) SetDBID(id string, dbID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.officials {
		if s.officials[i].ID == id {
			s.officials[i].DBID = dbID
			return
		}
	}
}

func officialSlug(state, position string, index int) string {
	state = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(state), " ", "_"))
	position = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(position), " ", "_"))
	return fmt.Sprintf("%s_%s_%d", state, position, index)
}

// sampleOfficials is the canonical starter roster, including one decoy entry
// for the include-fakes mode.
func sampleOfficials() []Official {
	return []Official{
		{
			ID:        "il_sos",
			Name:      "Alexi Giannoulias",
			Position:  "Secretary of State",
			State:     "Illinois",
			PhotoPath: "photos/alexi_giannoulias.jpg",
			FunFact:   "Former professional basketball player turned politician",
			Category:  "secretary_of_state",
		},
		{
			ID:        "ca_sos",
			Name:      "Shirley Weber",
			Position:  "Secretary of State",
			State:     "California",
			PhotoPath: "photos/shirley_weber.jpg",
			FunFact:   "First African American to serve as California Secretary of State",
			Category:  "secretary_of_state",
		},
		{
			ID:        "tx_sos",
			Name:      "Jane Nelson",
			Position:  "Secretary of State",
			State:     "Texas",
			PhotoPath: "photos/jane_nelson.jpg",
			FunFact:   "Former state senator with 30+ years of experience",
			Category:  "secretary_of_state",
		},
		{
			ID:        "ny_gov",
			Name:      "Kathy Hochul",
			Position:  "Governor",
			State:     "New York",
			PhotoPath: "photos/kathy_hochul.jpg",
			FunFact:   "First female governor of New York",
			Category:  "governor",
		},
		{
			ID:        "fl_gov",
			Name:      "Ron DeSantis",
			Position:  "Governor",
			State:     "Florida",
			PhotoPath: "photos/ron_desantis.jpg",
			FunFact:   "Former Navy JAG officer and congressman",
			Category:  "governor",
		},
		{
			ID:        "fake_person_1",
			Name:      "Bob Johnson",
			Position:  "Definitely Not An Official",
			State:     "Nowhere",
			PhotoPath: "photos/fake_bob.jpg",
			FunFact:   "This is just some random guy from stock photos",
			Category:  "fake",
			IsFake:    true,
		},
	}
}
