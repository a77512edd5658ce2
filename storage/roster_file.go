// Package storage reads and writes rosters as hand-editable YAML files,
// for sharing a player list outside the local database.
package storage

import (
	"fmt"
	"os"
	"team-lab/domain"

	"github.com/google/uuid"
	"sigs.k8s.io/yaml"
)

type FileParticipant struct {
	Name    string `json:"name"`
	Skill   uint32 `json:"skill,omitempty"`
	Captain bool   `json:"captain,omitempty"`
}

type RosterFile struct {
	Teams        int               `json:"teams"`
	Participants []FileParticipant `json:"participants"`
}

// LoadRosterFile reads a roster from path. A missing team count falls back
// to the default; every participant gets a fresh ID.
func LoadRosterFile(path string) (domain.Roster, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("reading roster file %s: %w", path, err)
	}
	var file RosterFile
	if err = yaml.UnmarshalStrict(content, &file); err != nil {
		return domain.Roster{}, fmt.Errorf("decoding roster file %s: %w", path, err)
	}
	return toRoster(file), nil
}

func SaveRosterFile(path string, roster domain.Roster) error {
	content, err := yaml.Marshal(fromRoster(roster))
	if err != nil {
		return fmt.Errorf("encoding roster: %w", err)
	}
	if err = os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing roster file %s: %w", path, err)
	}
	return nil
}

func toRoster(file RosterFile) domain.Roster {
	roster := domain.NewRoster()
	if file.Teams != 0 {
		roster.TeamCount = file.Teams
	}
	for _, p := range file.Participants {
		roster.Participants = append(roster.Participants, domain.Participant{
			ID:        uuid.New(),
			Name:      p.Name,
			Skill:     p.Skill,
			IsCaptain: p.Captain,
		})
	}
	return roster
}

func fromRoster(roster domain.Roster) RosterFile {
	file := RosterFile{
		Teams:        roster.TeamCount,
		Participants: make([]FileParticipant, 0, len(roster.Participants)),
	}
	for _, p := range roster.Participants {
		file.Participants = append(file.Participants, FileParticipant{
			Name:    p.Name,
			Skill:   p.Skill,
			Captain: p.IsCaptain,
		})
	}
	return file
}
