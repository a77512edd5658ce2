// Package domain contains core concepts of the team balancer.
// This file defines Participant entities and related invariants.
// No runtime, storage, or UI logic should be added here.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

const unnamed = "Unnamed"

// Participant is a player taking part in a draw.
// Identity is positional for the engine; ID only helps callers address a participant.
type Participant struct {
	ID        uuid.UUID
	Name      string `validate:"max=64"`
	Skill     uint32 `validate:"lte=35000"`
	IsCaptain bool
}

func NewParticipant(name string, skill uint32, isCaptain bool) Participant {
	return Participant{
		ID:        uuid.New(),
		Name:      name,
		Skill:     skill,
		IsCaptain: isCaptain,
	}
}

// DisplayName returns the name or a placeholder when it is empty.
func (p Participant) DisplayName() string {
	if p.Name == "" {
		return unnamed
	}
	return p.Name
}

// PrettyName is the label used in listings and exports.
func (p Participant) PrettyName(hideSkills bool) string {
	name := p.DisplayName()
	if p.IsCaptain {
		name = "👑 " + name
	}
	if hideSkills {
		return name
	}
	return fmt.Sprintf("%s (%d)", name, p.Skill)
}
