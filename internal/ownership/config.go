package ownership

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Unowned is the owner sentinel for teams nobody holds.
const Unowned = "Unowned"

// Roster is one owner's teams in document order.
type Roster struct {
	Owner string
	Teams []string
}

// Owners preserves the key order of the "owners" JSON object.
type Owners []Roster

// Config is the pool's ownership document. It is loaded per computation and never mutated.
type Config struct {
	Season   int      `json:"season"`
	Timezone string   `json:"timezone,omitempty"`
	Owners   Owners   `json:"owners"`
	Unowned  []string `json:"unowned"`
}

// Decode parses an ownership document. Content is not validated beyond being well-formed JSON.
func Decode(r io.Reader) (Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("ownership: decode: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured timezone, or fallback when it is empty or unknown.
func (c Config) Location(fallback *time.Location) *time.Location {
	if c.Timezone != "" {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			return loc
		}
	}
	if fallback == nil {
		return time.UTC
	}
	return fallback
}

// UnmarshalJSON reads an object of owner -> team list keeping key order. A repeated
// owner key replaces the earlier roster in place.
func (o *Owners) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("owners: expected object, got %v", tok)
	}

	out := Owners{}
	seen := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		owner, _ := keyTok.(string)
		var teams []string
		if err := dec.Decode(&teams); err != nil {
			return fmt.Errorf("owners[%s]: %w", owner, err)
		}
		if i, dup := seen[owner]; dup {
			out[i].Teams = teams
			continue
		}
		seen[owner] = len(out)
		out = append(out, Roster{Owner: owner, Teams: teams})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*o = out
	return nil
}

// MarshalJSON writes the owners object in roster order.
func (o Owners) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Owner)
		if err != nil {
			return nil, err
		}
		teams := r.Teams
		if teams == nil {
			teams = []string{}
		}
		val, err := json.Marshal(teams)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TeamToOwner maps team names to owners. Explicit rosters are applied first so the
// unowned list never overrides an assignment.
type TeamToOwner map[string]string

// BuildTeamToOwner flattens the config into a TeamToOwner map.
func BuildTeamToOwner(cfg Config) TeamToOwner {
	out := make(TeamToOwner)
	for _, r := range cfg.Owners {
		for _, team := range r.Teams {
			out[team] = r.Owner
		}
	}
	for _, team := range cfg.Unowned {
		if _, assigned := out[team]; !assigned {
			out[team] = Unowned
		}
	}
	return out
}

// OwnerOf returns the team's owner, or Unowned when the team is not listed.
func (m TeamToOwner) OwnerOf(team string) string {
	if owner, ok := m[team]; ok {
		return owner
	}
	return Unowned
}
