package fixture

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/preston-bernstein/nfl-pool-service/internal/providers"
	"github.com/preston-bernstein/nfl-pool-service/internal/providers/espn"
)

// ProviderName labels metrics and logs for the fixture provider.
const ProviderName = "fixture"

//go:embed data/season.json
var seasonJSON []byte

// Provider serves a canned scoreboard for local runs. It reads the same payload shape as
// the live adapter so the mapping code is exercised end to end.
type Provider struct {
	raw  []byte
	once sync.Once
	doc  espn.Document
	err  error
}

// New creates a fixture provider backed by the embedded season.
func New() *Provider {
	return &Provider{raw: seasonJSON}
}

// NewFromBytes creates a fixture provider over an arbitrary scoreboard payload.
func NewFromBytes(raw []byte) *Provider {
	return &Provider{raw: raw}
}

// Calendar returns the canned calendar.
func (p *Provider) Calendar(ctx context.Context) (providers.Calendar, error) {
	if err := ctx.Err(); err != nil {
		return providers.Calendar{}, err
	}
	doc, err := p.document()
	if err != nil {
		return providers.Calendar{}, err
	}
	return espn.MapCalendar(doc), nil
}

// Matchups returns canned games whose kickoff falls within [start, end].
func (p *Provider) Matchups(ctx context.Context, start, end time.Time) ([]providers.Matchup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	all := espn.MapMatchups(doc)
	out := make([]providers.Matchup, 0, len(all))
	for _, m := range all {
		if m.Kickoff == nil {
			continue
		}
		if m.Kickoff.Before(start) || m.Kickoff.After(end) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (p *Provider) document() (espn.Document, error) {
	p.once.Do(func() {
		p.doc, p.err = espn.Decode(bytes.NewReader(p.raw))
		if p.err != nil {
			p.err = fmt.Errorf("fixture: decode season: %w", p.err)
		}
	})
	return p.doc, p.err
}
