package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/game"
)

// Env holds the process-level settings, parsed from environment variables.
type Env struct {
	Address       string        `env:"HEROFORGE_ADDR" envDefault:":8080"`
	DBPath        string        `env:"HEROFORGE_DB" envDefault:"./data/heroforge.db"`
	ContentPath   string        `env:"HEROFORGE_CONFIG" envDefault:"./heroforge_config.json"`
	TurnSeconds   int           `env:"HEROFORGE_TURN_SECONDS" envDefault:"30"`
	SessionTTL    time.Duration `env:"HEROFORGE_SESSION_TTL" envDefault:"10m"`
	SweepInterval time.Duration `env:"HEROFORGE_SWEEP_INTERVAL" envDefault:"30s"`
}

// LoadEnv parses the environment configuration.
func LoadEnv() (*Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

type rawContent struct {
	SkillList     []game.Skill     `json:"skill_list"`
	ArchetypeList []game.Archetype `json:"archetype_list"`
}

// Content is the game-balance configuration: skill definitions and the NPC
// archetypes opponents are generated from. It is the single source of
// truth for combat numbers; nothing here is persisted.
type Content struct {
	Skills     []game.Skill
	Archetypes []game.Archetype

	byKey map[string]game.Skill
}

// LoadContent reads and validates the content file at path. It requires a
// non-empty `skill_list` and `archetype_list`.
func LoadContent(path string) (*Content, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	var rc rawContent
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	if len(rc.SkillList) == 0 {
		return nil, fmt.Errorf("content file %s: skill_list is empty", path)
	}
	if len(rc.ArchetypeList) == 0 {
		return nil, fmt.Errorf("content file %s: archetype_list is empty", path)
	}

	c := &Content{
		Skills:     rc.SkillList,
		Archetypes: rc.ArchetypeList,
		byKey:      make(map[string]game.Skill, len(rc.SkillList)),
	}
	for _, s := range rc.SkillList {
		if s.Key == "" {
			return nil, fmt.Errorf("content file %s: skill entry missing 'key'", path)
		}
		c.byKey[strings.ToLower(s.Key)] = s
	}
	for _, a := range rc.ArchetypeList {
		if a.Name == "" {
			return nil, fmt.Errorf("content file %s: archetype entry missing 'name'", path)
		}
	}
	return c, nil
}

// SkillByKey looks a skill up case-insensitively.
func (c *Content) SkillByKey(key string) (game.Skill, bool) {
	s, ok := c.byKey[strings.ToLower(key)]
	return s, ok
}

// SkillsFor resolves a list of loadout keys, skipping unknown ones.
func (c *Content) SkillsFor(keys []string) []game.Skill {
	out := make([]game.Skill, 0, len(keys))
	for _, k := range keys {
		if s, ok := c.SkillByKey(k); ok {
			out = append(out, s)
		}
	}
	return out
}

// ArchetypeByName returns the named NPC template, or nil.
func (c *Content) ArchetypeByName(name string) *game.Archetype {
	for i := range c.Archetypes {
		if strings.EqualFold(c.Archetypes[i].Name, name) {
			return &c.Archetypes[i]
		}
	}
	return nil
}
