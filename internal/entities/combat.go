package entities

// PlayerStats holds the player's live and base combat values.
// Base values are the reference points derived stats are rebuilt from.
type PlayerStats struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Atk     int `json:"atk"`
	Def     int `json:"def"`
	BaseAtk int `json:"baseAtk"`
	BaseDef int `json:"baseDef"`
	BaseHP  int `json:"baseHp"`
}

// Enemy is the opponent of the current combat
type Enemy struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
	Atk   int    `json:"atk"`
	Def   int    `json:"def"`
	Zone  int    `json:"zone"`
}

// KnowledgeStreak counts consecutive correct answers
type KnowledgeStreak struct {
	Current    int     `json:"current"`
	Best       int     `json:"best"`
	Multiplier float64 `json:"multiplier"`
}

// AdventureSkillType enumerates the combat-scoped skill effects
type AdventureSkillType string

// Adventure skill types
const (
	SkillRisker         AdventureSkillType = "risker"
	SkillLightningChain AdventureSkillType = "lightning_chain"
	SkillSkipCard       AdventureSkillType = "skip_card"
	SkillMetalShield    AdventureSkillType = "metal_shield"
	SkillTruthLies      AdventureSkillType = "truth_lies"
	SkillRamp           AdventureSkillType = "ramp"
	SkillDodge          AdventureSkillType = "dodge"
)

// AdventureSkill is an immutable skill definition
type AdventureSkill struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        AdventureSkillType `json:"type"`
}

// SkillEffects tracks per-combat one-shot and persistent skill flags
type SkillEffects struct {
	SkipCardUsed         bool `json:"skipCardUsed"`
	MetalShieldUsed      bool `json:"metalShieldUsed"`
	DodgeUsed            bool `json:"dodgeUsed"`
	TruthLiesActive      bool `json:"truthLiesActive"`
	LightningChainActive bool `json:"lightningChainActive"`
	RampActive           bool `json:"rampActive"`
}

// AdventureSkillsState is the skill selection of the current or pending combat
type AdventureSkillsState struct {
	SelectedSkill      *AdventureSkill  `json:"selectedSkill"`
	AvailableSkills    []AdventureSkill `json:"availableSkills"`
	ShowSelectionModal bool             `json:"showSelectionModal"`
	SkillEffects       SkillEffects     `json:"skillEffects"`
}

// SelectedType returns the selected skill type, empty when none
func (a *AdventureSkillsState) SelectedType() AdventureSkillType {
	if a.SelectedSkill == nil {
		return ""
	}
	return a.SelectedSkill.Type
}

// CombatPhase names the states of the combat state machine
type CombatPhase string

// Combat phases
const (
	CombatPhaseIdle                CombatPhase = "idle"
	CombatPhaseAwaitingSkillChoice CombatPhase = "awaiting_skill_choice"
	CombatPhaseInCombat            CombatPhase = "in_combat"
)
