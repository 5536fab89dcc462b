package entities

// Rarity of an item, ordered from most to least common
type Rarity string

// Rarity constants
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

// Rarities lists every rarity in weight-table order
var Rarities = []Rarity{
	RarityCommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythical,
}

// ItemKind distinguishes the two equipment slots a chest can fill
type ItemKind string

// Item kinds
const (
	ItemKindWeapon ItemKind = "weapon"
	ItemKindArmor  ItemKind = "armor"
)

// Weapon is an owned weapon. Upgrading raises Level and BaseAtk.
type Weapon struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Level       int    `json:"level"`
	BaseAtk     int    `json:"baseAtk"`
	UpgradeCost int    `json:"upgradeCost"`
	SellPrice   int    `json:"sellPrice"`
}

// Armor is an owned piece of armor. Upgrading raises Level and BaseDef.
type Armor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rarity      Rarity `json:"rarity"`
	Level       int    `json:"level"`
	BaseDef     int    `json:"baseDef"`
	UpgradeCost int    `json:"upgradeCost"`
	SellPrice   int    `json:"sellPrice"`
}

// Relic is an equippable trinket bought from the Yojef market.
// A relic of Type weapon adds attack, one of Type armor adds defense.
type Relic struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rarity      Rarity   `json:"rarity"`
	Type        ItemKind `json:"type"`
	Level       int      `json:"level"`
	BaseAtk     int      `json:"baseAtk"`
	BaseDef     int      `json:"baseDef"`
	UpgradeCost int      `json:"upgradeCost"`
	SellPrice   int      `json:"sellPrice"`
	Cost        int      `json:"cost"`
}

// ChestReward is returned from opening a chest or buying a mythical item.
// It is never stored in state.
type ChestReward struct {
	Type    ItemKind  `json:"type"`
	Weapons []*Weapon `json:"weapons,omitempty"`
	Armor   []*Armor  `json:"armor,omitempty"`
}

// ItemNames returns the names of every item in the reward
func (r *ChestReward) ItemNames() []string {
	names := make([]string, 0, len(r.Weapons)+len(r.Armor))
	for _, w := range r.Weapons {
		names = append(names, w.Name)
	}
	for _, a := range r.Armor {
		names = append(names, a.Name)
	}
	return names
}

// MaxEquippedRelics is the relic slot cap
const MaxEquippedRelics = 5

// Inventory owns every item. Equipped items are referenced by id.
type Inventory struct {
	Weapons          []*Weapon `json:"weapons"`
	Armor            []*Armor  `json:"armor"`
	Relics           []*Relic  `json:"relics"`
	CurrentWeaponID  string    `json:"currentWeaponId,omitempty"`
	CurrentArmorID   string    `json:"currentArmorId,omitempty"`
	EquippedRelicIDs []string  `json:"equippedRelicIds"`
}

// FindWeapon returns the owned weapon with the given id and its index
func (inv *Inventory) FindWeapon(id string) (*Weapon, int) {
	for i, w := range inv.Weapons {
		if w.ID == id {
			return w, i
		}
	}
	return nil, -1
}

// FindArmor returns the owned armor with the given id and its index
func (inv *Inventory) FindArmor(id string) (*Armor, int) {
	for i, a := range inv.Armor {
		if a.ID == id {
			return a, i
		}
	}
	return nil, -1
}

// FindRelic returns the owned relic with the given id and its index
func (inv *Inventory) FindRelic(id string) (*Relic, int) {
	for i, r := range inv.Relics {
		if r.ID == id {
			return r, i
		}
	}
	return nil, -1
}

// CurrentWeapon resolves the equipped weapon, nil when none
func (inv *Inventory) CurrentWeapon() *Weapon {
	if inv.CurrentWeaponID == "" {
		return nil
	}
	w, _ := inv.FindWeapon(inv.CurrentWeaponID)
	return w
}

// CurrentArmor resolves the equipped armor, nil when none
func (inv *Inventory) CurrentArmor() *Armor {
	if inv.CurrentArmorID == "" {
		return nil
	}
	a, _ := inv.FindArmor(inv.CurrentArmorID)
	return a
}

// IsRelicEquipped reports whether the relic id is in an equipped slot
func (inv *Inventory) IsRelicEquipped(id string) bool {
	for _, equipped := range inv.EquippedRelicIDs {
		if equipped == id {
			return true
		}
	}
	return false
}

// EquippedRelics resolves equipped relic ids, skipping dangling ids
func (inv *Inventory) EquippedRelics() []*Relic {
	relics := make([]*Relic, 0, len(inv.EquippedRelicIDs))
	for _, id := range inv.EquippedRelicIDs {
		if r, _ := inv.FindRelic(id); r != nil {
			relics = append(relics, r)
		}
	}
	return relics
}
