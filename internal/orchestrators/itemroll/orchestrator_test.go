package itemroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
	"github.com/KirkDiggler/roll-api/internal/errors"
	"github.com/KirkDiggler/roll-api/internal/host"
	hostmock "github.com/KirkDiggler/roll-api/internal/host/mock"
	"github.com/KirkDiggler/roll-api/internal/repositories/actors"
	actorsmock "github.com/KirkDiggler/roll-api/internal/repositories/actors/mock"
	"github.com/KirkDiggler/roll-api/internal/repositories/items"
	itemsmock "github.com/KirkDiggler/roll-api/internal/repositories/items/mock"
	"github.com/KirkDiggler/roll-api/internal/settings"
)

// scriptedRoller feeds predetermined faces so totals are exact
type scriptedRoller struct {
	faces []int
	next  int
}

func (s *scriptedRoller) Roll(size int) (int, error) {
	if s.next >= len(s.faces) {
		return 0, fmt.Errorf("script exhausted after %d rolls", s.next)
	}
	face := s.faces[s.next]
	s.next++
	return face, nil
}

func (s *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, face)
	}
	return out, nil
}

type fixture struct {
	itemRepo  *itemsmock.MockRepository
	actorRepo *actorsmock.MockRepository
	renderer  *hostmock.MockRenderer
	chat      *hostmock.MockChatTransport
	prompter  *hostmock.MockPrompter
	deleter   *hostmock.MockItemDeleter
	placer    *hostmock.MockTemplatePlacer

	svc Service
}

func newFixture(t *testing.T, faces []int, snap settings.Snapshot) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		itemRepo:  itemsmock.NewMockRepository(ctrl),
		actorRepo: actorsmock.NewMockRepository(ctrl),
		renderer:  hostmock.NewMockRenderer(ctrl),
		chat:      hostmock.NewMockChatTransport(ctrl),
		prompter:  hostmock.NewMockPrompter(ctrl),
		deleter:   hostmock.NewMockItemDeleter(ctrl),
		placer:    hostmock.NewMockTemplatePlacer(ctrl),
	}

	f.renderer.EXPECT().
		RenderEntry(gomock.Any(), gomock.Any()).
		Return("<entry/>", nil).
		AnyTimes()
	f.renderer.EXPECT().
		RenderCard(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("<card/>", nil).
		AnyTimes()

	svc, err := NewOrchestrator(&Config{
		ItemRepo:       f.itemRepo,
		ActorRepo:      f.actorRepo,
		Roller:         &scriptedRoller{faces: faces},
		SettingsSrc:    settings.NewStaticStore(snap),
		Renderer:       f.renderer,
		Chat:           f.chat,
		Prompter:       f.prompter,
		ItemDeleter:    f.deleter,
		TemplatePlacer: f.placer,
	})
	require.NoError(t, err)
	f.svc = svc
	return f
}

func (f *fixture) expectDocuments(item *vtt.Item, actor *vtt.Actor) {
	f.itemRepo.EXPECT().
		Get(gomock.Any(), items.GetInput{ID: item.ID}).
		Return(&items.GetOutput{Item: item}, nil)
	f.actorRepo.EXPECT().
		Get(gomock.Any(), actors.GetInput{ID: actor.ID}).
		Return(&actors.GetOutput{Actor: actor}, nil)
}

func testActor() *vtt.Actor {
	return &vtt.Actor{ID: "actor-1", Name: "Kira"}
}

func testWeapon() *vtt.Item {
	return &vtt.Item{
		ID:          "item-1",
		OwnerID:     "actor-1",
		Name:        "Longsword",
		Type:        vtt.ItemTypeWeapon,
		ActionType:  vtt.ActionMeleeWeapon,
		AttackBonus: "5",
		Damage:      []vtt.DamagePart{{Formula: "1d8", Type: "slashing"}},
	}
}

func entryKinds(entries []host.Entry) []host.EntryKind {
	kinds := make([]host.EntryKind, 0, len(entries))
	for _, e := range entries {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestNewOrchestrator(t *testing.T) {
	t.Run("missing required dependencies", func(t *testing.T) {
		_, err := NewOrchestrator(&Config{})
		require.Error(t, err)
	})
}

func TestOrchestrator_NewRequest(t *testing.T) {
	f := newFixture(t, nil, settings.Defaults())

	t.Run("nil input", func(t *testing.T) {
		_, err := f.svc.NewRequest(nil)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("missing item ID", func(t *testing.T) {
		_, err := f.svc.NewRequest(&RollItemInput{OwnerID: "actor-1"})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("missing owner ID", func(t *testing.T) {
		_, err := f.svc.NewRequest(&RollItemInput{ItemID: "item-1"})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("negative advantage count", func(t *testing.T) {
		_, err := f.svc.NewRequest(&RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{Advantage: -1},
		})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestOrchestrator_RollItem(t *testing.T) {
	ctx := context.Background()

	t.Run("attack and damage on a crit", func(t *testing.T) {
		// d20 attack crits, 1d8 damage rolls a 6, the crit extra 1d8 rolls a 4
		f := newFixture(t, []int{20, 6, 4}, settings.Defaults())
		f.expectDocuments(testWeapon(), testActor())

		var sent *host.ChatMessage
		f.chat.EXPECT().
			CreateMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *host.ChatMessage) error {
				sent = msg
				return nil
			})

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields: []Field{
				{Kind: FieldAttack},
				{Kind: FieldDamage, Damage: &DamageField{All: true}},
			},
		})
		require.NoError(t, err)

		assert.True(t, out.Crit)
		assert.Equal(t, 3, out.DiceRolled)
		assert.Equal(t, "<card/>", out.Content)
		assert.Equal(t,
			[]host.EntryKind{host.EntryHeader, host.EntryMultiRoll, host.EntryDamage},
			entryKinds(out.Entries))

		damage := out.Entries[2].Damage
		require.NotNil(t, damage)
		assert.Equal(t, int32(6), damage.Base.Total)
		require.NotNil(t, damage.CritExtra)
		assert.Equal(t, int32(4), damage.CritExtra.Total)

		require.NotNil(t, sent)
		assert.True(t, sent.HasDice)
		assert.Equal(t, "sounds/dice.wav", sent.Sound)
		assert.Equal(t, "Kira", sent.SpeakerName)
	})

	t.Run("no crit means no crit extra", func(t *testing.T) {
		f := newFixture(t, []int{10, 6}, settings.Defaults())
		f.expectDocuments(testWeapon(), testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields: []Field{
				{Kind: FieldAttack},
				{Kind: FieldDamage, Damage: &DamageField{All: true}},
			},
		})
		require.NoError(t, err)

		assert.False(t, out.Crit)
		assert.Equal(t, 2, out.DiceRolled)
		assert.Nil(t, out.Entries[2].Damage.CritExtra)
	})

	t.Run("advantage rolls two dice and keeps the highest", func(t *testing.T) {
		f := newFixture(t, []int{4, 17, 6}, settings.Defaults())
		f.expectDocuments(testWeapon(), testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{Advantage: 1},
			Fields: []Field{
				{Kind: FieldAttack},
				{Kind: FieldDamage, Damage: &DamageField{All: true}},
			},
		})
		require.NoError(t, err)

		multi := out.Entries[1].MultiRoll
		require.NotNil(t, multi)
		require.Len(t, multi.Outcomes, 2)
		assert.Equal(t, int32(22), multi.ChosenTotal)
		assert.True(t, multi.Outcomes[0].Ignored)
		// Both attack dice plus the damage die reach the pool
		assert.Equal(t, 3, out.DiceRolled)
	})

	t.Run("tool check after a crit clears the crit flag", func(t *testing.T) {
		item := testWeapon()
		item.ToolFormula = "1d20"

		f := newFixture(t, []int{20, 5}, settings.Defaults())
		f.expectDocuments(item, testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields: []Field{
				{Kind: FieldAttack},
				{Kind: FieldToolCheck, Tool: &ToolField{}},
			},
		})
		require.NoError(t, err)
		assert.False(t, out.Crit)
	})

	t.Run("preset expands the item quick flags", func(t *testing.T) {
		item := testWeapon()
		item.Quick = vtt.QuickFlags{Attack: true, Damage: true, Description: true}
		item.Description = "A fine blade."

		f := newFixture(t, []int{12, 3}, settings.Defaults())
		f.expectDocuments(item, testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{Preset: PresetMain},
		})
		require.NoError(t, err)

		assert.Equal(t,
			[]host.EntryKind{host.EntryHeader, host.EntryMultiRoll, host.EntryDamage, host.EntryDescription},
			entryKinds(out.Entries))
		assert.Equal(t, "A fine blade.", out.Entries[3].Text)
	})

	t.Run("alt preset substitutes the versatile formula", func(t *testing.T) {
		item := testWeapon()
		item.Quick = vtt.QuickFlags{Damage: true, Versatile: true}
		item.Versatile = "1d10"

		f := newFixture(t, []int{9}, settings.Defaults())
		f.expectDocuments(item, testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{Preset: PresetAlt},
		})
		require.NoError(t, err)
		assert.Equal(t, "1d10", out.Entries[1].Damage.Formula)
	})

	t.Run("template preset places the area without mutating the input", func(t *testing.T) {
		item := testWeapon()
		item.Quick = vtt.QuickFlags{Damage: true, Template: true}
		item.AreaTemplate = "cone-15"

		f := newFixture(t, []int{6}, settings.Defaults())
		f.expectDocuments(item, testActor())
		f.placer.EXPECT().PlaceAreaTemplate(gomock.Any(), item).Return(nil)
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		input := &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{Preset: PresetMain},
		}
		_, err := f.svc.RollItem(ctx, input)
		require.NoError(t, err)
		assert.False(t, input.Params.PlaceTemplate)
	})

	t.Run("versatile substitutes on an explicit damage index", func(t *testing.T) {
		item := testWeapon()
		item.Damage = append(item.Damage, vtt.DamagePart{Formula: "2d6", Type: "fire"})
		item.Versatile = "1d10"

		f := newFixture(t, []int{9}, settings.Defaults())
		f.expectDocuments(item, testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{Index: 1, Versatile: true}}},
		})
		require.NoError(t, err)
		assert.Equal(t, "1d10", out.Entries[1].Damage.Formula)
		assert.Equal(t, int32(9), out.Entries[1].Damage.Base.Total)
	})

	t.Run("index all substitutes versatile on the first sub-roll only", func(t *testing.T) {
		item := testWeapon()
		item.Damage = append(item.Damage, vtt.DamagePart{Formula: "1d6", Type: "fire"})
		item.Versatile = "1d10"

		f := newFixture(t, []int{9, 4}, settings.Defaults())
		f.expectDocuments(item, testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{All: true, Versatile: true}}},
		})
		require.NoError(t, err)
		assert.Equal(t, "1d10", out.Entries[1].Damage.Formula)
		assert.Equal(t, "1d6", out.Entries[2].Damage.Formula)
	})

	t.Run("actor damage bonus joins the first damage slot", func(t *testing.T) {
		actor := testActor()
		actor.DamageBonuses = map[string]string{vtt.ActionMeleeWeapon: "1d4"}

		f := newFixture(t, []int{6, 2}, settings.Defaults())
		f.expectDocuments(testWeapon(), actor)
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{All: true}}},
		})
		require.NoError(t, err)

		damage := out.Entries[1].Damage
		assert.Equal(t, "1d8+1d4", damage.Formula)
		assert.Equal(t, int32(8), damage.Base.Total)
	})

	t.Run("cantrip damage scales with caster level", func(t *testing.T) {
		item := &vtt.Item{
			ID:             "item-1",
			Name:           "Fire Bolt",
			Type:           vtt.ItemTypeSpell,
			ActionType:     vtt.ActionRangedSpell,
			Damage:         []vtt.DamagePart{{Formula: "1d10", Type: "fire"}},
			ScalingMode:    vtt.ScalingModeCantrip,
			ScalingFormula: "1d10",
		}
		actor := testActor()
		actor.Level = 5

		f := newFixture(t, []int{7, 3}, settings.Defaults())
		f.expectDocuments(item, actor)
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{All: true}}},
		})
		require.NoError(t, err)
		assert.Equal(t, "1d10+1d10", out.Entries[1].Damage.Formula)
		assert.Equal(t, int32(10), out.Entries[1].Damage.Base.Total)
	})

	t.Run("slot casting scales per level above base", func(t *testing.T) {
		item := &vtt.Item{
			ID:             "item-1",
			Name:           "Magic Missile",
			Type:           vtt.ItemTypeSpell,
			ActionType:     vtt.ActionRangedSpell,
			SpellLevel:     1,
			Damage:         []vtt.DamagePart{{Formula: "1d4", Type: "force"}},
			ScalingMode:    vtt.ScalingModeSlot,
			ScalingFormula: "1d4",
		}

		f := newFixture(t, []int{1, 2, 3}, settings.Defaults())
		f.expectDocuments(item, testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{SlotLevel: 3},
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{All: true}}},
		})
		require.NoError(t, err)
		assert.Equal(t, "1d4+1d4+1d4", out.Entries[1].Damage.Formula)
		assert.Equal(t, int32(6), out.Entries[1].Damage.Base.Total)
	})

	t.Run("explicit slot below the base level is rejected", func(t *testing.T) {
		item := &vtt.Item{
			ID:         "item-1",
			Name:       "Fireball",
			Type:       vtt.ItemTypeSpell,
			SpellLevel: 3,
		}

		f := newFixture(t, nil, settings.Defaults())
		f.expectDocuments(item, testActor())

		_, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{SlotLevel: 2},
		})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("dismissed slot dialog cancels the request", func(t *testing.T) {
		item := &vtt.Item{
			ID:         "item-1",
			Name:       "Fireball",
			Type:       vtt.ItemTypeSpell,
			SpellLevel: 3,
		}

		f := newFixture(t, nil, settings.Defaults())
		f.expectDocuments(item, testActor())
		f.prompter.EXPECT().
			PromptSlotLevel(gomock.Any(), gomock.Any()).
			Return(nil, errors.Canceled("dialog dismissed"))

		// No chat expectation: an aborted request produces no message
		_, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
		})
		require.Error(t, err)
		assert.True(t, errors.IsCanceled(err))
	})

	t.Run("explicit slot with consume spends the owner's slot", func(t *testing.T) {
		item := &vtt.Item{
			ID:         "item-1",
			Name:       "Magic Missile",
			Type:       vtt.ItemTypeSpell,
			ActionType: vtt.ActionRangedSpell,
			SpellLevel: 1,
			Damage:     []vtt.DamagePart{{Formula: "1d4", Type: "force"}},
		}
		actor := testActor()
		actor.SpellSlots = map[int32]int32{2: 2}

		f := newFixture(t, []int{3}, settings.Defaults())
		f.expectDocuments(item, actor)
		f.actorRepo.EXPECT().
			UpdateSlots(gomock.Any(), actors.UpdateSlotsInput{ActorID: "actor-1", Level: 2, Remaining: 1}).
			Return(&actors.UpdateSlotsOutput{Actor: &vtt.Actor{
				ID:         "actor-1",
				Name:       "Kira",
				SpellSlots: map[int32]int32{2: 1},
			}}, nil)
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{SlotLevel: 2, ConsumeSlot: true},
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{}}},
		})
		require.NoError(t, err)
	})

	t.Run("consuming without a remaining slot fails the roll", func(t *testing.T) {
		item := &vtt.Item{
			ID:         "item-1",
			Name:       "Fireball",
			Type:       vtt.ItemTypeSpell,
			SpellLevel: 3,
		}

		f := newFixture(t, nil, settings.Defaults())
		f.expectDocuments(item, testActor())

		// No UpdateSlots and no chat expectation: the roll aborts before
		// any mutation
		_, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{SlotLevel: 3, ConsumeSlot: true},
		})
		require.Error(t, err)
		assert.True(t, errors.IsFailedPrecondition(err))
	})

	t.Run("prompt selection can spend the chosen slot", func(t *testing.T) {
		item := &vtt.Item{
			ID:         "item-1",
			Name:       "Fireball",
			Type:       vtt.ItemTypeSpell,
			SpellLevel: 3,
		}
		actor := testActor()
		actor.SpellSlots = map[int32]int32{4: 1}

		f := newFixture(t, nil, settings.Defaults())
		f.expectDocuments(item, actor)
		f.prompter.EXPECT().
			PromptSlotLevel(gomock.Any(), gomock.Any()).
			Return(&host.SlotPromptResult{SlotLevel: 4, ConsumeSlot: true}, nil)
		f.actorRepo.EXPECT().
			UpdateSlots(gomock.Any(), actors.UpdateSlotsInput{ActorID: "actor-1", Level: 4, Remaining: 0}).
			Return(&actors.UpdateSlotsOutput{Actor: actor}, nil)
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
		})
		require.NoError(t, err)
	})

	t.Run("ammunition damage follows the parent damage", func(t *testing.T) {
		bow := &vtt.Item{
			ID:         "item-1",
			Name:       "Shortbow",
			Type:       vtt.ItemTypeWeapon,
			ActionType: vtt.ActionRangedWeapon,
			Damage:     []vtt.DamagePart{{Formula: "1d6", Type: "piercing"}},
			AmmoID:     "ammo-1",
		}
		arrow := &vtt.Item{
			ID:     "ammo-1",
			Name:   "+1 Arrow",
			Type:   vtt.ItemTypeAmmo,
			Damage: []vtt.DamagePart{{Formula: "1d4", Type: "piercing"}},
		}

		f := newFixture(t, []int{5, 2}, settings.Defaults())
		f.expectDocuments(bow, testActor())
		f.itemRepo.EXPECT().
			Get(gomock.Any(), items.GetInput{ID: "ammo-1"}).
			Return(&items.GetOutput{Item: arrow}, nil)
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{All: true}}},
		})
		require.NoError(t, err)

		assert.Equal(t,
			[]host.EntryKind{host.EntryHeader, host.EntryDamage, host.EntryDamage},
			entryKinds(out.Entries))
		assert.Equal(t, int32(2), out.Entries[2].Damage.Base.Total)
	})

	t.Run("missing ammunition rolls without it", func(t *testing.T) {
		bow := &vtt.Item{
			ID:         "item-1",
			Name:       "Shortbow",
			Type:       vtt.ItemTypeWeapon,
			ActionType: vtt.ActionRangedWeapon,
			Damage:     []vtt.DamagePart{{Formula: "1d6", Type: "piercing"}},
			AmmoID:     "ammo-gone",
		}

		f := newFixture(t, []int{5}, settings.Defaults())
		f.expectDocuments(bow, testActor())
		f.itemRepo.EXPECT().
			Get(gomock.Any(), items.GetInput{ID: "ammo-gone"}).
			Return(nil, errors.NotFound("item not found"))
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{All: true}}},
		})
		require.NoError(t, err)
		assert.Len(t, out.Entries, 2)
	})

	t.Run("save button hides the DC when configured", func(t *testing.T) {
		item := &vtt.Item{
			ID:          "item-1",
			Name:        "Fireball",
			Type:        vtt.ItemTypeSpell,
			SaveAbility: "dex",
			SaveDC:      15,
		}
		snap := settings.Defaults()
		snap.HideDC = true

		f := newFixture(t, nil, snap)
		f.expectDocuments(item, testActor())

		var sent *host.ChatMessage
		f.chat.EXPECT().
			CreateMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *host.ChatMessage) error {
				sent = msg
				return nil
			})

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields:  []Field{{Kind: FieldSaveButton, Save: &SaveField{}}},
		})
		require.NoError(t, err)

		button := out.Entries[1].Button
		require.NotNil(t, button)
		assert.Equal(t, "dex", button.Ability)
		assert.Equal(t, int32(15), button.DC)
		assert.True(t, button.HideDC)

		// No dice rolled, so no dice flag and no sound
		require.NotNil(t, sent)
		assert.False(t, sent.HasDice)
		assert.Empty(t, sent.Sound)
	})

	t.Run("consuming the last quantity destroys after chat", func(t *testing.T) {
		potion := &vtt.Item{
			ID:              "item-1",
			Name:            "Potion of Healing",
			Type:            vtt.ItemTypeConsumable,
			Damage:          []vtt.DamagePart{{Formula: "2d4", Type: "healing"}},
			Quantity:        1,
			ConsumeQuantity: true,
			AutoDestroy:     true,
		}

		f := newFixture(t, []int{3, 4}, settings.Defaults())
		f.expectDocuments(potion, testActor())

		update := f.itemRepo.EXPECT().
			UpdateCounters(gomock.Any(), items.UpdateCountersInput{ItemID: "item-1", Quantity: int32Ptr(0)}).
			Return(&items.UpdateCountersOutput{
				Item: &vtt.Item{ID: "item-1", Name: "Potion of Healing", AutoDestroy: true},
			}, nil)
		chat := f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil).After(update)
		f.deleter.EXPECT().DeleteItem(gomock.Any(), "item-1").Return(nil).After(chat)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{Consume: true},
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{All: true}}},
		})
		require.NoError(t, err)
		assert.True(t, out.Destroyed)
	})

	t.Run("failed consumption aborts before chat", func(t *testing.T) {
		wand := &vtt.Item{
			ID:   "item-1",
			Name: "Wand of Scorching",
			Type: vtt.ItemTypeConsumable,
			Uses: vtt.Uses{Value: 0, Max: 7},
		}

		f := newFixture(t, nil, settings.Defaults())
		f.expectDocuments(wand, testActor())

		// No chat or update expectations: the precondition fails first
		_, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{Consume: true},
		})
		require.Error(t, err)
		assert.True(t, errors.IsFailedPrecondition(err))
	})

	t.Run("force crit applies before any field", func(t *testing.T) {
		f := newFixture(t, []int{6, 4}, settings.Defaults())
		f.expectDocuments(testWeapon(), testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{ForceCrit: true},
			Fields:  []Field{{Kind: FieldDamage, Damage: &DamageField{All: true}}},
		})
		require.NoError(t, err)
		assert.True(t, out.Crit)
		assert.NotNil(t, out.Entries[1].Damage.CritExtra)
	})

	t.Run("never override suppresses the crit extra", func(t *testing.T) {
		f := newFixture(t, []int{6}, settings.Defaults())
		f.expectDocuments(testWeapon(), testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Params:  RollParams{ForceCrit: true},
			Fields: []Field{
				{Kind: FieldDamage, Damage: &DamageField{All: true, CritOverride: vtt.CritOverrideNever}},
			},
		})
		require.NoError(t, err)
		assert.Nil(t, out.Entries[1].Damage.CritExtra)
	})

	t.Run("secondary crit damage auto-appends", func(t *testing.T) {
		sword := testWeapon()
		sword.CritExtraDamage = "1d6"

		f := newFixture(t, []int{20, 6, 4, 2}, settings.Defaults())
		f.expectDocuments(sword, testActor())
		f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.RollItem(ctx, &RollItemInput{
			ItemID:  "item-1",
			OwnerID: "actor-1",
			Fields: []Field{
				{Kind: FieldAttack},
				{Kind: FieldDamage, Damage: &DamageField{All: true}},
			},
		})
		require.NoError(t, err)

		kinds := entryKinds(out.Entries)
		require.Len(t, kinds, 4)
		assert.Equal(t, host.EntryDamage, kinds[3])
		extra := out.Entries[3].Damage
		assert.Equal(t, int32(2), extra.Base.Total)
		// The secondary slot never doubles again
		assert.Nil(t, extra.CritExtra)
	})
}

func TestRequest_RollTwice(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, []int{11, 4}, settings.Defaults())
	f.expectDocuments(testWeapon(), testActor())
	f.chat.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	req, err := f.svc.NewRequest(&RollItemInput{
		ItemID:  "item-1",
		OwnerID: "actor-1",
		Fields: []Field{
			{Kind: FieldAttack},
			{Kind: FieldDamage, Damage: &DamageField{All: true}},
		},
	})
	require.NoError(t, err)

	first, err := req.Roll(ctx)
	require.NoError(t, err)
	assert.False(t, first.NoOp)

	second, err := req.Roll(ctx)
	require.NoError(t, err)
	assert.True(t, second.NoOp)
	assert.Equal(t, first.Crit, second.Crit)
	assert.Equal(t, first.Content, second.Content)
}

func TestRequest_RollTwice_ReplaysFailure(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t, nil, settings.Defaults())
	f.itemRepo.EXPECT().
		Get(gomock.Any(), items.GetInput{ID: "item-1"}).
		Return(nil, errors.NotFoundf("item not found: item-1")).
		Times(1)

	req, err := f.svc.NewRequest(&RollItemInput{
		ItemID:  "item-1",
		OwnerID: "actor-1",
	})
	require.NoError(t, err)

	_, firstErr := req.Roll(ctx)
	require.Error(t, firstErr)

	// The second call replays the outcome without re-running anything,
	// and never reports success for a failed request
	out, secondErr := req.Roll(ctx)
	assert.Nil(t, out)
	require.Error(t, secondErr)
	assert.Equal(t, firstErr, secondErr)
	assert.True(t, errors.IsNotFound(secondErr))
}
