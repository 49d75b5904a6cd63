// Package itemroll implements the roll orchestrator: the field dispatcher
// that turns an item, a parameter set and an ordered field list into a
// rendered chat card, handling crit propagation, spell slots, ammunition
// and charge consumption along the way.
package itemroll

//go:generate mockgen -destination=mock/mock_service.go -package=itemrollmock github.com/KirkDiggler/roll-api/internal/orchestrators/itemroll Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/roll-api/internal/dicepool"
	"github.com/KirkDiggler/roll-api/internal/entities/vtt"
	"github.com/KirkDiggler/roll-api/internal/errors"
	"github.com/KirkDiggler/roll-api/internal/host"
	"github.com/KirkDiggler/roll-api/internal/pkg/clock"
	"github.com/KirkDiggler/roll-api/internal/pkg/idgen"
	"github.com/KirkDiggler/roll-api/internal/repositories/actors"
	"github.com/KirkDiggler/roll-api/internal/repositories/items"
	"github.com/KirkDiggler/roll-api/internal/roll"
	"github.com/KirkDiggler/roll-api/internal/settings"
)

// EventCardAssembled is published after all entries are produced and
// before the card is rendered, so listeners can observe the intermediate
// state of a request.
const EventCardAssembled = "roll_api.card_assembled"

// Service defines the interface for item roll operations
type Service interface {
	// RollItem builds a one-shot request and rolls it
	RollItem(ctx context.Context, input *RollItemInput) (*RollItemOutput, error)

	// NewRequest creates a request that can be rolled exactly once
	NewRequest(input *RollItemInput) (*Request, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	ItemRepo  items.Repository
	ActorRepo actors.Repository

	Roller      dice.Roller
	SettingsSrc settings.Store
	Renderer    host.Renderer
	Chat        host.ChatTransport
	Prompter    host.Prompter

	// Optional collaborators
	EventBus         events.EventBus
	ResourceConsumer host.ResourceConsumer
	TemplatePlacer   host.TemplatePlacer
	ItemDeleter      host.ItemDeleter
	ShowDice         dicepool.ShowDiceFunc
	IDGenerator      idgen.Generator
	Clock            clock.Clock

	// PreRenderDelay is the artificial pause after the card-assembled
	// event, giving listeners a chance to observe the request
	PreRenderDelay time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.SettingsSrc == nil {
		vb.RequiredField("SettingsSrc")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Chat == nil {
		vb.RequiredField("Chat")
	}
	if c.Prompter == nil {
		vb.RequiredField("Prompter")
	}

	return vb.Build()
}

type orchestrator struct {
	itemRepo  items.Repository
	actorRepo actors.Repository

	roller      dice.Roller
	settingsSrc settings.Store
	renderer    host.Renderer
	chat        host.ChatTransport
	prompter    host.Prompter

	eventBus         events.EventBus
	resourceConsumer host.ResourceConsumer
	templatePlacer   host.TemplatePlacer
	itemDeleter      host.ItemDeleter
	showDice         dicepool.ShowDiceFunc
	idGen            idgen.Generator
	clock            clock.Clock

	preRenderDelay time.Duration
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("roll")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		itemRepo:         cfg.ItemRepo,
		actorRepo:        cfg.ActorRepo,
		roller:           cfg.Roller,
		settingsSrc:      cfg.SettingsSrc,
		renderer:         cfg.Renderer,
		chat:             cfg.Chat,
		prompter:         cfg.Prompter,
		eventBus:         cfg.EventBus,
		resourceConsumer: cfg.ResourceConsumer,
		templatePlacer:   cfg.TemplatePlacer,
		itemDeleter:      cfg.ItemDeleter,
		showDice:         cfg.ShowDice,
		idGen:            idGen,
		clock:            clk,
		preRenderDelay:   cfg.PreRenderDelay,
	}, nil
}

// Request is one user-initiated roll operation. A request rolls exactly
// once; rolling it again is a logged no-op, not an error. Requests are
// owned by a single caller and are not safe for concurrent use.
type Request struct {
	id    string
	o     *orchestrator
	input *RollItemInput

	rolled bool
	output *RollItemOutput
	err    error

	// Per-roll state, populated during Roll
	snap        *settings.Snapshot
	item        *vtt.Item
	ammo        *vtt.Item
	actor       *vtt.Actor
	pool        *dicepool.Collection
	entries     []host.Entry
	castLevel   int32
	consumeSlot bool

	// placeTemplate is request-local; presets may turn it on without
	// touching the caller's input
	placeTemplate bool

	// crit is the monotonic crit accumulator; field N's value is visible
	// to field N+1
	crit       bool
	hasAttack  bool
	hasDamage  bool
	ammoRolled bool
}

// NewRequest creates a request that can be rolled exactly once
func (o *orchestrator) NewRequest(input *RollItemInput) (*Request, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if input.Params.Advantage < 0 || input.Params.Disadvantage < 0 {
		return nil, errors.InvalidArgument("advantage counts must be non-negative")
	}

	return &Request{
		id:    o.idGen.Generate(),
		o:     o,
		input: input,
	}, nil
}

// RollItem builds a one-shot request and rolls it
func (o *orchestrator) RollItem(ctx context.Context, input *RollItemInput) (*RollItemOutput, error) {
	req, err := o.NewRequest(input)
	if err != nil {
		return nil, err
	}
	return req.Roll(ctx)
}

// Roll executes the request. Validation failures and dismissed dialogs
// abort the request: dice already rolled are discarded un-flushed and no
// chat message is produced. Rolling again replays the first outcome: a
// no-op copy of the output on success, the original error on failure.
func (r *Request) Roll(ctx context.Context) (*RollItemOutput, error) {
	if r.rolled {
		if r.err != nil {
			slog.Info("roll request already failed, replaying error",
				"request_id", r.id,
				"item_id", r.input.ItemID,
				"error", r.err,
			)
			return nil, r.err
		}
		slog.Info("roll request already rolled, skipping",
			"request_id", r.id,
			"item_id", r.input.ItemID,
		)
		out := *r.output
		out.NoOp = true
		return &out, nil
	}
	r.rolled = true

	out, err := r.roll(ctx)
	if err != nil {
		r.err = err
		return nil, err
	}
	return out, nil
}

func (r *Request) roll(ctx context.Context) (*RollItemOutput, error) {
	r.output = &RollItemOutput{}

	o := r.o
	started := o.clock.Now()

	// Initializing: capture the settings snapshot for the whole request
	snap, err := o.settingsSrc.Capture(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to capture settings")
	}
	r.snap = snap
	r.crit = r.input.Params.ForceCrit

	if err := r.loadDocuments(ctx); err != nil {
		return nil, err
	}

	// Presetting: expand a numeric preset into a concrete field list
	r.placeTemplate = r.input.Params.PlaceTemplate
	fields := r.input.Fields
	if len(fields) == 0 && r.input.Params.Preset != PresetNone {
		fields = r.presetFields()
	}

	// SlotResolution: leveled spells pick a cast level before any roll
	if err := r.resolveSlotLevel(ctx); err != nil {
		return nil, err
	}

	r.pool = dicepool.New(o.showDice)
	r.entries = []host.Entry{{
		Kind: host.EntryHeader,
		Header: &host.HeaderEntry{
			Title:    r.item.Name,
			Subtitle: r.actor.Name,
		},
	}}

	// Rendering: walk the field list strictly in order
	for i := range fields {
		if err := r.processField(ctx, &fields[i]); err != nil {
			return nil, err
		}
	}

	// Auto-append the critical extra damage when policy asks for it
	if r.crit && r.item.CritExtraDamage != "" && r.hasDamage {
		if err := r.processField(ctx, &Field{Kind: FieldCritExtra}); err != nil {
			return nil, err
		}
	}

	if r.placeTemplate && r.item.HasAreaTemplate() {
		r.performPlaceTemplate(ctx)
	}

	// ChargeConsumption: counters mutate only after every field rolled
	if r.consumeSlot {
		if err := r.consumeSpellSlot(ctx); err != nil {
			return nil, err
		}
	}
	outcome := ConsumeSuccess
	if r.input.Params.Consume {
		outcome, err = o.consumeCharge(ctx, r.item, deriveChargeRequest(r.item))
		if err != nil {
			return nil, err
		}
	}

	// Finalizing: publish the intermediate hook, then render and deliver
	r.publishCardAssembled(ctx)
	if o.preRenderDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "request canceled")
		case <-time.After(o.preRenderDelay):
		}
	}

	content, err := r.renderCard(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.deliver(ctx, content); err != nil {
		return nil, err
	}

	if err := r.pool.Flush(ctx); err != nil {
		slog.Warn("failed to flush dice pool", "request_id", r.id, "error", err)
	}

	// Deletion happens strictly after the chat output
	if outcome == ConsumeDestroy {
		r.deleteItem(ctx)
		r.output.Destroyed = true
	}

	r.output.Crit = r.crit
	r.output.Entries = r.entries
	r.output.Content = content
	r.output.DiceRolled = r.pool.Len()

	slog.Info("item rolled",
		"request_id", r.id,
		"item_id", r.item.ID,
		"owner_id", r.actor.ID,
		"crit", r.crit,
		"dice", r.pool.Len(),
		"destroyed", r.output.Destroyed,
		"duration", o.clock.Now().Sub(started),
	)

	return r.output, nil
}

// loadDocuments fetches the item, its owner and any ammunition item
func (r *Request) loadDocuments(ctx context.Context) error {
	itemOut, err := r.o.itemRepo.Get(ctx, items.GetInput{ID: r.input.ItemID})
	if err != nil {
		return errors.Wrap(err, "failed to get item")
	}
	r.item = itemOut.Item

	actorOut, err := r.o.actorRepo.Get(ctx, actors.GetInput{ID: r.input.OwnerID})
	if err != nil {
		return errors.Wrap(err, "failed to get owner")
	}
	r.actor = actorOut.Actor

	if r.item.AmmoID != "" {
		ammoOut, err := r.o.itemRepo.Get(ctx, items.GetInput{ID: r.item.AmmoID})
		if err != nil {
			if !errors.IsNotFound(err) {
				return errors.Wrap(err, "failed to get ammunition item")
			}
			slog.Warn("ammunition item missing, rolling without it",
				"item_id", r.item.ID,
				"ammo_id", r.item.AmmoID,
			)
		} else {
			r.ammo = ammoOut.Item
		}
	}

	return nil
}

// resolveSlotLevel prompts for the cast level of leveled spells. A
// dismissed dialog aborts the request with a Canceled error.
func (r *Request) resolveSlotLevel(ctx context.Context) error {
	r.castLevel = r.item.SpellLevel
	if r.item.Type != vtt.ItemTypeSpell || r.item.SpellLevel == 0 {
		return nil
	}

	if r.input.Params.SlotLevel > 0 {
		if r.input.Params.SlotLevel < r.item.SpellLevel {
			return errors.InvalidArgumentf(
				"slot level %d is below the spell's base level %d",
				r.input.Params.SlotLevel, r.item.SpellLevel)
		}
		r.castLevel = r.input.Params.SlotLevel
		r.consumeSlot = r.input.Params.ConsumeSlot
		return nil
	}

	choice, err := r.o.prompter.PromptSlotLevel(ctx, &host.SlotPromptInput{
		ItemName:  r.item.Name,
		BaseLevel: r.item.SpellLevel,
		MaxLevel:  9,
	})
	if err != nil {
		if errors.IsCanceled(err) {
			return err
		}
		return errors.WrapWithCode(err, errors.CodeCanceled, "slot selection canceled")
	}
	if choice.SlotLevel > r.item.SpellLevel {
		r.castLevel = choice.SlotLevel
	}
	r.consumeSlot = choice.ConsumeSlot
	return nil
}

// performPlaceTemplate is fire and forget; a failed placement never aborts the roll
func (r *Request) performPlaceTemplate(ctx context.Context) {
	if r.o.templatePlacer == nil {
		slog.Warn("no template placer configured", "item_id", r.item.ID)
		return
	}
	if err := r.o.templatePlacer.PlaceAreaTemplate(ctx, r.item); err != nil {
		slog.Warn("failed to place area template", "item_id", r.item.ID, "error", err)
	}
}

func (r *Request) publishCardAssembled(ctx context.Context) {
	if r.o.eventBus == nil {
		return
	}
	event := events.NewGameEvent(EventCardAssembled, wrapItem(r.item), nil)
	if err := r.o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish card assembled event", "item_id", r.item.ID, "error", err)
	}
}

func (r *Request) renderCard(ctx context.Context) (string, error) {
	markup := make([]string, 0, len(r.entries))
	for i := range r.entries {
		m, err := r.o.renderer.RenderEntry(ctx, &r.entries[i])
		if err != nil {
			return "", errors.Wrap(err, "failed to render entry")
		}
		markup = append(markup, m)
	}

	content, err := r.o.renderer.RenderCard(ctx, &host.CardContext{
		SpeakerID:   r.actor.ID,
		SpeakerName: r.actor.Name,
		ItemID:      r.item.ID,
		ItemName:    r.item.Name,
	}, markup)
	if err != nil {
		return "", errors.Wrap(err, "failed to render card")
	}
	return content, nil
}

func (r *Request) deliver(ctx context.Context, content string) error {
	msg := &host.ChatMessage{
		SpeakerID:   r.actor.ID,
		SpeakerName: r.actor.Name,
		Content:     content,
		HasDice:     r.pool.Len() > 0,
		Whisper:     r.input.Params.Whisper,
	}
	if r.snap.EnableSounds && msg.HasDice {
		msg.Sound = r.snap.DiceSound
	}

	if err := r.o.chat.CreateMessage(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to create chat message")
	}
	return nil
}

func (r *Request) deleteItem(ctx context.Context) {
	if r.o.itemDeleter == nil {
		slog.Warn("item destroyed but no deleter configured", "item_id", r.item.ID)
		return
	}
	if err := r.o.itemDeleter.DeleteItem(ctx, r.item.ID); err != nil {
		slog.Warn("failed to delete destroyed item", "item_id", r.item.ID, "error", err)
	}
}

// attackRoll builds the multiroll input shared by attack-style d20 rolls
func (r *Request) attackRoll() (*roll.MultiRollInput, error) {
	formula := "1d20"
	if r.item.AttackBonus != "" {
		bonus := r.item.AttackBonus
		if bonus[0] != '+' && bonus[0] != '-' {
			bonus = "+" + bonus
		}
		formula += bonus
	}

	return &roll.MultiRollInput{
		Formula:          formula,
		Title:            "Attack",
		State:            roll.ResolveState(r.input.Params.Advantage, r.input.Params.Disadvantage),
		RollType:         "attack",
		CritThreshold:    r.item.CritThreshold,
		DefaultRollCount: r.snap.DefaultRollCount(),
		ElvenAccuracy:    r.actor.ElvenAccuracy,
	}, nil
}
